package config

// SetPath sets the config file path for tests
func (x *Statement) SetPath(path string) {
	x.path = path
}
