package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// ConformanceLevel represents a WCAG conformance level targeted by a statement
type ConformanceLevel string

const (
	ConformanceAA  ConformanceLevel = "AA"
	ConformanceAAA ConformanceLevel = "AAA"
)

// Validate checks if the ConformanceLevel is valid. Empty is allowed.
func (c ConformanceLevel) Validate() error {
	switch c {
	case "", ConformanceAA, ConformanceAAA:
		return nil
	}
	return goerr.New("invalid conformance level", goerr.V("level", c))
}

// String returns the string representation of ConformanceLevel
func (c ConformanceLevel) String() string {
	return string(c)
}

// WCAGVersion represents the WCAG specification version a statement refers to
type WCAGVersion string

const (
	WCAG21 WCAGVersion = "wcag21"
	WCAG22 WCAGVersion = "wcag22"
	WCAG30 WCAGVersion = "wcag30"
)

// Validate checks if the WCAGVersion is valid. Empty is allowed.
func (v WCAGVersion) Validate() error {
	switch v {
	case "", WCAG21, WCAG22, WCAG30:
		return nil
	}
	return goerr.New("invalid WCAG version", goerr.V("version", v))
}

// String returns the string representation of WCAGVersion
func (v WCAGVersion) String() string {
	return string(v)
}
