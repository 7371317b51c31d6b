package strapi

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// The backend wraps responses inconsistently across endpoints: typed resource
// endpoints answer {"data":{"id":N,"attributes":{...}}}, the users plugin
// answers a flat object, sometimes wrapped once or even twice in "data".
// Decoding runs an ordered list of shape strategies; the first one whose
// structure matches wins.

// envelope wraps a record for create/update requests
type envelope struct {
	Data any `json:"data"`
}

// encodeEnvelope wraps a record as {"data": <record>}
func encodeEnvelope(record any) ([]byte, error) {
	data, err := json.Marshal(envelope{Data: record})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode request envelope")
	}
	return data, nil
}

type wireEntry struct {
	ID         int64           `json:"id"`
	Attributes json.RawMessage `json:"attributes"`
	Data       json.RawMessage `json:"data"`
}

// recordDecoder attempts one envelope shape. The bool result reports whether
// the shape matched; decoding only fails hard when a matched shape does not
// parse into the target record.
type recordDecoder func(body []byte, out any) (bool, error)

var recordDecoders = []recordDecoder{
	decodeDoubleWrapped,
	decodeAttributes,
	decodeSingleWrapped,
	decodeBare,
}

// decodeRecord decodes a single-record response body into out, trying each
// known envelope shape in order
func decodeRecord(body []byte, out any) error {
	for _, decode := range recordDecoders {
		ok, err := decode(body, out)
		if err != nil {
			continue
		}
		if ok {
			return nil
		}
	}
	return goerr.Wrap(ErrDecode, "no envelope shape matched", goerr.V(BodyKey, truncate(body)))
}

// decodeDoubleWrapped handles {"data":{"data":{...fields}}}
func decodeDoubleWrapped(body []byte, out any) (bool, error) {
	var outer struct {
		Data *wireEntry `json:"data"`
	}
	if err := json.Unmarshal(body, &outer); err != nil || outer.Data == nil || len(outer.Data.Data) == 0 {
		return false, err
	}
	if err := json.Unmarshal(outer.Data.Data, out); err != nil {
		return false, err
	}
	return true, nil
}

// decodeAttributes handles {"data":{"id":N,"attributes":{...fields}}}
func decodeAttributes(body []byte, out any) (bool, error) {
	var outer struct {
		Data *wireEntry `json:"data"`
	}
	if err := json.Unmarshal(body, &outer); err != nil || outer.Data == nil || len(outer.Data.Attributes) == 0 {
		return false, err
	}
	if err := json.Unmarshal(outer.Data.Attributes, out); err != nil {
		return false, err
	}
	return true, nil
}

// decodeSingleWrapped handles {"data":{...fields}}
func decodeSingleWrapped(body []byte, out any) (bool, error) {
	var outer struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &outer); err != nil || len(outer.Data) == 0 || string(outer.Data) == "null" {
		return false, err
	}
	if err := json.Unmarshal(outer.Data, out); err != nil {
		return false, err
	}
	return true, nil
}

// decodeBare handles a bare object with no wrapper
func decodeBare(body []byte, out any) (bool, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false, nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return false, err
	}
	return true, nil
}

// decodeRecordList decodes a list response into records of type T. Typed
// resource endpoints answer {"data":[{"id":N,"attributes":{...}}]}; the users
// plugin answers a bare array of flat objects. The wrapper id is discarded,
// the record's own id field is authoritative.
func decodeRecordList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)

	var elems []json.RawMessage
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, goerr.Wrap(ErrDecode, "failed to parse list response", goerr.V(BodyKey, truncate(body)))
		}
	} else {
		var outer struct {
			Data []json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &outer); err != nil {
			return nil, goerr.Wrap(ErrDecode, "failed to parse list response", goerr.V(BodyKey, truncate(body)))
		}
		elems = outer.Data
	}

	records := make([]T, 0, len(elems))
	for _, elem := range elems {
		raw := elem
		var entry wireEntry
		if err := json.Unmarshal(elem, &entry); err == nil && len(entry.Attributes) > 0 {
			raw = entry.Attributes
		}

		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, goerr.Wrap(ErrDecode, "failed to parse list entry", goerr.V(BodyKey, truncate(raw)))
		}
		records = append(records, record)
	}

	return records, nil
}

const maxBodyInError = 512

func truncate(body []byte) string {
	if len(body) > maxBodyInError {
		return string(body[:maxBodyInError]) + "..."
	}
	return string(body)
}
