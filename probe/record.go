package probe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("record field is missing")

// Record is a single object of a JSON list returned by the target site.
type Record map[string]any

// Extractor pulls one scalar value out of a record.
type Extractor func(Record) (string, error)

// Name extracts the "name" field, which must be a string.
func Name(r Record) (string, error) {
	v, ok := r["name"]
	if !ok {
		return "", fmt.Errorf("%w: name", ErrMissingField)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field name has type %T, want string", v)
	}
	return s, nil
}

// ID extracts the "id" field in its string form. Numbers are rendered
// exactly as they appear in the document; true, false and null render as
// True, False and None.
func ID(r Record) (string, error) {
	v, ok := r["id"]
	if !ok {
		return "", fmt.Errorf("%w: id", ErrMissingField)
	}
	switch id := v.(type) {
	case nil:
		return "None", nil
	case string:
		return id, nil
	case json.Number:
		return id.String(), nil
	case bool:
		if id {
			return "True", nil
		}
		return "False", nil
	default:
		return "", fmt.Errorf("field id has unsupported type %T", v)
	}
}

func decodeRecords(body []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}
