package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Row is one record of an analytics dataset: an ordered mapping from field
// name to value. Values are whatever the JSON batch carried (float64, string,
// bool, nil, or a nested map for size/age breakdowns). Field order is the
// order the fields appeared in the source document; the first row of a batch
// is used as the schema sample, so order must survive decoding.
type Row struct {
	fields []string
	values map[string]any
}

// NewRow returns an empty row.
func NewRow() Row {
	return Row{values: map[string]any{}}
}

// Get returns the value for a field and whether the field is defined at all.
// A defined field may still hold nil.
func (r Row) Get(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Has reports whether the field is defined with a non-nil value.
func (r Row) Has(field string) bool {
	v, ok := r.values[field]
	return ok && v != nil
}

// Set stores a value, appending the field to the order if it is new.
func (r *Row) Set(field string, value any) {
	if r.values == nil {
		r.values = map[string]any{}
	}
	if _, ok := r.values[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
}

// Fields returns the field names in document order.
func (r Row) Fields() []string {
	return r.fields
}

// Len returns the number of defined fields.
func (r Row) Len() int {
	return len(r.fields)
}

// Clone returns a copy that can be mutated without touching the original.
func (r Row) Clone() Row {
	out := Row{
		fields: append([]string(nil), r.fields...),
		values: make(map[string]any, len(r.values)),
	}
	for k, v := range r.values {
		out.values[k] = v
	}
	return out
}

// UnmarshalJSON decodes a JSON object while preserving key order.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("row: expected JSON object")
	}

	r.fields = nil
	r.values = map[string]any{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("row: unexpected key token %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		r.Set(key, value)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the row as a JSON object in field order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[field])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
