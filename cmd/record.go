package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// record is an ordered key→value mapping decoded from one JSON object. Key
// order mirrors the document, so sheet headers come out in the column order
// the array reports. Values are json.Number, string, bool, nil, or (for
// nested payloads such as lssystem tiers) *record and []any.
type record struct {
	keys []string
	vals map[string]any
}

// commandResult is the decoded payload of one command: a sequence of
// records. A single-object payload decodes to a one-record sequence.
type commandResult []*record

func (r *record) get(key string) (any, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// MarshalJSON preserves key order, so nested values re-marshal into cell
// text without reshuffling.
func (r *record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeRecords parses a command payload, which is either a JSON object or
// a JSON array of objects. No schema beyond that is assumed.
func decodeRecords(data []byte) (commandResult, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("decode response: expected object or array, got %v", tok)
	}
	switch delim {
	case '{':
		rec, err := decodeObject(dec)
		if err != nil {
			return nil, err
		}
		return commandResult{rec}, nil
	case '[':
		var out commandResult
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("decode response: %w", err)
			}
			if d, ok := tok.(json.Delim); !ok || d != '{' {
				return nil, fmt.Errorf("decode response: expected object in array, got %v", tok)
			}
			rec, err := decodeObject(dec)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
		if _, err := dec.Token(); err != nil { // consume ]
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("decode response: unexpected delimiter %v", delim)
}

// decodeObject consumes an object body whose opening brace has already been
// read, preserving key order.
func decodeObject(dec *json.Decoder) (*record, error) {
	rec := &record{vals: map[string]any{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode object: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode object: expected key, got %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		if _, seen := rec.vals[key]; !seen {
			rec.keys = append(rec.keys, key)
		}
		rec.vals[key] = val
	}
	if _, err := dec.Token(); err != nil { // consume }
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return rec, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(dec)
		case '[':
			var arr []any
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil { // consume ]
				return nil, fmt.Errorf("decode value: %w", err)
			}
			return arr, nil
		}
		return nil, fmt.Errorf("decode value: unexpected delimiter %v", delim)
	}
	return tok, nil
}
