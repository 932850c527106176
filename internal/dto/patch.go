package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	dom "jobly/internal/domain"
)

// Patch is the JSON body of a PATCH request. Keys keep document order so
// the SQL placeholders follow the order the client sent.
type Patch struct {
	fields dom.Patch
}

func (p *Patch) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("body must be a JSON object")
	}

	seen := make(map[string]bool)
	fields := dom.Patch{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		if seen[key] {
			return fmt.Errorf("duplicate field %q", key)
		}
		seen[key] = true

		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		fields = append(fields, dom.PatchField{Name: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	p.fields = fields
	return nil
}

// Fields returns the decoded fields in document order.
func (p Patch) Fields() dom.Patch { return p.fields }
