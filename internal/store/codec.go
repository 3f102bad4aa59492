package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/roach88/staffbook/internal/record"
	"github.com/roach88/staffbook/internal/schema"
)

// Encode serializes records as the roster document: a JSON array indented
// with four spaces, non-ASCII and HTML characters written literally, and a
// trailing newline. An empty roster encodes as "[]".
func Encode(records []record.Record) ([]byte, error) {
	docs := make([]map[string]any, len(records))
	for i, r := range records {
		docs[i] = r.Serialize()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(docs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a roster document. name identifies the source in error
// positions. The document is schema-checked first so structural problems
// point at a line and column.
func Decode(name string, data []byte) ([]record.Record, error) {
	if err := schema.Validate(name, data); err != nil {
		return nil, newMalformed("roster document does not match schema", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var docs []map[string]any
	if err := dec.Decode(&docs); err != nil {
		return nil, newMalformed("roster document is not valid JSON", err)
	}

	records := make([]record.Record, 0, len(docs))
	for i, doc := range docs {
		r, err := record.Deserialize(doc)
		if err != nil {
			return nil, newMalformed(fmt.Sprintf("entry %d", i), err)
		}
		records = append(records, r)
	}
	return records, nil
}
