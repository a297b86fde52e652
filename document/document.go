// Package document parses share documents:
//
//	{
//	  "keys": { "n": 4, "k": 3 },
//	  "1": { "base": "10", "value": "4" },
//	  "2": { "base": "2", "value": "111" }
//	}
//
// Comments and trailing commas are accepted.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ruteri/threshold-secret-recovery/interfaces"
	"github.com/tailscale/hujson"
)

// maxExactInt is the largest integer a float64 holds exactly.
const maxExactInt = 1 << 53

// KeysField is the top-level key holding the n and k parameters.
const KeysField = "keys"

var (
	// ErrMalformedDocument is returned for input that is not a JSON object.
	ErrMalformedDocument = errors.New("malformed share document")

	// ErrMissingKeys is returned when the keys object is absent.
	ErrMissingKeys = errors.New("missing keys object")
)

// Document is a parsed share document together with the entries that were
// left out because they were not {"base": string, "value": string} objects.
type Document struct {
	interfaces.InputDocument
	Skipped []string
}

type keysObject struct {
	N json.RawMessage `json:"n"`
	K json.RawMessage `json:"k"`
}

type rawEntry struct {
	Base  *string `json:"base"`
	Value *string `json:"value"`
}

// Parse parses a share document.
func Parse(data []byte) (*Document, error) {
	data, err := standardize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: not an object", ErrMalformedDocument)
	}

	rawKeys, found := fields[KeysField]
	if !found {
		return nil, ErrMissingKeys
	}

	var keys keysObject
	if err := json.Unmarshal(rawKeys, &keys); err != nil {
		return nil, fmt.Errorf("%w: invalid keys object: %w", ErrMalformedDocument, err)
	}

	doc := &Document{
		InputDocument: interfaces.InputDocument{
			Entries: make(map[string]interfaces.RawShareEntry, len(fields)-1),
		},
	}
	// Values that are not integers are treated as absent and left for the
	// solver to reject.
	doc.N, _ = parseInt(keys.N)
	doc.K, doc.HasK = parseInt(keys.K)

	for key, raw := range fields {
		if key == KeysField {
			continue
		}

		var entry rawEntry
		if err := json.Unmarshal(raw, &entry); err != nil || entry.Base == nil || entry.Value == nil {
			doc.Skipped = append(doc.Skipped, key)
			continue
		}
		doc.Entries[key] = interfaces.RawShareEntry{Base: *entry.Base, Value: *entry.Value}
	}

	return doc, nil
}

// Load reads and parses the share document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// parseInt accepts any JSON number with an integral value, so 2, 2.0 and 2e0
// all parse as 2.
func parseInt(raw json.RawMessage) (int, bool) {
	if raw == nil || string(raw) == "null" {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	if v != math.Trunc(v) || math.Abs(v) > maxExactInt {
		return 0, false
	}
	return int(v), true
}

func standardize(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return nil, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
