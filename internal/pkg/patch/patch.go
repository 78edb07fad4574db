// Package patch applies RFC 6902 JSON Patch documents to flat records.
//
// Only top-level fields can be targeted, and the caller decides which
// fields are mutable. The identifier field is never a valid target.
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ErrInvalidOperation is returned for malformed operations, operations on
// fields that cannot be patched, and operations that fail to apply.
var ErrInvalidOperation = errors.New("invalid patch operation")

// Operation is a single JSON Patch operation.
type Operation struct {
	Op    string          `json:"op" example:"replace"`
	Path  string          `json:"path" example:"/phone"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty" swaggertype:"string" example:"555-0100"`
}

// Document is an ordered list of operations.
type Document []Operation

var valueOps = map[string]bool{"add": true, "replace": true, "test": true}
var fromOps = map[string]bool{"move": true, "copy": true}

// Apply returns a copy of current with the operations of doc applied in order.
// fields lists the JSON names that may be targeted; current is never modified.
func Apply[T any](current *T, doc Document, fields []string) (*T, error) {
	allowed := make(map[string]bool, len(fields))
	for _, f := range fields {
		allowed[f] = true
	}

	for i, op := range doc {
		if err := check(op, allowed); err != nil {
			return nil, fmt.Errorf("%w: operation %d: %v", ErrInvalidOperation, i, err)
		}
	}

	original, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}

	p, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	patched, err := p.Apply(original)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}

	var result T
	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	return &result, nil
}

func check(op Operation, allowed map[string]bool) error {
	switch {
	case op.Op == "remove":
	case valueOps[op.Op]:
		if len(op.Value) == 0 {
			return fmt.Errorf("%q requires a value", op.Op)
		}
	case fromOps[op.Op]:
		if err := checkPath(op.From, allowed); err != nil {
			return fmt.Errorf("from: %v", err)
		}
	default:
		return fmt.Errorf("unsupported op %q", op.Op)
	}
	return checkPath(op.Path, allowed)
}

func checkPath(path string, allowed map[string]bool) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path %q must start with /", path)
	}
	field := strings.TrimPrefix(path, "/")
	if strings.Contains(field, "/") {
		return fmt.Errorf("path %q targets a nested value", path)
	}
	field = strings.NewReplacer("~1", "/", "~0", "~").Replace(field)
	if field == "id" {
		return fmt.Errorf("id cannot be patched")
	}
	if !allowed[field] {
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}
