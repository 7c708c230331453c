package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Parse decodes JSON text into a tree of nodes. Numbers are kept in their
// source representation so integer precision is not lost. Trailing
// non-whitespace after the top-level value is a syntax error.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("jsontree: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("jsontree: trailing data after top-level value")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("jsontree: trailing data after top-level value")
	}

	return build(raw), nil
}

// build converts a decoded value into a Node.
func build(raw any) *Node {
	switch v := raw.(type) {
	case nil:
		return &Node{kind: Null}
	case bool:
		return &Node{kind: Bool, b: v}
	case json.Number:
		return &Node{kind: Number, num: v}
	case string:
		return &Node{kind: String, str: v}
	case []any:
		arr := make([]*Node, len(v))
		for i, elem := range v {
			arr[i] = build(elem)
		}
		return &Node{kind: Array, arr: arr}
	case map[string]any:
		obj := make(map[string]*Node, len(v))
		for k, elem := range v {
			obj[k] = build(elem)
		}
		return &Node{kind: Object, obj: obj}
	default:
		// encoding/json produces no other types
		return &Node{kind: Null}
	}
}
