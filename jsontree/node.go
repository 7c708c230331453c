// Package jsontree provides a dynamically-navigable JSON tree: each node
// is one of Null, Bool, Number, String, Array, or Object. Accessors are
// nil-safe so lookups can be chained without intermediate checks.
package jsontree

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Kind discriminates the node variants.
type Kind int

const (
	// Null is a JSON null (and the kind reported by a nil node).
	Null Kind = iota
	// Bool is a JSON boolean.
	Bool
	// Number is a JSON number.
	Number
	// String is a JSON string.
	String
	// Array is a JSON array.
	Array
	// Object is a JSON object.
	Object
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Node is one value in a parsed JSON tree.
type Node struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []*Node
	obj  map[string]*Node
}

// Kind returns the node's variant. A nil node reports Null.
func (n *Node) Kind() Kind {
	if n == nil {
		return Null
	}
	return n.kind
}

// IsNull reports whether the node is absent or a JSON null.
func (n *Node) IsNull() bool {
	return n.Kind() == Null
}

// Lookup returns the value mapped to key, or nil if the node is not an
// object or the key is absent.
func (n *Node) Lookup(key string) *Node {
	if n == nil || n.kind != Object {
		return nil
	}
	return n.obj[key]
}

// Index returns the i-th element of an array node, or nil when out of
// range or not an array.
func (n *Node) Index(i int) *Node {
	if n == nil || n.kind != Array || i < 0 || i >= len(n.arr) {
		return nil
	}
	return n.arr[i]
}

// Len returns the number of elements of an array node or entries of an
// object node, and 0 otherwise.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case Array:
		return len(n.arr)
	case Object:
		return len(n.obj)
	default:
		return 0
	}
}

// Keys returns the sorted keys of an object node.
func (n *Node) Keys() []string {
	if n == nil || n.kind != Object {
		return nil
	}
	keys := make([]string, 0, len(n.obj))
	for k := range n.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Str returns the string value, or "" for non-string nodes.
func (n *Node) Str() string {
	if n == nil || n.kind != String {
		return ""
	}
	return n.str
}

// Num returns the numeric value as a float64, or 0 for non-number nodes.
func (n *Node) Num() float64 {
	if n == nil || n.kind != Number {
		return 0
	}
	f, err := n.num.Float64()
	if err != nil {
		return 0
	}
	return f
}

// Int returns the numeric value as an int64, truncating fractional
// values, or 0 for non-number nodes.
func (n *Node) Int() int64 {
	if n == nil || n.kind != Number {
		return 0
	}
	if i, err := n.num.Int64(); err == nil {
		return i
	}
	f, err := n.num.Float64()
	if err != nil {
		return 0
	}
	return int64(f)
}

// Bool returns the boolean value, or false for non-bool nodes.
func (n *Node) Bool() bool {
	if n == nil || n.kind != Bool {
		return false
	}
	return n.b
}

// Raw returns the node's literal as it would appear in JSON text.
// Useful for diagnostics; compound nodes report their kind instead.
func (n *Node) Raw() string {
	switch n.Kind() {
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(n.b)
	case Number:
		return n.num.String()
	case String:
		return n.str
	default:
		return n.Kind().String()
	}
}
