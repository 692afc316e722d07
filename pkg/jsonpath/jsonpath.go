// Package jsonpath reads optional fields out of raw JSON documents.
//
// Every lookup reports absence instead of failing, so callers can treat a
// missing or mistyped field as "unknown". Paths use gjson syntax
// (dot separated keys, numeric array indexes).
package jsonpath

import "github.com/tidwall/gjson"

// Node is a position inside a document. The zero Node is absent.
type Node struct {
	res gjson.Result
}

// Valid reports whether doc is well formed JSON.
func Valid(doc []byte) bool {
	return gjson.ValidBytes(doc)
}

// Get resolves path against doc.
func Get(doc []byte, path string) Node {
	if len(doc) == 0 {
		return Node{}
	}
	return Node{res: gjson.GetBytes(doc, path)}
}

// Float is shorthand for Get(doc, path).Float().
func Float(doc []byte, path string) (float64, bool) {
	return Get(doc, path).Float()
}

// String is shorthand for Get(doc, path).String().
func String(doc []byte, path string) (string, bool) {
	return Get(doc, path).String()
}

func (n Node) Exists() bool {
	return n.res.Exists() && n.res.Type != gjson.Null
}

// Get resolves path relative to n.
func (n Node) Get(path string) Node {
	if !n.Exists() {
		return Node{}
	}
	return Node{res: n.res.Get(path)}
}

// Float returns the value when it is a JSON number.
func (n Node) Float() (float64, bool) {
	if n.res.Type != gjson.Number {
		return 0, false
	}
	return n.res.Float(), true
}

// String returns the value when it is a JSON string.
func (n Node) String() (string, bool) {
	if n.res.Type != gjson.String {
		return "", false
	}
	return n.res.Str, true
}

// StringOr returns the string value or def.
func (n Node) StringOr(def string) string {
	if s, ok := n.String(); ok {
		return s
	}
	return def
}

// Items returns the elements of an array node, nil otherwise.
func (n Node) Items() []Node {
	if !n.res.IsArray() {
		return nil
	}
	arr := n.res.Array()
	items := make([]Node, 0, len(arr))
	for _, r := range arr {
		items = append(items, Node{res: r})
	}
	return items
}
