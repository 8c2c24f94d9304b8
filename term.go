package mal

import (
	"strings"
)

type NodeType int

const (
	NodeNil NodeType = iota
	NodeBool
	NodeInt
	NodeString
	NodeSymbol
	NodeList
	NodeVector
	NodeMap
	NodeClosure
	NodeBuiltin
)

var nodeTypeNames = [...]string{
	NodeNil:     "nil",
	NodeBool:    "boolean",
	NodeInt:     "integer",
	NodeString:  "string",
	NodeSymbol:  "symbol",
	NodeList:    "list",
	NodeVector:  "vector",
	NodeMap:     "map",
	NodeClosure: "function",
	NodeBuiltin: "builtin",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "unknown"
	}
	return nodeTypeNames[t]
}

// KeywordPrefix marks a string value that prints as :name.
const KeywordPrefix = "\u029e"

// Builtin is a native operation over already evaluated arguments.
type Builtin func(args []*Node) (*Node, error)

// Node is a value of the language. A Node is never modified after it has
// been constructed.
type Node struct {
	t NodeType
	v interface{}

	items []*Node

	keys []string
	vals map[string]*Node

	params []string
	body   *Node
	e      *Env

	fn Builtin
}

var (
	Nil   = &Node{t: NodeNil}
	True  = &Node{t: NodeBool, v: true}
	False = &Node{t: NodeBool, v: false}
)

func MakeInt(i int64) *Node {
	return &Node{t: NodeInt, v: i}
}

func MakeBool(b bool) *Node {
	if b {
		return True
	}
	return False
}

func MakeString(s string) *Node {
	return &Node{t: NodeString, v: s}
}

func MakeKeyword(name string) *Node {
	return &Node{t: NodeString, v: KeywordPrefix + name}
}

func MakeSymbol(name string) *Node {
	return &Node{t: NodeSymbol, v: name}
}

func MakeList(items ...*Node) *Node {
	return &Node{t: NodeList, items: items}
}

func MakeVector(items ...*Node) *Node {
	return &Node{t: NodeVector, items: items}
}

// MakeMap builds a map from alternating key and value arguments. Keys keep
// the position of their first occurrence.
func MakeMap(kvs ...interface{}) *Node {
	n := &Node{t: NodeMap, vals: map[string]*Node{}}
	for i := 0; i+1 < len(kvs); i += 2 {
		n.put(kvs[i].(string), kvs[i+1].(*Node))
	}
	return n
}

func MakeBuiltin(name string, fn Builtin) *Node {
	return &Node{t: NodeBuiltin, v: name, fn: fn}
}

func makeClosure(env *Env, params []string, body *Node) *Node {
	return &Node{t: NodeClosure, params: params, body: body, e: env}
}

// put is only used while a map node is still being built.
func (n *Node) put(k string, v *Node) {
	if _, ok := n.vals[k]; !ok {
		n.keys = append(n.keys, k)
	}
	n.vals[k] = v
}

func (n *Node) Type() NodeType {
	return n.t
}

func (n *Node) Int() int64 {
	i, _ := n.v.(int64)
	return i
}

func (n *Node) Bool() bool {
	b, _ := n.v.(bool)
	return b
}

// Str returns the text of a string, keyword or symbol, or the name of a
// builtin.
func (n *Node) Str() string {
	s, _ := n.v.(string)
	return s
}

func (n *Node) IsKeyword() bool {
	return n.t == NodeString && strings.HasPrefix(n.Str(), KeywordPrefix)
}

// Items returns the elements of a list or vector.
func (n *Node) Items() []*Node {
	return n.items
}

func (n *Node) Len() int {
	if n.t == NodeMap {
		return len(n.keys)
	}
	return len(n.items)
}

// Keys returns the keys of a map in insertion order.
func (n *Node) Keys() []string {
	return n.keys
}

func (n *Node) Get(key string) (*Node, bool) {
	v, ok := n.vals[key]
	return v, ok
}

func (n *Node) isSeq() bool {
	return n.t == NodeList || n.t == NodeVector
}

// Equal reports whether a and b hold the same value. Values of different
// types are never equal; functions compare by identity.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.t != b.t {
		return false
	}
	switch a.t {
	case NodeNil:
		return true
	case NodeBool, NodeInt, NodeString, NodeSymbol:
		return a.v == b.v
	case NodeList, NodeVector:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case NodeMap:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for _, k := range a.keys {
			bv, ok := b.vals[k]
			if !ok || !Equal(a.vals[k], bv) {
				return false
			}
		}
		return true
	case NodeClosure, NodeBuiltin:
		return false
	}
	return false
}
