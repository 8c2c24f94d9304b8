package mal

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Print renders n as text the reader accepts again, except for functions
// which print as opaque placeholders.
func Print(n *Node) string {
	var buf bytes.Buffer
	printNode(&buf, n)
	return buf.String()
}

func (n *Node) String() string {
	return Print(n)
}

func printString(buf *bytes.Buffer, s string) {
	if strings.HasPrefix(s, KeywordPrefix) {
		buf.WriteString(":")
		buf.WriteString(s[len(KeywordPrefix):])
		return
	}
	buf.WriteString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)
}

func printSeq(buf *bytes.Buffer, open, close string, items []*Node) {
	buf.WriteString(open)
	for i, item := range items {
		if i > 0 {
			buf.WriteString(" ")
		}
		printNode(buf, item)
	}
	buf.WriteString(close)
}

func printNode(buf *bytes.Buffer, n *Node) {
	if n == nil {
		buf.WriteString("nil")
		return
	}
	switch n.t {
	case NodeNil:
		buf.WriteString("nil")
	case NodeBool:
		buf.WriteString(strconv.FormatBool(n.Bool()))
	case NodeInt:
		buf.WriteString(strconv.FormatInt(n.Int(), 10))
	case NodeString:
		printString(buf, n.Str())
	case NodeSymbol:
		buf.WriteString(n.Str())
	case NodeList:
		printSeq(buf, "(", ")", n.items)
	case NodeVector:
		printSeq(buf, "[", "]", n.items)
	case NodeMap:
		buf.WriteString("{")
		for i, k := range n.keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			printString(buf, k)
			buf.WriteString(" ")
			printNode(buf, n.vals[k])
		}
		buf.WriteString("}")
	case NodeClosure:
		buf.WriteString("#<function>")
	case NodeBuiltin:
		fmt.Fprintf(buf, "#<builtin %s>", n.Str())
	}
}
