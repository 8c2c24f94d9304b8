package mal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MaxReadDepth bounds how deeply collection literals may nest.
var MaxReadDepth = 1000

var (
	tokenRe = regexp.MustCompile(`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]*)`)
	intRe   = regexp.MustCompile(`^[+-]?\d+$`)
)

// Tokenize splits text into tokens. Whitespace and commas separate tokens,
// comments are dropped and an unterminated string is kept as a token.
func Tokenize(text string) []string {
	var tokens []string
	for _, m := range tokenRe.FindAllStringSubmatch(text, -1) {
		tok := m[1]
		if tok == "" || tok[0] == ';' {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

type Reader struct {
	tokens []string
	pos    int
	depth  int
}

func NewReader(text string) *Reader {
	return &Reader{
		tokens: Tokenize(text),
	}
}

// Read parses the first form of text. Anything after it is ignored.
func Read(text string) (*Node, error) {
	return NewReader(text).Next()
}

// More reports whether unread tokens remain.
func (r *Reader) More() bool {
	return r.pos < len(r.tokens)
}

// Next parses the next form.
func (r *Reader) Next() (*Node, error) {
	r.depth = 0
	return r.readForm()
}

func (r *Reader) peek() string {
	return r.tokens[r.pos]
}

func (r *Reader) next() string {
	t := r.tokens[r.pos]
	r.pos++
	return t
}

func (r *Reader) readForm() (*Node, error) {
	if !r.More() {
		return nil, ErrUnexpectedEOF
	}
	switch r.peek() {
	case "(":
		return r.readSeq(NodeList, ")")
	case "[":
		return r.readSeq(NodeVector, "]")
	case "{":
		return r.readMap()
	}
	return readAtom(r.next())
}

func (r *Reader) enter() error {
	r.depth++
	if r.depth > MaxReadDepth {
		return fmt.Errorf("%w: more than %d levels", ErrTooDeep, MaxReadDepth)
	}
	return nil
}

func (r *Reader) readSeq(t NodeType, end string) (*Node, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	r.next()
	items := []*Node{}
	for r.More() && r.peek() != end {
		item, err := r.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if !r.More() {
		return nil, fmt.Errorf("%w: expected '%s'", ErrUnbalanced, end)
	}
	r.next()
	r.depth--
	return &Node{t: t, items: items}, nil
}

func (r *Reader) readMap() (*Node, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	r.next()
	m := MakeMap()
	for r.More() && r.peek() != "}" {
		tok := r.next()
		if !strings.HasPrefix(tok, `"`) && !strings.HasPrefix(tok, ":") {
			return nil, fmt.Errorf("%w: %s", ErrMapKey, tok)
		}
		key, err := readAtom(tok)
		if err != nil {
			return nil, err
		}
		if !r.More() {
			break
		}
		if r.peek() == "}" {
			return nil, fmt.Errorf("%w: no value for key %s", ErrUnbalanced, tok)
		}
		val, err := r.readForm()
		if err != nil {
			return nil, err
		}
		m.put(key.Str(), val)
	}
	if !r.More() {
		return nil, fmt.Errorf("%w: expected '}'", ErrUnbalanced)
	}
	r.next()
	r.depth--
	return m, nil
}

func isSymbolStart(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(`+-*/=<>!?&%_$.`, c)
}

// closedString reports whether a token starting with a quote is closed by
// an unescaped quote at its very end.
func closedString(tok string) bool {
	for i := 1; i < len(tok); i++ {
		switch tok[i] {
		case '\\':
			i++
		case '"':
			return i == len(tok)-1
		}
	}
	return false
}

func readAtom(tok string) (*Node, error) {
	if intRe.MatchString(tok) {
		i, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrIntRange, tok)
		}
		return MakeInt(i), nil
	}
	switch tok {
	case "nil":
		return Nil, nil
	case "true":
		return True, nil
	case "false":
		return False, nil
	}

	c := []rune(tok)[0]
	switch {
	case c == '"':
		if len(tok) < 2 || !closedString(tok) {
			return nil, fmt.Errorf("%w: %s", ErrUnbalancedString, tok)
		}
		return MakeString(tok[1 : len(tok)-1]), nil
	case c == ':' && len(tok) > 1:
		return MakeKeyword(tok[1:]), nil
	case isSymbolStart(c):
		return MakeSymbol(tok), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownToken, tok)
}
