package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/l20n/pkg/ast"
)

// cursor holds the state of a single l20n parse. Each call to ParseL20n owns
// its cursor, so independent resources can be parsed concurrently.
type cursor struct {
	src  string
	pos  int
	sink ErrorSink
	res  *ast.Resource
}

// ParseL20n parses the l20n syntax:
//
//	/* comment */
//	<greeting "Hello, {{ $user }}!"
//	  title: "Greeting">
//	<unread[plural($n)] {
//	  one: "One message",
//	 *other: "{{ $n }} messages"
//	}>
//
// A malformed entity is reported to sink and skipped; parsing resumes at the
// next '<' or comment opener. With a nil sink the first error is returned.
func ParseL20n(src string, sink ErrorSink) (*ast.Resource, error) {
	c := &cursor{src: src, sink: sink, res: ast.NewResource()}

	c.skipWS()
	for c.pos < len(c.src) {
		if err := c.entry(); err != nil {
			if c.sink == nil {
				return nil, err
			}
			c.sink(err)
			c.skipJunk()
		}
		if c.pos < len(c.src) {
			c.skipWS()
		}
	}

	return c.res, nil
}

func (c *cursor) peek() byte {
	if c.pos < len(c.src) {
		return c.src[c.pos]
	}
	return 0
}

func (c *cursor) entry() *ParseError {
	if c.peek() == '<' {
		c.pos++
		id, err := c.identifier()
		if err != nil {
			return err
		}
		var index []ast.Expr
		if c.peek() == '[' {
			c.pos++
			index, err = c.itemList(']')
			if err != nil {
				return err
			}
		}
		return c.entity(id, index)
	}

	if strings.HasPrefix(c.src[c.pos:], "/*") {
		return c.comment()
	}

	return c.error("Invalid entry", KindParse)
}

func (c *cursor) entity(id string, index []ast.Expr) *ParseError {
	if !c.requiredWS() {
		return c.error("Expected white space", KindParse)
	}

	ch := c.peek()
	value, err := c.value(index == nil)
	if err != nil {
		return err
	}

	var attrs []*ast.Entity
	if value == nil {
		if ch == '>' {
			return c.error(`Expected ">"`, KindParse)
		}
		if attrs, err = c.attributes(); err != nil {
			return err
		}
	} else {
		ws := c.requiredWS()
		if c.peek() != '>' {
			if !ws {
				return c.error(`Expected ">"`, KindParse)
			}
			if attrs, err = c.attributes(); err != nil {
				return err
			}
		}
	}

	c.pos++

	if c.res.Has(id) {
		return c.error(fmt.Sprintf("Duplicate entry ID %q", id), KindDuplicate)
	}
	c.res.Set(&ast.Entity{ID: id, Value: value, Attrs: attrs, Index: index})
	return nil
}

// value parses a string or a hash. When optional is set and the cursor is not
// at a value, it returns nil without error.
func (c *cursor) value(optional bool) (ast.Value, *ParseError) {
	switch ch := c.peek(); ch {
	case '\'', '"':
		return c.str(ch)
	case '{':
		return c.hash()
	}

	if !optional {
		return nil, c.error("Unknown value type", KindParse)
	}
	return nil, nil
}

func (c *cursor) skipWS() {
	for c.pos < len(c.src) {
		switch c.src[c.pos] {
		case ' ', '\n', '\t', '\r':
			c.pos++
		default:
			return
		}
	}
}

func (c *cursor) requiredWS() bool {
	start := c.pos
	c.skipWS()
	return c.pos != start
}

func (c *cursor) identifier() (string, *ParseError) {
	start := c.pos
	if !isIdentStart(c.peek()) {
		return "", c.error("Identifier has to start with [a-zA-Z_]", KindParse)
	}
	c.pos++
	for c.pos < len(c.src) && isIdentPart(c.src[c.pos]) {
		c.pos++
	}
	return c.src[start:c.pos], nil
}

func isIdentStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

// unicodeChar reads the four hex digits following "\u".
func (c *cursor) unicodeChar() (string, *ParseError) {
	for i := 0; i < 4; i++ {
		c.pos++
		if c.pos >= len(c.src) || !isHex(c.src[c.pos]) {
			return "", c.error("Illegal unicode escape sequence", KindParse)
		}
	}
	c.pos++
	cp, err := strconv.ParseUint(c.src[c.pos-4:c.pos], 16, 32)
	if err != nil {
		return "", c.error("Illegal unicode escape sequence", KindParse)
	}
	return string(rune(cp)), nil
}

func (c *cursor) str(quote byte) (ast.Value, *ParseError) {
	c.pos++

	var (
		body       ast.Pattern
		buf        strings.Builder
		placeables int
	)

	for {
		if c.pos >= len(c.src) {
			return nil, c.error("Unclosed string literal", KindParse)
		}

		ch := c.src[c.pos]
		switch {
		case ch == quote:
			c.pos++
			if len(body) == 0 {
				return ast.Str(buf.String()), nil
			}
			if buf.Len() > 0 {
				body = append(body, ast.Str(buf.String()))
			}
			return body, nil

		case strings.HasPrefix(c.src[c.pos:], "{{"):
			if placeables >= MaxPlaceables {
				return nil, c.error(fmt.Sprintf("Too many placeables, maximum allowed is %d", MaxPlaceables), KindParse)
			}
			placeables++
			if buf.Len() > 0 {
				body = append(body, ast.Str(buf.String()))
				buf.Reset()
			}
			c.pos += 2
			c.skipWS()
			expr, err := c.expression()
			if err != nil {
				return nil, err
			}
			c.skipWS()
			if !strings.HasPrefix(c.src[c.pos:], "}}") {
				return nil, c.error(`Expected "}}"`, KindParse)
			}
			c.pos += 2
			body = append(body, ast.Placeable{Expr: expr})

		case ch == '\\':
			c.pos++
			next := c.peek()
			switch {
			case next == 'u':
				r, err := c.unicodeChar()
				if err != nil {
					return nil, err
				}
				buf.WriteString(r)
			case next == quote || next == '\\':
				buf.WriteByte(next)
				c.pos++
			case strings.HasPrefix(c.src[c.pos:], "{{"):
				buf.WriteString("{{")
				c.pos += 2
			default:
				return nil, c.error("Illegal escape sequence", KindParse)
			}

		default:
			buf.WriteByte(ch)
			c.pos++
		}
	}
}

func (c *cursor) attributes() ([]*ast.Entity, *ParseError) {
	var attrs []*ast.Entity
	for {
		attr, err := c.attribute(attrs)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)

		ws := c.requiredWS()
		if c.peek() == '>' {
			return attrs, nil
		}
		if !ws {
			return nil, c.error(`Expected ">"`, KindParse)
		}
	}
}

func (c *cursor) attribute(existing []*ast.Entity) (*ast.Entity, *ParseError) {
	key, err := c.identifier()
	if err != nil {
		return nil, err
	}

	var index []ast.Expr
	if c.peek() == '[' {
		c.pos++
		c.skipWS()
		if index, err = c.itemList(']'); err != nil {
			return nil, err
		}
	}

	c.skipWS()
	if c.peek() != ':' {
		return nil, c.error(`Expected ":"`, KindParse)
	}
	c.pos++
	c.skipWS()

	value, err := c.value(false)
	if err != nil {
		return nil, err
	}

	for _, a := range existing {
		if a.ID == key {
			return nil, c.error(fmt.Sprintf("Duplicate attribute %q", key), KindDuplicate)
		}
	}

	return &ast.Entity{ID: key, Value: value, Index: index}, nil
}

func (c *cursor) hash() (ast.Value, *ParseError) {
	c.pos++
	c.skipWS()

	h := &ast.Hash{}
	for {
		def := false
		if c.peek() == '*' {
			c.pos++
			def = true
		}

		key, err := c.identifier()
		if err != nil {
			return nil, err
		}
		c.skipWS()
		if c.peek() != ':' {
			return nil, c.error(`Expected ":"`, KindParse)
		}
		c.pos++
		c.skipWS()

		value, err := c.value(false)
		if err != nil {
			return nil, err
		}
		h.Set(key, value)

		if def {
			if h.Default != "" {
				return nil, c.error("Default item redefinition forbidden", KindParse)
			}
			h.Default = key
		}

		c.skipWS()
		comma := c.peek() == ','
		if comma {
			c.pos++
			c.skipWS()
		}
		if c.peek() == '}' {
			c.pos++
			return h, nil
		}
		if !comma {
			return nil, c.error(`Expected "}"`, KindParse)
		}
	}
}

func (c *cursor) comment() *ParseError {
	c.pos += 2
	end := strings.Index(c.src[c.pos:], "*/")
	if end == -1 {
		return c.error("Comment without a closing tag", KindParse)
	}
	c.pos += end + 2
	return nil
}

func (c *cursor) expression() (ast.Expr, *ParseError) {
	expr, err := c.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch c.peek() {
		case '.':
			c.pos++
			name, err := c.identifier()
			if err != nil {
				return nil, err
			}
			expr = &ast.Prop{Obj: expr, Name: name}
		case '[':
			c.pos++
			c.skipWS()
			key, err := c.expression()
			if err != nil {
				return nil, err
			}
			c.skipWS()
			if c.peek() != ']' {
				return nil, c.error(`Expected "]"`, KindParse)
			}
			c.pos++
			expr = &ast.Prop{Obj: expr, Key: key, Computed: true}
		case '(':
			c.pos++
			args, err := c.itemList(')')
			if err != nil {
				return nil, err
			}
			expr = &ast.Call{Callee: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

func (c *cursor) primary() (ast.Expr, *ParseError) {
	switch c.peek() {
	case '$':
		c.pos++
		name, err := c.identifier()
		if err != nil {
			return nil, err
		}
		return ast.Var{Name: name}, nil
	case '@':
		c.pos++
		name, err := c.identifier()
		if err != nil {
			return nil, err
		}
		return ast.Global{Name: name}, nil
	default:
		name, err := c.identifier()
		if err != nil {
			return nil, err
		}
		return ast.Ident{Name: name}, nil
	}
}

// itemList parses comma separated expressions up to and including closer.
func (c *cursor) itemList(closer byte) ([]ast.Expr, *ParseError) {
	var items []ast.Expr

	c.skipWS()
	if c.peek() == closer {
		c.pos++
		return items, nil
	}

	for {
		item, err := c.expression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		c.skipWS()
		switch c.peek() {
		case ',':
			c.pos++
			c.skipWS()
		case closer:
			c.pos++
			return items, nil
		default:
			return nil, c.error(fmt.Sprintf(`Expected "," or "%c"`, closer), KindParse)
		}
	}
}

// skipJunk moves the cursor to the next plausible entry start.
func (c *cursor) skipJunk() {
	start := c.pos
	next := len(c.src)
	if i := strings.IndexByte(c.src[start:], '<'); i != -1 {
		next = start + i
	}
	if i := strings.Index(c.src[start:], "/*"); i != -1 && start+i < next {
		next = start + i
	}
	if next == start && start < len(c.src) && c.src[start] != '<' && !strings.HasPrefix(c.src[start:], "/*") {
		next++
	}
	c.pos = next
}

func (c *cursor) error(message string, kind ErrorKind) *ParseError {
	pos := min(c.pos, len(c.src))

	start := 0
	if pos > 0 {
		open := strings.LastIndexByte(c.src[:pos], '<')
		closing := strings.LastIndexByte(c.src[:pos], '>')
		if closing > open {
			start = closing + 1
		} else if open != -1 {
			start = open
		}
	}
	end := min(pos+10, len(c.src))

	return &ParseError{
		Message: fmt.Sprintf("%s at pos %d: `%s`", message, pos, c.src[start:end]),
		Pos:     pos,
		Kind:    kind,
	}
}
