package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/l20n/pkg/ast"
)

var (
	propsEntityRe       = regexp.MustCompile(`^([^=\s]+)\s*=\s*(.*)$`)
	propsIndexRe        = regexp.MustCompile(`(?i)\{\[\s*(\w+)(?:\(([^\)]*)\))?\s*\]\}`)
	propsUnicodeRe      = regexp.MustCompile(`\\u([0-9a-fA-F]{1,4})`)
	propsControlCharsRe = regexp.MustCompile(`\\([\\\n\r\t\x08\f{}"'])`)
	propsPlaceableRe    = regexp.MustCompile(`\{\{\s*(\S*?)\s*\}\}`)
)

type propsLine struct {
	text string
	pos  int
}

type propertiesParser struct {
	res  *ast.Resource
	sink ErrorSink
}

// ParseProperties parses the line oriented properties syntax:
//
//	# comment
//	greeting = Hello, {{ user }}!
//	greeting.title = Greeting
//	unread = {[ plural(n) ]}
//	unread[one] = One message
//	unread[other] = {{ n }} messages
//
// Malformed lines are reported to sink and skipped. With a nil sink the first
// error is returned.
func ParseProperties(src string, sink ErrorSink) (*ast.Resource, error) {
	p := &propertiesParser{res: ast.NewResource(), sink: sink}

	lines := splitLines(src)
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		text := strings.TrimLeft(line.text, " \t\f\v")

		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		for isContinued(text) {
			text = text[:len(text)-1]
			if i+1 >= len(lines) {
				break
			}
			i++
			text += strings.TrimSpace(lines[i].text)
		}

		m := propsEntityRe.FindStringSubmatch(text)
		if m == nil {
			err := &ParseError{Message: fmt.Sprintf("Malformed entry: %q", text), Pos: line.pos, Kind: KindParse}
			if !p.report(err) {
				return nil, err
			}
			continue
		}

		if err := p.parseEntity(m[1], m[2], line.pos); err != nil {
			if !p.report(err) {
				return nil, err
			}
		}
	}

	return p.res, nil
}

func (p *propertiesParser) report(err *ParseError) bool {
	if p.sink == nil {
		return false
	}
	p.sink(err)
	return true
}

func (p *propertiesParser) parseEntity(id, raw string, pos int) *ParseError {
	name, key := id, ""
	if idx := strings.Index(id, "["); idx != -1 {
		if !strings.HasSuffix(id, "]") || idx+1 >= len(id)-1 {
			return &ParseError{Message: fmt.Sprintf("Malformed key in ID: %q", id), Pos: pos, Kind: KindParse}
		}
		name = id[:idx]
		key = id[idx+1 : len(id)-1]
	}

	var attr string
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return &ParseError{
			Message: fmt.Sprintf("Error in ID: %q. Nested attributes are not supported.", name),
			Pos:     pos,
			Kind:    KindParse,
		}
	}
	if len(parts) == 2 {
		name, attr = parts[0], parts[1]
		if strings.HasPrefix(attr, "$") {
			return &ParseError{Message: `Attribute can't start with "$"`, Pos: pos, Kind: KindParse}
		}
	}

	return p.setEntityValue(name, attr, key, unescapeProperties(raw), pos)
}

func (p *propertiesParser) setEntityValue(id, attr, key, raw string, pos int) *ParseError {
	value, err := parsePropertiesString(raw, pos)
	if err != nil {
		return err
	}

	entity, exists := p.res.Get(id)
	if !exists {
		entity = &ast.Entity{ID: id}
	}

	target := entity
	if attr != "" {
		a, ok := entity.Attr(attr)
		if !ok {
			a = &ast.Entity{ID: attr}
		}
		target = a
	}

	if key == "" {
		if target.Value != nil {
			return &ParseError{Message: fmt.Sprintf("Duplicate entry ID %q", fullID(id, attr, key)), Pos: pos, Kind: KindDuplicate}
		}
		target.Value = value
	} else {
		switch v := target.Value.(type) {
		case nil:
			target.Value = &ast.Hash{}
		case ast.Str:
			index, err := parsePropertiesIndex(string(v), pos)
			if err != nil {
				return err
			}
			target.Index = index
			target.Value = &ast.Hash{}
		case *ast.Hash:
		default:
			return &ParseError{Message: "Malformed index", Pos: pos, Kind: KindParse}
		}

		h := target.Value.(*ast.Hash)
		if h.Has(key) {
			return &ParseError{Message: fmt.Sprintf("Duplicate entry ID %q", fullID(id, attr, key)), Pos: pos, Kind: KindDuplicate}
		}
		h.Set(key, value)
	}

	if attr != "" {
		entity.SetAttr(target)
	}
	if !exists {
		p.res.Set(entity)
	}
	return nil
}

func parsePropertiesString(raw string, pos int) (ast.Value, *ParseError) {
	if !strings.Contains(raw, "{{") {
		return ast.Str(raw), nil
	}

	matches := propsPlaceableRe.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) > MaxPlaceables {
		return nil, &ParseError{
			Message: fmt.Sprintf("Too many placeables (%d, max allowed is %d)", len(matches), MaxPlaceables),
			Pos:     pos,
			Kind:    KindParse,
		}
	}
	if len(matches) == 0 {
		return ast.Str(raw), nil
	}

	var out ast.Pattern
	last := 0
	for _, m := range matches {
		if m[0] > last {
			out = append(out, ast.Str(raw[last:m[0]]))
		}
		name := raw[m[2]:m[3]]
		if name != "" {
			out = append(out, ast.Placeable{Expr: propertiesRef(name)})
		}
		last = m[1]
	}
	if last < len(raw) {
		out = append(out, ast.Str(raw[last:]))
	}
	return out, nil
}

func propertiesRef(name string) ast.Expr {
	if v, ok := strings.CutPrefix(name, "$"); ok {
		return ast.Var{Name: v}
	}
	return ast.Ident{Name: name}
}

// parsePropertiesIndex turns "{[ plural(n) ]}" into @cldr.plural(n) and
// "{[ id ]}" into a bare identifier selector.
func parsePropertiesIndex(s string, pos int) ([]ast.Expr, *ParseError) {
	m := propsIndexRe.FindStringSubmatch(s)
	if m == nil {
		return nil, &ParseError{Message: "Malformed index", Pos: pos, Kind: KindParse}
	}
	if arg := strings.TrimSpace(m[2]); arg != "" {
		return []ast.Expr{&ast.Call{
			Callee: &ast.Prop{Obj: ast.Global{Name: "cldr"}, Name: m[1]},
			Args:   []ast.Expr{propertiesRef(arg)},
		}}, nil
	}
	return []ast.Expr{ast.Ident{Name: m[1]}}, nil
}

func unescapeProperties(s string) string {
	if strings.Contains(s, `\`) {
		s = propsControlCharsRe.ReplaceAllString(s, "$1")
	}
	return propsUnicodeRe.ReplaceAllStringFunc(s, func(match string) string {
		cp, err := strconv.ParseUint(match[2:], 16, 32)
		if err != nil {
			return match
		}
		return string(rune(cp))
	})
}

// isContinued reports whether the line ends with a single, unescaped backslash.
func isContinued(line string) bool {
	n := len(line)
	return n >= 2 && line[n-1] == '\\' && line[n-2] != '\\'
}

func splitLines(src string) []propsLine {
	var lines []propsLine
	start := -1
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' || src[i] == '\r' {
			if start != -1 {
				lines = append(lines, propsLine{text: src[start:i], pos: start})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		lines = append(lines, propsLine{text: src[start:], pos: start})
	}
	return lines
}

func fullID(id, attr, key string) string {
	if attr != "" {
		id += "." + attr
	}
	if key != "" {
		id += "[" + key + "]"
	}
	return id
}
