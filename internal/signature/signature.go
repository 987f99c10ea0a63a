package signature

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMalformed is returned by Parse for text that is not an encoded signature.
var ErrMalformed = errors.New("malformed type signature")

var baseTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'V': "void",
	'Z': "boolean",
}

// SimpleName returns the readable, unqualified name of a declared type.
//
//   - "I"                                   -> "int"
//   - "QString;"                            -> "String"
//   - "Ljava.util.List<Ljava.lang.String;>;" -> "List<String>"
//   - "[[Z"                                 -> "boolean[][]"
//   - "time.Time"                           -> "Time"
func SimpleName(sig string) string {
	sig = strings.TrimSpace(sig)
	if sig == "" {
		return sig
	}

	if name, err := Parse(sig); err == nil {
		return name
	}

	return StripQualifiers(sig)
}

// Parse decodes a complete encoded signature into its simple name. It fails
// with ErrMalformed if any input is left over or the encoding is invalid.
func Parse(sig string) (string, error) {
	p := &parser{input: sig}

	name, err := p.typeSignature()
	if err != nil {
		return "", err
	}

	if p.pos != len(p.input) {
		return "", fmt.Errorf("%w: trailing %q in %q", ErrMalformed, p.input[p.pos:], sig)
	}

	return name, nil
}

// StripQualifiers drops dotted package qualifiers from every identifier chain
// in source-form type text, keeping the last element of each chain.
func StripQualifiers(text string) string {
	var out strings.Builder

	out.Grow(len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isIdentStart(r) {
			out.WriteString(text[i : i+size])
			i += size

			continue
		}

		// Read a chain of identifiers joined by single dots, keep the last
		last, next := readIdent(text, i)
		for next+1 < len(text) && text[next] == '.' {
			r2, _ := utf8.DecodeRuneInString(text[next+1:])
			if !isIdentStart(r2) {
				break
			}

			last, next = readIdent(text, next+1)
		}

		out.WriteString(last)
		i = next
	}

	return out.String()
}

func readIdent(text string, start int) (string, int) {
	end := start
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !isIdentPart(r) {
			break
		}

		end += size
	}

	return text[start:end], end
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

type parser struct {
	input string
	pos   int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d in %q", ErrMalformed, fmt.Sprintf(format, args...), p.pos, p.input)
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}

	return p.input[p.pos], true
}

func (p *parser) typeSignature() (string, error) {
	c, ok := p.peek()
	if !ok {
		return "", p.errorf("unexpected end")
	}

	if name, ok := baseTypes[c]; ok {
		p.pos++
		return name, nil
	}

	switch c {
	case '[':
		p.pos++

		elem, err := p.typeSignature()
		if err != nil {
			return "", err
		}

		return elem + "[]", nil

	case 'L', 'Q':
		p.pos++
		return p.classType()

	case 'T':
		p.pos++

		end := strings.IndexByte(p.input[p.pos:], ';')
		if end <= 0 {
			return "", p.errorf("unterminated type variable")
		}

		name := p.input[p.pos : p.pos+end]
		if !isIdentifier(name) {
			return "", p.errorf("invalid type variable %q", name)
		}

		p.pos += end + 1

		return name, nil

	case '!':
		p.pos++
		return p.typeArgument()

	default:
		return "", p.errorf("unexpected %q", c)
	}
}

// classType parses the body of an L/Q signature up to and including ';'.
// Package qualifiers and enclosing types are dropped, whether nesting is
// written with '$' or '.'; once a segment carries type arguments the rest of
// the chain is kept (Outer<T>.Inner).
func (p *parser) classType() (string, error) {
	var segments []string

	firstGeneric := -1

	for {
		start := p.pos
		for p.pos < len(p.input) && !strings.ContainsRune(".<;", rune(p.input[p.pos])) {
			p.pos++
		}

		ident := p.input[start:p.pos]
		if !isIdentifier(ident) {
			return "", p.errorf("invalid identifier %q", ident)
		}

		segments = append(segments, nestedNames(ident)...)

		c, ok := p.peek()
		if !ok {
			return "", p.errorf("unterminated class type")
		}

		if c == '<' {
			args, err := p.typeArguments()
			if err != nil {
				return "", err
			}

			if firstGeneric < 0 {
				firstGeneric = len(segments) - 1
			}

			segments[len(segments)-1] += "<" + strings.Join(args, ", ") + ">"

			c, ok = p.peek()
			if !ok {
				return "", p.errorf("unterminated class type")
			}
		}

		p.pos++

		if c == ';' {
			break
		}

		if c != '.' {
			return "", p.errorf("unexpected %q", c)
		}
	}

	start := len(segments) - 1
	if firstGeneric >= 0 && firstGeneric < start {
		start = firstGeneric
	}

	return strings.Join(segments[start:], "."), nil
}

// nestedNames splits a binary class name at '$'. A '$' with no name before
// it belongs to the name that follows ("$Proxy").
func nestedNames(ident string) []string {
	var names []string

	pending := ""

	for _, part := range strings.Split(ident, "$") {
		if part == "" {
			pending += "$"
			continue
		}

		names = append(names, pending+part)
		pending = ""
	}

	if len(names) == 0 {
		return []string{ident}
	}

	names[len(names)-1] += pending

	return names
}

func (p *parser) typeArguments() ([]string, error) {
	p.pos++ // '<'

	var args []string

	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated type arguments")
		}

		if c == '>' {
			p.pos++
			break
		}

		arg, err := p.typeArgument()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	if len(args) == 0 {
		return nil, p.errorf("empty type arguments")
	}

	return args, nil
}

func (p *parser) typeArgument() (string, error) {
	c, ok := p.peek()
	if !ok {
		return "", p.errorf("unexpected end")
	}

	switch c {
	case '*':
		p.pos++
		return "?", nil

	case '+', '-':
		p.pos++

		bound, err := p.typeSignature()
		if err != nil {
			return "", err
		}

		if c == '+' {
			return "? extends " + bound, nil
		}

		return "? super " + bound, nil

	default:
		return p.typeSignature()
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}

		if !isIdentPart(r) {
			return false
		}
	}

	return true
}
