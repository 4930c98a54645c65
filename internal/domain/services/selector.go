package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

// SplitSelector splits a selector list into its top-level selectors.
// Commas nested in brackets, parentheses or strings do not split.
func SplitSelector(selector string) []string {
	var (
		parts   []string
		current strings.Builder
		depth   int
		offset  int
	)

	s := scanner.New(selector)
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF {
			break
		}
		if tok.Type == scanner.TokenError {
			// keep the input the scanner could not tokenize verbatim
			if offset < len(selector) {
				current.WriteString(selector[offset:])
			}
			break
		}
		offset += len(tok.Value)

		switch {
		case tok.Type == scanner.TokenFunction:
			depth++
		case tok.Type == scanner.TokenChar && (tok.Value == "(" || tok.Value == "["):
			depth++
		case tok.Type == scanner.TokenChar && (tok.Value == ")" || tok.Value == "]"):
			if depth > 0 {
				depth--
			}
		case tok.Type == scanner.TokenChar && tok.Value == "," && depth == 0:
			if part := strings.TrimSpace(current.String()); part != "" {
				parts = append(parts, part)
			}
			current.Reset()
			continue
		}
		current.WriteString(tok.Value)
	}

	if part := strings.TrimSpace(current.String()); part != "" {
		parts = append(parts, part)
	}
	return parts
}

// ErrUnsupportedSelector is returned for selectors the matcher cannot evaluate
// against a single start tag (combinators, structural pseudo-classes).
var ErrUnsupportedSelector = errors.New("unsupported selector")

// SelectorSubject is what a selector is matched against: one start tag.
type SelectorSubject struct {
	Tag   string
	Attrs map[string]string
}

// Selector is a compiled selector list.
type Selector struct {
	raw  string
	alts []compound
}

// CompileSelector parses a condition selector for matching.
func CompileSelector(selector string) (*Selector, error) {
	p := &selectorParser{}
	s := scanner.New(selector)
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF {
			break
		}
		if tok.Type == scanner.TokenError {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedSelector, selector)
		}
		if tok.Type == scanner.TokenComment {
			continue
		}
		p.tokens = append(p.tokens, tok)
	}

	alts, err := p.parseList(false)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, selector)
	}
	if p.pos != len(p.tokens) || len(alts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSelector, selector)
	}
	return &Selector{raw: selector, alts: alts}, nil
}

// String returns the selector source
func (s *Selector) String() string {
	return s.raw
}

// Matches reports whether any selector of the list matches the subject.
func (s *Selector) Matches(subject SelectorSubject) bool {
	return anyMatch(s.alts, subject)
}

func anyMatch(alts []compound, subject SelectorSubject) bool {
	for _, alt := range alts {
		if alt.matches(subject) {
			return true
		}
	}
	return false
}

type matcher interface {
	matches(subject SelectorSubject) bool
}

type compound []matcher

func (c compound) matches(subject SelectorSubject) bool {
	for _, m := range c {
		if !m.matches(subject) {
			return false
		}
	}
	return true
}

type typeMatcher string

func (m typeMatcher) matches(subject SelectorSubject) bool {
	return strings.EqualFold(string(m), subject.Tag)
}

type attrMatcher struct {
	name     string
	op       string
	value    string
	foldCase bool
}

func (m attrMatcher) matches(subject SelectorSubject) bool {
	actual, ok := subject.Attrs[m.name]
	if !ok {
		return false
	}
	value := m.value
	if m.foldCase {
		actual, value = strings.ToLower(actual), strings.ToLower(value)
	}
	switch m.op {
	case "":
		return true
	case "=":
		return actual == value
	case "~=":
		for _, word := range strings.Fields(actual) {
			if word == value {
				return true
			}
		}
		return false
	case "|=":
		return actual == value || strings.HasPrefix(actual, value+"-")
	case "^=":
		return value != "" && strings.HasPrefix(actual, value)
	case "$=":
		return value != "" && strings.HasSuffix(actual, value)
	case "*=":
		return value != "" && strings.Contains(actual, value)
	default:
		return false
	}
}

type notMatcher []compound

func (m notMatcher) matches(subject SelectorSubject) bool {
	return !anyMatch(m, subject)
}

type isMatcher []compound

func (m isMatcher) matches(subject SelectorSubject) bool {
	return anyMatch(m, subject)
}

type selectorParser struct {
	tokens []*scanner.Token
	pos    int
}

func (p *selectorParser) peek() *scanner.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return p.tokens[p.pos]
}

func (p *selectorParser) next() *scanner.Token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}
	return tok
}

func (p *selectorParser) skipSpace() {
	for tok := p.peek(); tok != nil && tok.Type == scanner.TokenS; tok = p.peek() {
		p.pos++
	}
}

func isChar(tok *scanner.Token, c string) bool {
	return tok != nil && tok.Type == scanner.TokenChar && tok.Value == c
}

// parseList parses comma separated compounds, up to EOF or, when nested,
// up to and including the closing parenthesis.
func (p *selectorParser) parseList(nested bool) ([]compound, error) {
	var alts []compound
	for {
		p.skipSpace()
		c, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		if len(c) == 0 {
			return nil, ErrUnsupportedSelector
		}
		alts = append(alts, c)
		p.skipSpace()

		tok := p.next()
		switch {
		case tok == nil && !nested:
			return alts, nil
		case isChar(tok, ","):
			continue
		case isChar(tok, ")") && nested:
			return alts, nil
		default:
			// combinators and anything else we cannot evaluate on one tag
			return nil, ErrUnsupportedSelector
		}
	}
}

func (p *selectorParser) parseCompound() (compound, error) {
	var c compound
	for {
		tok := p.peek()
		switch {
		case tok == nil, tok.Type == scanner.TokenS, isChar(tok, ","), isChar(tok, ")"):
			return c, nil
		case tok.Type == scanner.TokenIdent && len(c) == 0:
			p.pos++
			c = append(c, typeMatcher(tok.Value))
		case isChar(tok, "*") && len(c) == 0:
			p.pos++
			c = append(c, compound{})
		case tok.Type == scanner.TokenHash:
			p.pos++
			c = append(c, attrMatcher{name: "id", op: "=", value: strings.TrimPrefix(tok.Value, "#")})
		case isChar(tok, "."):
			p.pos++
			ident := p.next()
			if ident == nil || ident.Type != scanner.TokenIdent {
				return nil, ErrUnsupportedSelector
			}
			c = append(c, attrMatcher{name: "class", op: "~=", value: ident.Value})
		case isChar(tok, "["):
			p.pos++
			m, err := p.parseAttr()
			if err != nil {
				return nil, err
			}
			c = append(c, m)
		case isChar(tok, ":"):
			p.pos++
			m, err := p.parsePseudo()
			if err != nil {
				return nil, err
			}
			c = append(c, m)
		default:
			return nil, ErrUnsupportedSelector
		}
	}
}

// attrOperator returns the attribute match operator of tok, or "".
func attrOperator(tok *scanner.Token) string {
	if tok == nil {
		return ""
	}
	switch tok.Type {
	case scanner.TokenIncludes:
		return "~="
	case scanner.TokenDashMatch:
		return "|="
	case scanner.TokenPrefixMatch:
		return "^="
	case scanner.TokenSuffixMatch:
		return "$="
	case scanner.TokenSubstringMatch:
		return "*="
	default:
		return ""
	}
}

func (p *selectorParser) parseAttr() (matcher, error) {
	p.skipSpace()
	name := p.next()
	if name == nil || name.Type != scanner.TokenIdent {
		return nil, ErrUnsupportedSelector
	}
	m := attrMatcher{name: strings.ToLower(name.Value)}

	p.skipSpace()
	tok := p.next()
	if isChar(tok, "]") {
		return m, nil
	}
	switch {
	case isChar(tok, "="):
		m.op = "="
	case attrOperator(tok) != "":
		m.op = attrOperator(tok)
	default:
		return nil, ErrUnsupportedSelector
	}

	p.skipSpace()
	value := p.next()
	if value == nil {
		return nil, ErrUnsupportedSelector
	}
	switch value.Type {
	case scanner.TokenString:
		m.value = unquote(value.Value)
	case scanner.TokenIdent, scanner.TokenNumber, scanner.TokenDimension:
		m.value = value.Value
	default:
		return nil, ErrUnsupportedSelector
	}

	p.skipSpace()
	tok = p.next()
	if tok != nil && tok.Type == scanner.TokenIdent && strings.EqualFold(tok.Value, "i") {
		m.foldCase = true
		p.skipSpace()
		tok = p.next()
	}
	if !isChar(tok, "]") {
		return nil, ErrUnsupportedSelector
	}
	return m, nil
}

func (p *selectorParser) parsePseudo() (matcher, error) {
	tok := p.next()
	if tok == nil || tok.Type != scanner.TokenFunction {
		return nil, ErrUnsupportedSelector
	}
	switch strings.ToLower(tok.Value) {
	case "not(":
		alts, err := p.parseList(true)
		if err != nil {
			return nil, err
		}
		return notMatcher(alts), nil
	case "is(", "where(", "matches(":
		alts, err := p.parseList(true)
		if err != nil {
			return nil, err
		}
		return isMatcher(alts), nil
	default:
		return nil, ErrUnsupportedSelector
	}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
