// Package htmldoc extracts start tags from HTML documents for linting.
package htmldoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

// Parser tokenizes HTML and reports each start tag with its position.
type Parser struct{}

// NewParser creates a new HTML parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseTags returns the start and self-closing tags of the document in
// order. Lines and columns are 1-based and point at the tag's '<'.
func (p *Parser) ParseTags(ctx context.Context, content []byte) ([]entities.Tag, error) {
	z := html.NewTokenizer(bytes.NewReader(content))
	pos := position{line: 1, column: 1}

	var tags []entities.Tag
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return tags, nil
			}
			return nil, fmt.Errorf("tokenize line %d: %w", pos.line, z.Err())
		}

		start := pos
		pos.advance(z.Raw())

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		if len(tags)%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		token := z.Token()
		tag := entities.Tag{
			Name:   token.Data,
			Line:   start.line,
			Column: start.column,
		}
		for _, attr := range token.Attr {
			name := attr.Key
			if attr.Namespace != "" {
				name = attr.Namespace + ":" + attr.Key
			}
			tag.Attrs = append(tag.Attrs, entities.TagAttr{Name: name, Value: attr.Val})
		}
		tags = append(tags, tag)
	}
}

type position struct {
	line   int
	column int
}

func (p *position) advance(raw []byte) {
	for {
		i := bytes.IndexByte(raw, '\n')
		if i < 0 {
			p.column += len(raw)
			return
		}
		p.line++
		p.column = 1
		raw = raw[i+1:]
	}
}
