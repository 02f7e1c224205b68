package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown converts reports, tables included.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown report into an HTML fragment for the website.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("cannot convert markdown to html: %w", err)
	}
	return buf.String(), nil
}
