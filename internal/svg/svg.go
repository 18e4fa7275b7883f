// Package svg filters inline SVG markup through a fixed element allow-list
// and rewrites the root element for rendering.
//
// The allow-list is a security boundary: scripting-capable elements such as
// script and foreignObject are rejected by omission. Filtering is by element
// name only; attributes on allowed elements pass through untouched, so the
// boundary does not defend against attribute-level injection. Callers must
// treat icon files as trusted site assets, not user uploads.
package svg

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// allowedElements holds the lowercase names the sanitizer keeps. Basic shapes
// plus the structural elements icon files need; nothing that can script.
var allowedElements = map[string]bool{
	"circle":         true,
	"defs":           true,
	"desc":           true,
	"ellipse":        true,
	"line":           true,
	"lineargradient": true,
	"path":           true,
	"polygon":        true,
	"polyline":       true,
	"rect":           true,
	"stop":           true,
	"svg":            true,
	"title":          true,
	"use":            true,
}

// Attribute is one attribute to place on the root element. Attributes are
// emitted in slice order so output stays byte-deterministic.
type Attribute struct {
	Key   string
	Value string
}

// HasExtension reports whether path carries the .svg extension.
func HasExtension(path string) bool {
	return strings.HasSuffix(path, ".svg")
}

// IsInline reports whether content opens with an svg root element tag. The
// check is a cheap prefix sniff, not a parse.
func IsInline(content []byte) bool {
	if !bytes.HasPrefix(content, []byte("<svg")) {
		return false
	}
	if len(content) == len("<svg") {
		return false
	}
	switch content[len("<svg")] {
	case ' ', '\t', '\n', '\r', '>', '/':
		return true
	}
	return false
}

// Sanitize filters markup down to the element allow-list. Allowed tags are
// emitted with their original bytes, so authored casing and attributes
// survive. Disallowed tags, comments, and doctypes are dropped while their
// character data is kept, escaped.
func Sanitize(data []byte) []byte {
	tokenizer := html.NewTokenizer(bytes.NewReader(data))
	var out bytes.Buffer
	out.Grow(len(data))

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			// io.EOF, or a malformed trailing token that is dropped.
			return out.Bytes()
		}
		raw := append([]byte(nil), tokenizer.Raw()...)
		switch tokenType {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if allowedElements[string(name)] {
				out.Write(raw)
			}
		case html.TextToken:
			out.WriteString(html.EscapeString(string(tokenizer.Text())))
		}
	}
}

// RewriteRoot places attrs at the front of the root svg start tag and, when
// title is non-empty, injects a title element as the root's first child.
// Computed attributes come before authored ones, so on duplicate names the
// computed value wins under first-attribute-wins parsing. Returns nil when
// content does not open with a root svg tag.
func RewriteRoot(data []byte, attrs []Attribute, title string) []byte {
	if !IsInline(data) {
		return nil
	}
	end := rootTagEnd(data)
	if end < 0 {
		return nil
	}

	selfClosing := data[end-1] == '/'
	authored := data[len("<svg"):end]
	if selfClosing {
		authored = authored[:len(authored)-1]
	}

	var out bytes.Buffer
	out.Grow(len(data) + 64)
	out.WriteString("<svg")
	for _, attr := range attrs {
		out.WriteByte(' ')
		out.WriteString(attr.Key)
		out.WriteString(`="`)
		out.WriteString(html.EscapeString(attr.Value))
		out.WriteByte('"')
	}
	out.Write(authored)
	out.WriteByte('>')
	if title != "" {
		out.WriteString("<title>")
		out.WriteString(html.EscapeString(title))
		out.WriteString("</title>")
	}
	if selfClosing {
		out.WriteString("</svg>")
	}
	out.Write(data[end+1:])
	return out.Bytes()
}

// rootTagEnd returns the index of the '>' closing the leading tag, skipping
// over quoted attribute values.
func rootTagEnd(data []byte) int {
	quote := byte(0)
	for i := 0; i < len(data); i++ {
		ch := data[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '>':
			return i
		}
	}
	return -1
}
