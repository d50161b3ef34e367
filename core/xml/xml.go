// Package xml loads tag-tree Scripture markup (USX) into a small closed
// node tree that the verse walker dispatches over.
//
// Security Notes:
//   - Parsing goes through xmlquery, which uses Go's encoding/xml internally
//     and therefore never fetches external entities.
package xml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// bookCodeExpr selects the book identifier of a USX document.
var bookCodeExpr = xpath.MustCompile(`//book[@code]`)

// Node is either an *Element or a *Text.
type Node interface {
	node()
}

// Element is a markup element with its attributes and children.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []Node
}

// Text is a run of character data.
type Text struct {
	Value string
}

func (*Element) node() {}
func (*Text) node()    {}

// Attr returns the value of attribute name, or "".
func (e *Element) Attr(name string) string {
	return e.Attrs[name]
}

// HasAttr reports whether the attribute is present, even if empty.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attrs[name]
	return ok
}

// InnerTextExcept returns the concatenated text of all descendants, leaving
// out the subtrees of elements matching skip. A nil skip keeps everything.
func (e *Element) InnerTextExcept(skip func(*Element) bool) string {
	var buf strings.Builder
	collectText(&buf, e, skip)
	return buf.String()
}

func collectText(buf *strings.Builder, n Node, skip func(*Element) bool) {
	switch v := n.(type) {
	case *Text:
		buf.WriteString(v.Value)
	case *Element:
		if skip != nil && skip(v) {
			return
		}
		for _, child := range v.Children {
			collectText(buf, child, skip)
		}
	}
}

// Document is a parsed markup document.
type Document struct {
	root *xmlquery.Node
}

// Parse parses XML data and returns a Document.
func Parse(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the document element converted to a Node tree,
// or nil when the document has no element.
func (d *Document) Root() *Element {
	if d.root == nil {
		return nil
	}
	for child := d.root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			if el, ok := convert(child).(*Element); ok {
				return el
			}
		}
	}
	return nil
}

// BookCode returns the trimmed code attribute of the first book element.
func (d *Document) BookCode() string {
	if d.root == nil {
		return ""
	}
	node := xmlquery.QuerySelector(d.root, bookCodeExpr)
	if node == nil {
		return ""
	}
	return strings.TrimSpace(node.SelectAttr("code"))
}

// convert turns an xmlquery node into a Node. Comments, declarations and
// processing instructions yield nil.
func convert(n *xmlquery.Node) Node {
	switch n.Type {
	case xmlquery.ElementNode:
		el := &Element{
			Tag:   n.Data,
			Attrs: make(map[string]string, len(n.Attr)),
		}
		for _, attr := range n.Attr {
			el.Attrs[attr.Name.Local] = attr.Value
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if c := convert(child); c != nil {
				el.Children = append(el.Children, c)
			}
		}
		return el
	case xmlquery.TextNode, xmlquery.CharDataNode:
		return &Text{Value: n.Data}
	}
	return nil
}
