// Package dom parses rendered HTML and queries it the way a user perceives
// the page: by label, placeholder, role and attributes.
package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node wraps a parsed element.
type Node struct {
	*html.Node
}

// Document is a parsed HTML document or fragment.
type Document struct {
	root *html.Node
	full bool
}

// Parse parses body and fails the test on malformed input. The parser
// always synthesizes an html element, so use FullDocument to tell a page
// from a fragment.
func Parse(t testing.TB, body string) Document {
	t.Helper()
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return Document{root: root, full: isFullDocument(body)}
}

// FullDocument reports whether the parsed body was a whole page rather than
// a fragment.
func (d Document) FullDocument() bool {
	return d.full
}

func isFullDocument(body string) bool {
	head := strings.ToLower(strings.TrimSpace(body))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

// All returns every element matching pred in document order.
func (d Document) All(pred func(Node) bool) []Node {
	var out []Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(Node{n}) {
			out = append(out, Node{n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// First returns the first element matching pred.
func (d Document) First(pred func(Node) bool) (Node, bool) {
	matches := d.All(pred)
	if len(matches) == 0 {
		return Node{}, false
	}
	return matches[0], true
}

// ByID returns the element with id.
func (d Document) ByID(id string) (Node, bool) {
	return d.First(func(n Node) bool { return n.Attr("id") == id })
}

// ByAttr returns the first element whose attribute name equals value.
func (d Document) ByAttr(name, value string) (Node, bool) {
	return d.First(func(n Node) bool { return n.HasAttr(name) && n.Attr(name) == value })
}

// ByPlaceholder returns the first control with the given placeholder.
func (d Document) ByPlaceholder(placeholder string) (Node, bool) {
	return d.ByAttr("placeholder", placeholder)
}

// ByLabelText returns the control referenced by the label whose text is
// exactly text.
func (d Document) ByLabelText(text string) (Node, bool) {
	label, ok := d.First(func(n Node) bool {
		return n.DataAtom == atom.Label && n.Text() == text
	})
	if !ok {
		return Node{}, false
	}
	if target := label.Attr("for"); target != "" {
		return d.ByID(target)
	}
	return Node{}, false
}

// ByRole returns the first element with the given role and, when name is
// not empty, that accessible text.
func (d Document) ByRole(role, name string) (Node, bool) {
	return d.First(func(n Node) bool {
		if n.Role() != role {
			return false
		}
		return name == "" || n.Text() == name
	})
}

// ByTagClass returns the first element with tag and class.
func (d Document) ByTagClass(tag atom.Atom, class string) (Node, bool) {
	return d.First(func(n Node) bool { return n.DataAtom == tag && n.HasClass(class) })
}

// Attr returns the attribute value or "".
func (n Node) Attr(name string) string {
	if n.Node == nil {
		return ""
	}
	for _, a := range n.Node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the attribute is present.
func (n Node) HasAttr(name string) bool {
	if n.Node == nil {
		return false
	}
	for _, a := range n.Node.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// HasClass reports whether class is in the class list.
func (n Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Role returns the explicit role or the implicit one for common elements.
func (n Node) Role() string {
	if role := n.Attr("role"); role != "" {
		return role
	}
	switch n.DataAtom {
	case atom.Button:
		return "button"
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return "heading"
	case atom.A:
		if n.HasAttr("href") {
			return "link"
		}
	}
	return ""
}

// Text returns the whitespace-normalized text content, skipping
// aria-hidden subtrees.
func (n Node) Text() string {
	if n.Node == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteString(" ")
			return
		}
		if c.Type == html.ElementNode && (Node{c}).Attr("aria-hidden") == "true" {
			return
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n.Node)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Disabled reports whether the control carries the disabled attribute.
func (n Node) Disabled() bool {
	return n.HasAttr("disabled")
}

// Parent returns the closest ancestor element matching pred.
func (n Node) Parent(pred func(Node) bool) (Node, bool) {
	if n.Node == nil {
		return Node{}, false
	}
	for p := n.Node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && pred(Node{p}) {
			return Node{p}, true
		}
	}
	return Node{}, false
}

// Tag matches elements by atom.
func Tag(tag atom.Atom) func(Node) bool {
	return func(n Node) bool { return n.DataAtom == tag }
}
