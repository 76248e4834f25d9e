package document

import (
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of the named attribute on n and whether it exists.
func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// RemoveAttr strips the named attribute from n, if present.
func RemoveAttr(n *html.Node, name string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	n.Attr = attrs
}

// HasClass reports whether n's class attribute contains the given class.
func HasClass(n *html.Node, class string) bool {
	val, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(val) {
		if c == class {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of n's subtree.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// TagName returns n's tag name in the conventional upper-case form used in
// diagnostics.
func TagName(n *html.Node) string {
	return strings.ToUpper(n.Data)
}
