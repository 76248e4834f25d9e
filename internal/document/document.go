// Package document owns the mutable markup tree for one build. It wraps the
// golang.org/x/net/html parser with the narrow query, mutation, and
// serialization operations the pipeline stages need, so no stage touches the
// parser API directly.
package document

import (
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vk/slpbuild/internal/build"
)

// Document is the mutable markup tree for a single build. It is exclusively
// owned by the build invocation and discarded when the build ends.
type Document struct {
	root *html.Node
}

// Load reads and parses the markup file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, build.Errorf(build.ErrSourceNotFound, "source document not found: %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse parses a markup document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Body returns the document's body element. The parser guarantees one exists.
func (d *Document) Body() *html.Node {
	return d.first(func(n *html.Node) bool { return n.DataAtom == atom.Body })
}

// Metas returns every <meta> element in document order.
func (d *Document) Metas() []*html.Node {
	return d.find(func(n *html.Node) bool { return n.DataAtom == atom.Meta })
}

// Scripts returns every <script> element in document order.
func (d *Document) Scripts() []*html.Node {
	return d.find(func(n *html.Node) bool { return n.DataAtom == atom.Script })
}

// ElementsByClass returns every element whose class list contains class.
func (d *Document) ElementsByClass(class string) []*html.Node {
	return d.find(func(n *html.Node) bool { return HasClass(n, class) })
}

// Remove detaches n from the tree. Nodes without a parent are ignored.
func (d *Document) Remove(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// BodyInnerHTML serializes the body element's child markup.
func (d *Document) BodyInnerHTML() (string, error) {
	var sb strings.Builder
	for c := d.Body().FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// HTML serializes the whole document in its current state.
func (d *Document) HTML() (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, d.root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// find returns every element node matching pred, in depth-first order.
func (d *Document) find(pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// first returns the first element node matching pred, or nil.
func (d *Document) first(pred func(*html.Node) bool) *html.Node {
	nodes := d.find(pred)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
