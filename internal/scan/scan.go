// Package scan collects component-use declarations from <script> elements.
// A declaration is a space-separated list of component names in the
// data-slp-use attribute; every other data-* attribute on the same tag
// becomes the shared attribute set for those components. Consumed
// declaration markup is stripped from the tree.
package scan

import (
	"context"
	"strings"

	"github.com/vk/slpbuild/internal/build"
	"github.com/vk/slpbuild/internal/ctxlog"
	"github.com/vk/slpbuild/internal/document"
)

const (
	// DeclarationAttr names the components a <script> tag declares.
	DeclarationAttr = "data-slp-use"
	// ReservedPrefix marks the attributes that travel with a declaration.
	ReservedPrefix = "data-"
)

// Scan walks every <script> element, records declarations into the build
// context, and cleans the element up: a tag with neither an external source
// nor a non-blank inline body is removed, otherwise only the declaration
// attribute is stripped. The attribute set keeps every data-* attribute
// except the declaration attribute itself.
func Scan(ctx context.Context, doc *document.Document, bctx *build.Context) {
	logger := ctxlog.FromContext(ctx)

	for _, s := range doc.Scripts() {
		decl, _ := document.Attr(s, DeclarationAttr)
		if names := strings.Fields(decl); len(names) > 0 {
			attrs := make(map[string]string)
			for _, a := range s.Attr {
				if a.Key != DeclarationAttr && strings.HasPrefix(a.Key, ReservedPrefix) {
					attrs[a.Key] = a.Val
				}
			}
			for _, name := range names {
				// Map semantics: a later declaration replaces an earlier one.
				bctx.Components[name] = attrs
				logger.Debug("Component declared.", "component", name, "attributes", len(attrs))
			}
		}

		src, _ := document.Attr(s, "src")
		if src == "" && strings.TrimSpace(document.Text(s)) == "" {
			doc.Remove(s)
		} else {
			document.RemoveAttr(s, DeclarationAttr)
		}
	}
}
