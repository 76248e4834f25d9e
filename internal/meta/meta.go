// Package meta processes <meta> directives in the source document. Each
// named tag is classified as a compile-time flag, an exposed-name override,
// or a generic runtime parameter; consumed tags are stripped from the tree.
package meta

import (
	"context"
	"strings"

	"github.com/vk/slpbuild/internal/build"
	"github.com/vk/slpbuild/internal/ctxlog"
	"github.com/vk/slpbuild/internal/document"
)

// FlagSentinel is the content value that turns any <meta> name into a
// compile-time flag, regardless of the reserved set.
const FlagSentinel = "compile-flag"

// ExposedNameDirective is the <meta> name that overrides the exposed name of
// the generated program on JS targets.
const ExposedNameDirective = "jsExposedName"

// Process scans every <meta> element and routes it into the build context.
// Tags without a name attribute (charset, http-equiv) are left untouched, as
// are tags holding runtime parameters; flag and override tags are removed.
func Process(ctx context.Context, doc *document.Document, bctx *build.Context) {
	logger := ctxlog.FromContext(ctx)

	for _, m := range doc.Metas() {
		name, ok := document.Attr(m, "name")
		if !ok || name == "" {
			continue
		}
		content, _ := document.Attr(m, "content")

		switch {
		case (build.IsReservedFlag(name) && content == "true") || content == FlagSentinel:
			bctx.SetFlag(name)
			doc.Remove(m)
			logger.Debug("Compile-time flag set from meta directive.", "flag", name)

		case bctx.Target.IsJS() && name == ExposedNameDirective:
			value := strings.TrimSpace(content)
			if value == "" {
				logger.Warn("Ignoring blank jsExposedName directive, keeping the default exposed name.")
			} else {
				bctx.ExposedNameOverride = value
				logger.Debug("Exposed-name override recorded.", "name", value)
			}
			doc.Remove(m)

		default:
			// Runtime parameter: recorded, tag kept in the document.
			bctx.Params[name] = content
		}
	}
}
