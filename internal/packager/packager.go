// Package packager finalizes JS-target settings and writes the sibling
// output artifact. It runs only after every prior phase has succeeded, so a
// failing build never leaves a partial artifact behind.
package packager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/slpbuild/internal/build"
	"github.com/vk/slpbuild/internal/codegen"
	"github.com/vk/slpbuild/internal/ctxlog"
	"github.com/vk/slpbuild/internal/document"
)

// PackJS finalizes a JS-target build: it ensures the modern-output flag,
// resolves the exposed name for the program's public entry symbol, and,
// unless embedding is enabled, writes the processed document to a sibling
// <dir>/<base>.html file next to the output artifact.
func PackJS(ctx context.Context, doc *document.Document, bctx *build.Context, prog *codegen.Program) error {
	logger := ctxlog.FromContext(ctx)
	base := BaseName(bctx.OutputPath)

	if !bctx.Flag(build.FlagJSModern) {
		bctx.SetFlag(build.FlagJSModern)
		prog.Flags[build.FlagJSModern] = true
		logger.Debug("Defined missing modern-output flag.", "flag", build.FlagJSModern)
	}

	switch {
	case bctx.ExposedNameExternal != "":
		logger.Warn("Exposed name already set externally, keeping it.", "name", bctx.ExposedNameExternal)
		bctx.ExposedName = bctx.ExposedNameExternal
	case bctx.ExposedNameOverride != "":
		bctx.ExposedName = bctx.ExposedNameOverride
	default:
		bctx.ExposedName = base
	}
	prog.ExposedName = bctx.ExposedName
	logger.Debug("Exposed name resolved.", "name", bctx.ExposedName)

	if !bctx.Flag(build.FlagEmbedHTML) {
		markup, err := doc.HTML()
		if err != nil {
			return fmt.Errorf("failed to serialize processed document: %w", err)
		}
		sibling := filepath.Join(filepath.Dir(bctx.OutputPath), base+".html")
		if err := os.WriteFile(sibling, []byte(markup), 0o644); err != nil {
			return fmt.Errorf("failed to write sibling document %s: %w", sibling, err)
		}
		logger.Info("Sibling document written.", "path", sibling)
	}
	return nil
}

// BaseName derives the output base name from the artifact path: the portion
// between the last path separator and the last extension separator, or the
// whole name when either is absent.
func BaseName(outputPath string) string {
	name := filepath.Base(outputPath)
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}
