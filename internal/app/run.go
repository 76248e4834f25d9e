package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/slpbuild/internal/build"
	"github.com/vk/slpbuild/internal/codegen"
	"github.com/vk/slpbuild/internal/ctxlog"
	"github.com/vk/slpbuild/internal/document"
	"github.com/vk/slpbuild/internal/emit"
	"github.com/vk/slpbuild/internal/meta"
	"github.com/vk/slpbuild/internal/packager"
	"github.com/vk/slpbuild/internal/scan"
	"github.com/vk/slpbuild/internal/validate"
)

// Run executes one build: load descriptors and the source document, process
// meta directives, scan declarations, validate, generate the initialization
// program, and write the artifacts. The first failure aborts the build
// before any artifact is written.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if _, err := os.Stat(a.config.ManifestsPath); err != nil {
		a.logger.Warn("Manifests path not accessible, starting with an empty registry.", "path", a.config.ManifestsPath)
	} else if err := a.registry.LoadManifests(ctx, a.config.ManifestsPath); err != nil {
		return fmt.Errorf("failed to load descriptor manifests: %w", err)
	}

	doc, err := document.Load(a.config.SourcePath)
	if err != nil {
		return err
	}
	a.logger.Debug("Source document loaded.", "path", a.config.SourcePath)

	bctx := build.NewContext(a.config.Target, a.config.SourcePath, a.config.OutputPath)
	bctx.ExposedNameExternal = a.config.ExposedName

	meta.Process(ctx, doc, bctx)
	a.logger.Debug("Meta directives processed.", "flags", len(bctx.Flags), "params", len(bctx.Params))

	scan.Scan(ctx, doc, bctx)
	a.logger.Debug("Component declarations scanned.", "components", len(bctx.Components))

	if err := validate.New(a.registry).Check(ctx, doc, bctx); err != nil {
		return err
	}
	a.logger.Info("Component validation passed.", "components", len(bctx.Components))

	prog, err := codegen.New(a.registry).Generate(ctx, doc, bctx)
	if err != nil {
		return fmt.Errorf("failed to generate initialization program: %w", err)
	}

	if bctx.Target.IsJS() {
		if err := packager.PackJS(ctx, doc, bctx, prog); err != nil {
			return err
		}
	}

	text, err := emit.NewJS().Assemble(prog)
	if err != nil {
		return fmt.Errorf("failed to assemble initialization program: %w", err)
	}
	if err := os.WriteFile(a.config.OutputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output artifact %s: %w", a.config.OutputPath, err)
	}

	a.logger.Info("Build finished.", "artifact", a.config.OutputPath)
	return nil
}
