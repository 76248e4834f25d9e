package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/slpbuild/internal/ctxlog"
	"github.com/vk/slpbuild/internal/fsutil"
	"github.com/vk/slpbuild/internal/schema"
)

// LoadManifests populates the registry from every .hcl manifest file found
// under manifestsPath. Parse failures abort immediately; translation
// problems (unknown categories, malformed defaults, duplicate components)
// are aggregated so a broken manifest set is reported in one pass.
func (r *Registry) LoadManifests(ctx context.Context, manifestsPath string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading descriptor manifests...", "path", manifestsPath)

	filePaths, err := fsutil.FindFilesByExtension(manifestsPath, ".hcl")
	if err != nil {
		return fmt.Errorf("failed to walk manifests directory %s: %w", manifestsPath, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", manifestsPath)
		return nil
	}

	parser := hclparse.NewParser()
	var errs []string

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
		}

		var manifest schema.Manifest
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &manifest); diags.HasErrors() {
			return fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
		}

		for _, block := range manifest.Components {
			desc, err := translateComponent(block, filePath)
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			if err := r.Register(desc); err != nil {
				errs = append(errs, err.Error())
			}
		}
		logger.Debug("Loaded descriptor manifest file.", "file", filePath)
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Info("Registry loaded successfully.", "descriptors", r.Len(), "files", len(filePaths))
	return nil
}
