package app

import (
	"errors"
	"fmt"

	"github.com/vk/slpbuild/internal/build"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SourcePath    string // markup document, default index.html
	OutputPath    string // generated program artifact
	ManifestsPath string // descriptor manifest .hcl files
	Target        build.Target

	// ExposedName is the external exposed-name mechanism (JS targets only);
	// empty leaves resolution to the meta override or the derived default.
	ExposedName string

	LogFormat string
	LogLevel  string
}

// NewConfig validates and returns the configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SourcePath == "" {
		return nil, errors.New("SourcePath is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
	}
	switch cfg.Target {
	case build.TargetJS, build.TargetGeneric:
	default:
		return nil, fmt.Errorf("unknown target %q", cfg.Target)
	}
	return &cfg, nil
}
