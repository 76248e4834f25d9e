// Package codegen turns the validated build context into an ordered
// initialization program. Generation is pure analysis output: the program is
// a plain intermediate representation, and rendering it to target source is
// the assembler's job.
package codegen

import (
	"context"
	"fmt"

	"github.com/vk/slpbuild/internal/build"
	"github.com/vk/slpbuild/internal/ctxlog"
	"github.com/vk/slpbuild/internal/document"
	"github.com/vk/slpbuild/internal/registry"
)

// ParamsVar is the variable name of the runtime-parameter map in the
// generated program.
const ParamsVar = "params"

// EmbedTarget is the runtime root element receiving the embedded markup.
const EmbedTarget = "root"

// Generator builds initialization programs from a validated build context.
type Generator struct {
	registry *registry.Registry
}

// New creates a Generator backed by the given descriptor registry.
func New(reg *registry.Registry) *Generator {
	return &Generator{registry: reg}
}

// Generate produces the ordered initialization program: runtime parameters,
// per-component imports and registrations, the HTML-embedding statement,
// launch wiring, and auto-start wiring. Components are processed in sorted
// name order, matching the validator.
func (g *Generator) Generate(ctx context.Context, doc *document.Document, bctx *build.Context) (*Program, error) {
	logger := ctxlog.FromContext(ctx)
	prog := &Program{}

	if len(bctx.Params) > 0 {
		prog.Actions = append(prog.Actions, BuildArgsMap{Var: ParamsVar, Entries: copyMap(bctx.Params)})
	}

	for i, name := range bctx.ComponentNames() {
		desc, ok := g.registry.Resolve(name)
		if !ok {
			// Validation runs first, so a miss here is a pipeline bug.
			return nil, fmt.Errorf("component %q disappeared from the registry between validation and generation", name)
		}

		prog.Actions = append(prog.Actions, Import{Name: name})

		args := registrationArgs(desc, bctx.Components[name])
		if desc.Category == registry.CategoryVisual && len(args) > 0 {
			argsVar := fmt.Sprintf("args%d", i)
			prog.Actions = append(prog.Actions,
				BuildArgsMap{Var: argsVar, Entries: args},
				RegisterComponent{Name: name, ArgsVar: argsVar})
		} else {
			// Service declaration attributes are validated but deliberately
			// not forwarded as registration arguments.
			prog.Actions = append(prog.Actions, RegisterComponent{Name: name})
		}
	}

	embed := !bctx.Target.IsJS() || bctx.Flag(build.FlagEmbedHTML)
	if embed {
		literal, err := doc.BodyInnerHTML()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize body markup for embedding: %w", err)
		}
		prog.Actions = append(prog.Actions, AssignEmbeddedHTML{Target: EmbedTarget, Literal: literal})
	}

	if bctx.Target.IsJS() && !embed {
		prog.Actions = append(prog.Actions, SetOnLoadLaunch{})
	} else {
		prog.Actions = append(prog.Actions, AppendLaunchCall{})
	}

	if !bctx.Flag(build.FlagNoAutoStart) {
		prog.Actions = append(prog.Actions, AppendMainInitCall{})
	}

	prog.Flags = copyFlags(bctx.Flags)
	logger.Debug("Initialization program generated.", "actions", len(prog.Actions), "embed", embed)
	return prog, nil
}

// registrationArgs merges descriptor defaults under the declaration's own
// attribute set.
func registrationArgs(desc *registry.Descriptor, attrs map[string]string) map[string]string {
	if len(desc.Defaults) == 0 && len(attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(desc.Defaults)+len(attrs))
	for k, v := range desc.Defaults {
		out[k] = v
	}
	for k, v := range attrs {
		out[k] = v
	}
	return out
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyFlags(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
