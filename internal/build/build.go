package build

import "sort"

// Target identifies the kind of output artifact the build produces.
type Target string

const (
	// TargetJS emits a JavaScript program with a public entry symbol.
	TargetJS Target = "js"
	// TargetGeneric emits the initialization program for an embedding host.
	TargetGeneric Target = "generic"
)

// IsJS reports whether the target is JavaScript-like.
func (t Target) IsJS() bool { return t == TargetJS }

// Reserved compile-time flag names recognized in <meta> directives.
const (
	FlagNoAutoStart     = "noAutoStart"
	FlagEmbedHTML       = "embedHtml"
	FlagDisableFastInit = "disableFastInit"

	// FlagJSModern is defined by the packager for JS targets when absent.
	FlagJSModern = "jsModern"
)

// reservedFlags is the fixed set of flag names that a <meta> tag may set
// with content "true".
var reservedFlags = map[string]struct{}{
	FlagNoAutoStart:     {},
	FlagEmbedHTML:       {},
	FlagDisableFastInit: {},
}

// IsReservedFlag reports whether name belongs to the fixed reserved flag set.
func IsReservedFlag(name string) bool {
	_, ok := reservedFlags[name]
	return ok
}

// Context carries all state owned by one build invocation. It is created by
// the top-level build function and threaded through every stage; nothing
// survives it.
type Context struct {
	Target     Target
	SourcePath string
	OutputPath string

	// Flags holds compile-time flags set by <meta> directives or later
	// stages. Consumed at generation time, never persisted.
	Flags map[string]bool

	// Params holds runtime parameters collected from <meta> tags that are
	// neither flags nor overrides. Later assignment overwrites earlier.
	Params map[string]string

	// Components maps each declared component name to its declaration
	// attribute set. The last-scanned declaration for a name wins.
	Components map[string]map[string]string

	// ExposedNameExternal is the exposed name pinned by an explicit external
	// mechanism (CLI flag); empty when unset. JS targets only.
	ExposedNameExternal string

	// ExposedNameOverride is the override collected from the jsExposedName
	// directive; empty when unset. JS targets only.
	ExposedNameOverride string

	// ExposedName is the resolved public entry symbol, filled in by the
	// packager for JS targets.
	ExposedName string
}

// NewContext returns an empty build context for one invocation.
func NewContext(target Target, sourcePath, outputPath string) *Context {
	return &Context{
		Target:     target,
		SourcePath: sourcePath,
		OutputPath: outputPath,
		Flags:      make(map[string]bool),
		Params:     make(map[string]string),
		Components: make(map[string]map[string]string),
	}
}

// SetFlag sets the named compile-time flag.
func (c *Context) SetFlag(name string) { c.Flags[name] = true }

// Flag reports whether the named compile-time flag is set.
func (c *Context) Flag(name string) bool { return c.Flags[name] }

// ComponentNames returns the declared component names in sorted order so the
// validator and the generator observe the same deterministic sequence.
func (c *Context) ComponentNames() []string {
	names := make([]string, 0, len(c.Components))
	for name := range c.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
