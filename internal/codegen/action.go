package codegen

// Action is one step of the generated initialization program. The program is
// an ordered list of actions consumed by an assembler; actions carry no
// target-language syntax themselves.
type Action interface{ isAction() }

// Import makes a component's implementation available to the program.
type Import struct {
	Name string
}

// BuildArgsMap declares a named map variable populated with string entries.
type BuildArgsMap struct {
	Var     string
	Entries map[string]string
}

// RegisterComponent registers a component with the runtime, optionally
// passing a previously built args map.
type RegisterComponent struct {
	Name    string
	ArgsVar string // empty means no argument map
}

// AssignEmbeddedHTML initializes a static holder from the serialized body
// markup and assigns it into the runtime root element at init time.
type AssignEmbeddedHTML struct {
	Target  string
	Literal string
}

// SetOnLoadLaunch defers the launch call until the host's load event.
type SetOnLoadLaunch struct{}

// AppendLaunchCall launches the application immediately inside the init
// sequence.
type AppendLaunchCall struct{}

// AppendMainInitCall invokes the init sequence from the program's main entry
// point.
type AppendMainInitCall struct{}

func (Import) isAction()             {}
func (BuildArgsMap) isAction()       {}
func (RegisterComponent) isAction()  {}
func (AssignEmbeddedHTML) isAction() {}
func (SetOnLoadLaunch) isAction()    {}
func (AppendLaunchCall) isAction()   {}
func (AppendMainInitCall) isAction() {}

// Program is the ordered initialization program plus the settings an
// assembler needs to render it.
type Program struct {
	Actions []Action

	// Flags are the compile-time flags that survived to generation, exposed
	// to the runtime for collaborators such as the debug overlay.
	Flags map[string]bool

	// ExposedName is the public entry symbol, resolved by the packager for
	// JS targets. Assemblers fall back to a default when empty.
	ExposedName string
}
