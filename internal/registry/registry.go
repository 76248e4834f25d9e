package registry

import "fmt"

// Category classifies a component descriptor.
type Category int

const (
	// CategoryVisual components attach to markup elements located by class.
	CategoryVisual Category = iota
	// CategoryService components are configured solely by their declaration.
	CategoryService
)

// String returns the manifest spelling of the category.
func (c Category) String() string {
	if c == CategoryVisual {
		return "visual"
	}
	return "service"
}

// Rule is one validation rule attached to a descriptor.
type Rule interface{ isRule() }

// RequiresAttributes demands that every listed attribute is present and
// non-blank on each matched element (visual) or on the declaration itself
// (service).
type RequiresAttributes struct {
	Names []string
}

// AllowedTags restricts the tag names a visual component's elements may have.
type AllowedTags struct {
	Names []string
}

func (RequiresAttributes) isRule() {}
func (AllowedTags) isRule()        {}

// Descriptor is the read-only description of one component type.
type Descriptor struct {
	Name     string
	Category Category
	Rules    []Rule

	// Defaults are fallback attribute values applied under a declaration's
	// own attributes when the component is registered.
	Defaults map[string]string

	// Source is the manifest file the descriptor came from, for diagnostics.
	Source string
}

// Registry holds the component descriptors for a single build invocation.
type Registry struct {
	descriptors map[string]*Descriptor
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{descriptors: make(map[string]*Descriptor)}
}

// Register adds a descriptor. Registering the same component name twice is
// an error; manifests must not disagree about a component.
func (r *Registry) Register(d *Descriptor) error {
	if prev, exists := r.descriptors[d.Name]; exists {
		return fmt.Errorf("component %q declared in %s is already registered from %s", d.Name, d.Source, prev.Source)
	}
	r.descriptors[d.Name] = d
	return nil
}

// Resolve maps a component name to its descriptor.
func (r *Registry) Resolve(name string) (*Descriptor, bool) {
	d, ok := r.descriptors[name]
	return d, ok
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int { return len(r.descriptors) }
