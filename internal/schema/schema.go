// Package schema defines the HCL file structures for component descriptor
// manifests. These are the raw decode targets; the registry package
// translates them into its format-agnostic descriptor model.
package schema

import "github.com/zclconf/go-cty/cty"

// Component represents a `component "Name" {}` block from a descriptor
// manifest file.
type Component struct {
	Name        string `hcl:"name,label"`
	Category    string `hcl:"category"`
	Description string `hcl:"description,optional"`

	// RequiresAttributes lists attribute names that must be present and
	// non-blank wherever the component is used.
	RequiresAttributes []string `hcl:"requires_attributes,optional"`

	// AllowedTags restricts the element tag names a visual component may
	// attach to.
	AllowedTags []string `hcl:"allowed_tags,optional"`

	// Defaults supplies fallback attribute values merged under the
	// declaration's own attributes at generation time.
	Defaults *cty.Value `hcl:"defaults,optional"`
}

// Manifest represents the top-level structure of a descriptor manifest file,
// containing any number of component blocks.
type Manifest struct {
	Components []*Component `hcl:"component,block"`
}
