package validate

import "strings"

// TagResolver computes the class tag used to locate a visual component's
// elements, disambiguated against the full set of declared names.
type TagResolver interface {
	ResolveTag(name string, declared []string) string
}

// shortNameResolver uses the last dot-segment of a component name as its
// tag, falling back to the full dotted name (dots replaced by dashes) when
// another declared name shares the same short form.
type shortNameResolver struct{}

// NewTagResolver returns the default tag resolution strategy.
func NewTagResolver() TagResolver { return shortNameResolver{} }

func (shortNameResolver) ResolveTag(name string, declared []string) string {
	short := shortName(name)
	for _, other := range declared {
		if other != name && shortName(other) == short {
			return strings.ReplaceAll(name, ".", "-")
		}
	}
	return short
}

func shortName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
