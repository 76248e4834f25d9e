// Package validate checks every declared component against its descriptor's
// rules. Validation is fail-fast: the first violation aborts the build, and
// no artifact may be written once a check has failed.
package validate

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/vk/slpbuild/internal/build"
	"github.com/vk/slpbuild/internal/ctxlog"
	"github.com/vk/slpbuild/internal/document"
	"github.com/vk/slpbuild/internal/registry"
)

// Validator checks declared components against the descriptor registry.
type Validator struct {
	registry *registry.Registry
	tags     TagResolver
}

// New creates a Validator backed by the given registry and the default tag
// resolution strategy.
func New(reg *registry.Registry) *Validator {
	return &Validator{registry: reg, tags: NewTagResolver()}
}

// Check validates every declared component in sorted name order. The first
// failure is returned immediately.
func (v *Validator) Check(ctx context.Context, doc *document.Document, bctx *build.Context) error {
	logger := ctxlog.FromContext(ctx)
	names := bctx.ComponentNames()

	for _, name := range names {
		desc, ok := v.registry.Resolve(name)
		if !ok {
			return build.Errorf(build.ErrUnresolvedComponent, "component type not found on build classpath: %s", name)
		}

		var err error
		if desc.Category == registry.CategoryVisual {
			err = v.checkVisual(doc, desc, name, names)
		} else {
			err = v.checkService(desc, name, bctx.Components[name])
		}
		if err != nil {
			return err
		}
		logger.Debug("Component validated.", "component", name, "category", desc.Category.String())
	}
	return nil
}

// checkVisual validates each element matched by the component's class tag.
func (v *Validator) checkVisual(doc *document.Document, desc *registry.Descriptor, name string, declared []string) error {
	elems := v.matchedElements(doc, name, declared)

	for _, rule := range desc.Rules {
		switch r := rule.(type) {
		case registry.RequiresAttributes:
			for _, el := range elems {
				for _, attr := range r.Names {
					val, ok := document.Attr(el, attr)
					if !ok || strings.TrimSpace(val) == "" {
						return build.Errorf(build.ErrMissingAttribute,
							"required attribute %q is missing or blank on <%s> element used by component %s",
							attr, document.TagName(el), name)
					}
				}
			}
		case registry.AllowedTags:
			for _, el := range elems {
				if !tagAllowed(el, r.Names) {
					return build.Errorf(build.ErrDisallowedTag,
						"tag %s is not allowed for component %s (allowed: %s)",
						document.TagName(el), name, strings.Join(r.Names, ", "))
				}
			}
		}
	}
	return nil
}

// checkService validates the declaration's own attribute set.
func (v *Validator) checkService(desc *registry.Descriptor, name string, attrs map[string]string) error {
	for _, rule := range desc.Rules {
		r, ok := rule.(registry.RequiresAttributes)
		if !ok {
			continue
		}
		for _, attr := range r.Names {
			if strings.TrimSpace(attrs[attr]) == "" {
				return build.Errorf(build.ErrMissingAttribute,
					"required attribute %q is missing or blank on the declaration of component %s",
					attr, name)
			}
		}
	}
	return nil
}

// matchedElements queries the document for the component's disambiguated
// tag, unioned with the raw name for back-compatibility.
func (v *Validator) matchedElements(doc *document.Document, name string, declared []string) []*html.Node {
	tag := v.tags.ResolveTag(name, declared)
	elems := doc.ElementsByClass(tag)
	if tag != name {
		seen := make(map[*html.Node]struct{}, len(elems))
		for _, el := range elems {
			seen[el] = struct{}{}
		}
		for _, el := range doc.ElementsByClass(name) {
			if _, dup := seen[el]; !dup {
				elems = append(elems, el)
			}
		}
	}
	return elems
}

func tagAllowed(el *html.Node, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(el.Data, t) {
			return true
		}
	}
	return false
}
