package registry

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/slpbuild/internal/schema"
)

// translateComponent converts the HCL-specific component schema into the
// format-agnostic descriptor model.
func translateComponent(c *schema.Component, source string) (*Descriptor, error) {
	var category Category
	switch c.Category {
	case "visual":
		category = CategoryVisual
	case "service":
		category = CategoryService
	default:
		return nil, fmt.Errorf("component %q in %s: unknown category %q (want \"visual\" or \"service\")", c.Name, source, c.Category)
	}

	var rules []Rule
	if len(c.RequiresAttributes) > 0 {
		rules = append(rules, RequiresAttributes{Names: c.RequiresAttributes})
	}
	if len(c.AllowedTags) > 0 {
		rules = append(rules, AllowedTags{Names: c.AllowedTags})
	}

	defaults, err := translateDefaults(c.Defaults)
	if err != nil {
		return nil, fmt.Errorf("component %q in %s: %w", c.Name, source, err)
	}

	return &Descriptor{
		Name:     c.Name,
		Category: category,
		Rules:    rules,
		Defaults: defaults,
		Source:   source,
	}, nil
}

// translateDefaults stringifies a manifest defaults value. The manifest
// carries an object of attribute name to value; every value must convert to
// a string.
func translateDefaults(val *cty.Value) (map[string]string, error) {
	if val == nil || val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("defaults must be a map of attribute values, got %s", val.Type().FriendlyName())
	}

	raw := val.AsValueMap()
	out := make(map[string]string, len(raw))

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sv, err := convert.Convert(raw[k], cty.String)
		if err != nil {
			return nil, fmt.Errorf("default %q: cannot convert %s to string: %w", k, raw[k].Type().FriendlyName(), err)
		}
		if sv.IsNull() {
			return nil, fmt.Errorf("default %q: value must not be null", k)
		}
		out[k] = sv.AsString()
	}
	return out, nil
}
