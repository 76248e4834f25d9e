package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRegister(t *testing.T) {
	t.Run("resolve round-trip", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.Register(&Descriptor{Name: "ui.Foo", Category: CategoryVisual}))

		d, ok := reg.Resolve("ui.Foo")
		require.True(t, ok)
		assert.Equal(t, CategoryVisual, d.Category)

		_, ok = reg.Resolve("ui.Bar")
		assert.False(t, ok)
	})

	t.Run("duplicate registration is an error", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.Register(&Descriptor{Name: "ui.Foo", Source: "a.hcl"}))

		err := reg.Register(&Descriptor{Name: "ui.Foo", Source: "b.hcl"})
		require.Error(t, err)
		assert.ErrorContains(t, err, "a.hcl")
		assert.ErrorContains(t, err, "b.hcl")
	})
}

func TestLoadManifests(t *testing.T) {
	t.Run("loads descriptors with rules and defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "slideshow.hcl", `
component "slp.ui.Slideshow" {
  category            = "visual"
  requires_attributes = ["data-slp-interval"]
  allowed_tags        = ["DIV", "SECTION"]
  defaults = {
    "data-slp-interval" = 5000
  }
}

component "slp.svc.Tracker" {
  category            = "service"
  requires_attributes = ["data-slp-account"]
}
`)

		reg := New()
		require.NoError(t, reg.LoadManifests(context.Background(), dir))
		require.Equal(t, 2, reg.Len())

		slideshow, ok := reg.Resolve("slp.ui.Slideshow")
		require.True(t, ok)
		assert.Equal(t, CategoryVisual, slideshow.Category)
		require.Len(t, slideshow.Rules, 2)
		assert.Equal(t, RequiresAttributes{Names: []string{"data-slp-interval"}}, slideshow.Rules[0])
		assert.Equal(t, AllowedTags{Names: []string{"DIV", "SECTION"}}, slideshow.Rules[1])
		assert.Equal(t, map[string]string{"data-slp-interval": "5000"}, slideshow.Defaults)

		tracker, ok := reg.Resolve("slp.svc.Tracker")
		require.True(t, ok)
		assert.Equal(t, CategoryService, tracker.Category)
		assert.Empty(t, tracker.Defaults)
	})

	t.Run("empty directory loads nothing", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.LoadManifests(context.Background(), t.TempDir()))
		assert.Equal(t, 0, reg.Len())
	})

	t.Run("unknown category is reported", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "bad.hcl", `
component "ui.Foo" {
  category = "widget"
}
`)

		reg := New()
		err := reg.LoadManifests(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorContains(t, err, `unknown category "widget"`)
		assert.ErrorContains(t, err, "ui.Foo")
	})

	t.Run("duplicate component across files names both manifests", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "a.hcl", `
component "ui.Foo" {
  category = "visual"
}
`)
		writeManifest(t, dir, "b.hcl", `
component "ui.Foo" {
  category = "service"
}
`)

		reg := New()
		err := reg.LoadManifests(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorContains(t, err, "manifest validation failed")
		assert.ErrorContains(t, err, "a.hcl")
		assert.ErrorContains(t, err, "b.hcl")
	})

	t.Run("malformed manifest fails to parse", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "broken.hcl", `component "ui.Foo" {`)

		reg := New()
		err := reg.LoadManifests(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorContains(t, err, "broken.hcl")
	})
}

func TestTranslateDefaults(t *testing.T) {
	t.Run("non-map defaults are rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "bad.hcl", `
component "ui.Foo" {
  category = "visual"
  defaults = "flat"
}
`)

		reg := New()
		err := reg.LoadManifests(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorContains(t, err, "defaults must be a map")
	})
}
