package build

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTarget(t *testing.T) {
	assert.True(t, TargetJS.IsJS())
	assert.False(t, TargetGeneric.IsJS())
}

func TestReservedFlags(t *testing.T) {
	assert.True(t, IsReservedFlag(FlagNoAutoStart))
	assert.True(t, IsReservedFlag(FlagEmbedHTML))
	assert.True(t, IsReservedFlag(FlagDisableFastInit))
	assert.False(t, IsReservedFlag(FlagJSModern))
	assert.False(t, IsReservedFlag("theme"))
}

func TestContext(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		bctx := NewContext(TargetJS, "index.html", "index.js")
		assert.False(t, bctx.Flag(FlagEmbedHTML))
		bctx.SetFlag(FlagEmbedHTML)
		assert.True(t, bctx.Flag(FlagEmbedHTML))
	})

	t.Run("component names are sorted", func(t *testing.T) {
		bctx := NewContext(TargetJS, "index.html", "index.js")
		bctx.Components["b"] = nil
		bctx.Components["a"] = nil
		bctx.Components["c"] = nil
		assert.Equal(t, []string{"a", "b", "c"}, bctx.ComponentNames())
	})
}

func TestError(t *testing.T) {
	err := Errorf(ErrMissingAttribute, "required attribute %q is missing", "data-x")
	assert.EqualError(t, err, `required attribute "data-x" is missing`)

	var buildErr *Error
	require.True(t, errors.As(error(err), &buildErr))
	assert.Equal(t, ErrMissingAttribute, buildErr.Kind)
}
