package scan

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/slpbuild/internal/build"
	"github.com/vk/slpbuild/internal/document"
)

func parse(t *testing.T, markup string) *document.Document {
	t.Helper()
	doc, err := document.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func scanMarkup(t *testing.T, markup string) (*document.Document, *build.Context) {
	t.Helper()
	doc := parse(t, markup)
	bctx := build.NewContext(build.TargetJS, "index.html", "index.js")
	Scan(context.Background(), doc, bctx)
	return doc, bctx
}

func TestScanDeclarations(t *testing.T) {
	t.Run("space-separated names share one attribute set", func(t *testing.T) {
		_, bctx := scanMarkup(t, `<html><body>
			<script data-slp-use="ui.Foo svc.Bar" data-skin="flat" data-speed="2"></script>
		</body></html>`)

		require.Len(t, bctx.Components, 2)
		want := map[string]string{"data-skin": "flat", "data-speed": "2"}
		assert.Equal(t, want, bctx.Components["ui.Foo"])
		assert.Equal(t, want, bctx.Components["svc.Bar"])
	})

	t.Run("declaration attribute itself is excluded", func(t *testing.T) {
		_, bctx := scanMarkup(t, `<html><body>
			<script data-slp-use="ui.Foo"></script>
		</body></html>`)

		assert.Empty(t, bctx.Components["ui.Foo"])
	})

	t.Run("non-prefixed attributes are excluded", func(t *testing.T) {
		_, bctx := scanMarkup(t, `<html><body>
			<script data-slp-use="ui.Foo" id="decl" type="text/plain"></script>
		</body></html>`)

		assert.Empty(t, bctx.Components["ui.Foo"])
	})

	t.Run("last declaration wins per name", func(t *testing.T) {
		_, bctx := scanMarkup(t, `<html><body>
			<script data-slp-use="ui.Foo" data-a="1"></script>
			<script data-slp-use="ui.Foo" data-b="2"></script>
		</body></html>`)

		assert.Equal(t, map[string]string{"data-b": "2"}, bctx.Components["ui.Foo"])
	})

	t.Run("blank declaration attribute declares nothing", func(t *testing.T) {
		_, bctx := scanMarkup(t, `<html><body>
			<script data-slp-use="   "></script>
		</body></html>`)

		assert.Empty(t, bctx.Components)
	})
}

func TestScanCleanup(t *testing.T) {
	t.Run("declaration-only script is removed", func(t *testing.T) {
		doc, bctx := scanMarkup(t, `<html><body>
			<script data-slp-use="ui.Foo" data-slp-a="1"></script>
		</body></html>`)

		require.Len(t, bctx.Components, 1)
		assert.Empty(t, doc.Scripts())
	})

	t.Run("script with external source keeps everything but the declaration", func(t *testing.T) {
		doc, _ := scanMarkup(t, `<html><body>
			<script data-slp-use="ui.Foo" data-slp-a="1" src="vendor.js"></script>
		</body></html>`)

		scripts := doc.Scripts()
		require.Len(t, scripts, 1)
		_, hasDecl := document.Attr(scripts[0], "data-slp-use")
		assert.False(t, hasDecl)
		a, _ := document.Attr(scripts[0], "data-slp-a")
		assert.Equal(t, "1", a)
	})

	t.Run("script with inline body is retained", func(t *testing.T) {
		doc, _ := scanMarkup(t, `<html><body>
			<script data-slp-use="ui.Foo">console.log("hi");</script>
		</body></html>`)

		scripts := doc.Scripts()
		require.Len(t, scripts, 1)
		assert.Contains(t, document.Text(scripts[0]), "console.log")
	})

	t.Run("empty script without declaration is also removed", func(t *testing.T) {
		doc, bctx := scanMarkup(t, `<html><body>
			<script></script>
			<script src="keep.js"></script>
		</body></html>`)

		assert.Empty(t, bctx.Components)
		scripts := doc.Scripts()
		require.Len(t, scripts, 1)
		src, _ := document.Attr(scripts[0], "src")
		assert.Equal(t, "keep.js", src)
	})
}
