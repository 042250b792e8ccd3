package i18n_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"oneplace/translation/internal/catalog"
	"oneplace/translation/internal/i18n"
)

func TestTranslator_Resolve(t *testing.T) {
	tr := i18n.New(t.TempDir(), []string{"en_US", "de_DE"})

	require.Equal(t, "en_US", tr.Resolve(""))
	require.Equal(t, "en_US", tr.Resolve("xx_XX"))
	require.Equal(t, "de_DE", tr.Resolve("de_DE"))
	// BCP 47 request forms match onto configured gettext codes.
	require.Equal(t, "de_DE", tr.Resolve("de-DE"))
	require.Equal(t, "de_DE", tr.Resolve("de"))
}

func TestTranslator_Translate(t *testing.T) {
	dir := t.TempDir()

	source := catalog.EncodePO([]catalog.Entry{{ID: "Hello", Str: "Hallo"}})
	compiled, err := catalog.CompileMO(source)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de_DE.mo"), compiled, 0o644))

	tr := i18n.New(dir, []string{"en_US", "de_DE"})

	require.Equal(t, "Hallo", tr.Translate("de_DE", "Hello"))
	// Unknown labels and languages without a catalog pass through.
	require.Equal(t, "Unknown", tr.Translate("de_DE", "Unknown"))
	require.Equal(t, "Hello", tr.Translate("en_US", "Hello"))
	require.Equal(t, "", tr.Translate("de_DE", ""))
}

func TestTranslator_Invalidate(t *testing.T) {
	dir := t.TempDir()
	tr := i18n.New(dir, []string{"de_DE"})

	// No catalog yet: pass-through is cached.
	require.Equal(t, "Hello", tr.Translate("de_DE", "Hello"))

	source := catalog.EncodePO([]catalog.Entry{{ID: "Hello", Str: "Hallo"}})
	compiled, err := catalog.CompileMO(source)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de_DE.mo"), compiled, 0o644))

	// Still the cached miss until invalidated.
	require.Equal(t, "Hello", tr.Translate("de_DE", "Hello"))
	tr.Invalidate("de_DE")
	require.Equal(t, "Hallo", tr.Translate("de_DE", "Hello"))
}
