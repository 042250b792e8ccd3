package service_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/require"

	"oneplace/translation/internal/model"
	"oneplace/translation/internal/repository"
	"oneplace/translation/internal/repository/testutil"
	"oneplace/translation/internal/service"
)

func newCatalogService(t *testing.T) (service.CatalogService, *sql.DB, string) {
	t.Helper()

	conn := testutil.NewTestDB(t)
	dir := filepath.Join(t.TempDir(), "language")

	svc := service.NewCatalogService(
		repository.NewTranslationRepository(conn),
		repository.NewTagRepository(conn),
		nil,
		dir,
		[]string{"en_US", "de_DE"},
	)
	return svc, conn, dir
}

func TestCatalogService_Generate(t *testing.T) {
	svc, conn, dir := newCatalogService(t)
	ctx := context.Background()

	de := testutil.LanguageTagID(t, conn, "de_DE")
	testutil.SeedTranslation(t, conn, model.Translation{Label: "Hello", Translation: "Hallo", LanguageID: &de})
	testutil.SeedTranslation(t, conn, model.Translation{Label: "Goodbye", Translation: "Tschüss", LanguageID: &de})

	written, err := svc.Generate(ctx, "de_DE")
	require.NoError(t, err)
	require.True(t, written)

	source, err := os.ReadFile(filepath.Join(dir, "de_DE.po"))
	require.NoError(t, err)
	require.Contains(t, string(source), "msgid \"Hello\"")
	require.Contains(t, string(source), "msgstr \"Hallo\"")

	compiled, err := os.ReadFile(filepath.Join(dir, "de_DE.mo"))
	require.NoError(t, err)
	require.NotEmpty(t, compiled)

	// The compiled catalog must be loadable by a gettext runtime.
	mo := gotext.NewMo()
	mo.ParseFile(filepath.Join(dir, "de_DE.mo"))
	require.Equal(t, "Hallo", mo.Get("Hello"))
	require.Equal(t, "Tschüss", mo.Get("Goodbye"))
}

func TestCatalogService_Generate_Idempotent(t *testing.T) {
	svc, conn, dir := newCatalogService(t)
	ctx := context.Background()

	de := testutil.LanguageTagID(t, conn, "de_DE")
	testutil.SeedTranslation(t, conn, model.Translation{Label: "Hello", Translation: "Hallo", LanguageID: &de})

	written, err := svc.Generate(ctx, "de_DE")
	require.NoError(t, err)
	require.True(t, written)

	first, err := os.ReadFile(filepath.Join(dir, "de_DE.po"))
	require.NoError(t, err)
	firstMo, err := os.ReadFile(filepath.Join(dir, "de_DE.mo"))
	require.NoError(t, err)

	written, err = svc.Generate(ctx, "de_DE")
	require.NoError(t, err)
	require.True(t, written)

	second, err := os.ReadFile(filepath.Join(dir, "de_DE.po"))
	require.NoError(t, err)
	secondMo, err := os.ReadFile(filepath.Join(dir, "de_DE.mo"))
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, firstMo, secondMo)
}

func TestCatalogService_Generate_MissingTaxonomy(t *testing.T) {
	svc, conn, dir := newCatalogService(t)
	ctx := context.Background()

	testutil.DropTaxonomy(t, conn)

	written, err := svc.Generate(ctx, "de_DE")
	require.NoError(t, err)
	require.False(t, written)

	// No files may be touched on the soft path.
	_, statErr := os.Stat(dir)
	require.True(t, os.IsNotExist(statErr))
}

func TestCatalogService_Generate_UnknownLanguage(t *testing.T) {
	svc, _, dir := newCatalogService(t)

	written, err := svc.Generate(context.Background(), "fr_FR")
	require.NoError(t, err)
	require.False(t, written)

	_, statErr := os.Stat(filepath.Join(dir, "fr_FR.po"))
	require.True(t, os.IsNotExist(statErr))
}

func TestCatalogService_Generate_WriteFailure(t *testing.T) {
	svc, conn, dir := newCatalogService(t)
	ctx := context.Background()

	de := testutil.LanguageTagID(t, conn, "de_DE")
	id := testutil.SeedTranslation(t, conn, model.Translation{Label: "Hello", Translation: "Hallo", LanguageID: &de})

	// A regular file where the language dir should be makes every
	// write fail; unlike a missing taxonomy this is a hard error.
	require.NoError(t, os.WriteFile(dir, []byte("not a directory"), 0o644))

	written, err := svc.Generate(ctx, "de_DE")
	require.Error(t, err)
	require.False(t, written)

	// The store is untouched by a failed generation.
	rec, err := repository.NewTranslationRepository(conn).GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Hallo", rec.Translation)
}

func TestCatalogService_GenerateAll(t *testing.T) {
	svc, conn, dir := newCatalogService(t)
	ctx := context.Background()

	de := testutil.LanguageTagID(t, conn, "de_DE")
	en := testutil.LanguageTagID(t, conn, "en_US")
	testutil.SeedTranslation(t, conn, model.Translation{Label: "Hello", Translation: "Hallo", LanguageID: &de})
	testutil.SeedTranslation(t, conn, model.Translation{Label: "Hello", Translation: "Hello", LanguageID: &en})

	require.NoError(t, svc.GenerateAll(ctx))

	for _, lang := range []string{"en_US", "de_DE"} {
		_, err := os.Stat(filepath.Join(dir, lang+".po"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, lang+".mo"))
		require.NoError(t, err)
	}
}

func TestCatalogService_Generate_EmptyLanguage(t *testing.T) {
	svc, _, dir := newCatalogService(t)

	// A configured language with no records still gets a catalog,
	// containing only the header entry.
	written, err := svc.Generate(context.Background(), "en_US")
	require.NoError(t, err)
	require.True(t, written)

	source, err := os.ReadFile(filepath.Join(dir, "en_US.po"))
	require.NoError(t, err)
	require.Equal(t, "msgid \"\"\nmsgstr \"\"\n", string(source))

	_, err = os.Stat(filepath.Join(dir, "en_US.mo"))
	require.NoError(t, err)
}
