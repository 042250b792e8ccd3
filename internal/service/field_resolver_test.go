package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"oneplace/translation/internal/model"
	"oneplace/translation/internal/repository"
	"oneplace/translation/internal/repository/testutil"
	"oneplace/translation/internal/service"
)

func TestFieldResolver_TextAndUnknown(t *testing.T) {
	conn := testutil.NewTestDB(t)
	tags := repository.NewTagRepository(conn)
	resolver := service.NewFieldResolver(tags, nil)
	ctx := context.Background()

	rec := model.Translation{Label: "Hello", Translation: "Hallo"}

	value, ok, err := resolver.Resolve(ctx, model.FormField{Key: "label", Type: model.FieldText}, rec, "en_US")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Hello", value.Text)

	// Descriptors with types this entity does not know are skipped,
	// never rejected.
	_, ok, err = resolver.Resolve(ctx, model.FormField{Key: "color", Type: "colorpicker"}, rec, "en_US")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = resolver.Resolve(ctx, model.FormField{Key: "missing", Type: model.FieldText}, rec, "en_US")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFieldResolver_SelectPrefersInlineValue(t *testing.T) {
	conn := testutil.NewTestDB(t)
	tags := repository.NewTagRepository(conn)
	resolver := service.NewFieldResolver(tags, nil)
	ctx := context.Background()

	tagID := testutil.SeedTag(t, conn, "lang-tag", "Referenced Label")
	withValue := testutil.SeedEntityTag(t, conn, tagID, "translation-single", "Inline Value")
	withoutValue := testutil.SeedEntityTag(t, conn, tagID, "translation-single", "")

	field := model.FormField{Key: "language", Type: model.FieldSelect}

	rec := model.Translation{LanguageID: &withValue}
	value, ok, err := resolver.Resolve(ctx, field, rec, "en_US")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, value.Option)
	require.Equal(t, "Inline Value", value.Option.Label)

	rec = model.Translation{LanguageID: &withoutValue}
	value, _, err = resolver.Resolve(ctx, field, rec, "en_US")
	require.NoError(t, err)
	require.NotNil(t, value.Option)
	require.Equal(t, "Referenced Label", value.Option.Label)
}

func TestFieldResolver_SelectUnset(t *testing.T) {
	conn := testutil.NewTestDB(t)
	resolver := service.NewFieldResolver(repository.NewTagRepository(conn), nil)

	value, ok, err := resolver.Resolve(context.Background(), model.FormField{Key: "language", Type: model.FieldSelect}, model.Translation{}, "en_US")
	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, value.Option)
	require.Nil(t, value.JSON())
}

func TestFieldResolver_Multiselect(t *testing.T) {
	conn := testutil.NewTestDB(t)
	tags := repository.NewTagRepository(conn)
	resolver := service.NewFieldResolver(tags, nil)
	ctx := context.Background()

	tagID := testutil.SeedTag(t, conn, "topic", "Topic")
	a := testutil.SeedEntityTag(t, conn, tagID, "translation-single", "alpha")
	b := testutil.SeedEntityTag(t, conn, tagID, "translation-single", "beta")
	recID := testutil.SeedTranslation(t, conn, model.Translation{Label: "x"})

	field := model.FormField{Key: "tags", Type: model.FieldMultiselect}
	require.NoError(t, resolver.ApplySelected(ctx, field, recID, []int64{b, a}))

	value, ok, err := resolver.Resolve(ctx, field, model.Translation{ID: recID}, "en_US")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, value.Options, 2)
	require.Equal(t, "beta", value.Options[0].Label)
	require.Equal(t, "alpha", value.Options[1].Label)
}

func TestFieldResolver_Apply(t *testing.T) {
	conn := testutil.NewTestDB(t)
	resolver := service.NewFieldResolver(repository.NewTagRepository(conn), nil)

	var rec model.Translation

	ok, err := resolver.Apply(model.FormField{Key: "label", Type: model.FieldText}, "Hello", &rec)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Hello", rec.Label)

	ok, err = resolver.Apply(model.FormField{Key: "language", Type: model.FieldSelect}, "123", &rec)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, rec.LanguageID)
	require.EqualValues(t, 123, *rec.LanguageID)

	// Clearing a select.
	ok, err = resolver.Apply(model.FormField{Key: "language", Type: model.FieldSelect}, "", &rec)
	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, rec.LanguageID)

	// Bad select ids are a validation error.
	_, err = resolver.Apply(model.FormField{Key: "language", Type: model.FieldSelect}, "abc", &rec)
	require.ErrorIs(t, err, service.ErrInvalid)

	// Unknown field types are a no-op.
	ok, err = resolver.Apply(model.FormField{Key: "color", Type: "colorpicker"}, "red", &rec)
	require.NoError(t, err)
	require.False(t, ok)
}
