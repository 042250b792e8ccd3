package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"oneplace/translation/internal/model"
	"oneplace/translation/internal/repository"
	"oneplace/translation/internal/repository/testutil"
)

func TestTagRepository_GetByKey(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTagRepository(conn)
	ctx := context.Background()

	tag, err := repo.GetByKey(ctx, "category")
	require.NoError(t, err)
	require.NotNil(t, tag)
	require.Equal(t, "category", tag.TagKey)

	missing, err := repo.GetByKey(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestTagRepository_FindAssociation(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTagRepository(conn)
	ctx := context.Background()

	tag, err := repo.GetByKey(ctx, "category")
	require.NoError(t, err)

	assoc, err := repo.FindAssociation(ctx, tag.ID, "translation-single", "de_DE")
	require.NoError(t, err)
	require.NotNil(t, assoc)
	require.Equal(t, "de_DE", assoc.Value)

	none, err := repo.FindAssociation(ctx, tag.ID, "translation-single", "fr_FR")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestTagRepository_GetAssociation_LabelFallback(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTagRepository(conn)
	ctx := context.Background()

	tagID := testutil.SeedTag(t, conn, "topic", "Topic Label")
	withValue := testutil.SeedEntityTag(t, conn, tagID, "translation-single", "inline value")
	withoutValue := testutil.SeedEntityTag(t, conn, tagID, "translation-single", "")

	et, err := repo.GetAssociation(ctx, withValue)
	require.NoError(t, err)
	require.Equal(t, "inline value", et.DisplayLabel())

	et, err = repo.GetAssociation(ctx, withoutValue)
	require.NoError(t, err)
	require.Equal(t, "Topic Label", et.DisplayLabel())
}

func TestTagRepository_ReplaceSelected_Order(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTagRepository(conn)
	ctx := context.Background()

	tagID := testutil.SeedTag(t, conn, "topic", "Topic")
	a := testutil.SeedEntityTag(t, conn, tagID, "translation-single", "a")
	b := testutil.SeedEntityTag(t, conn, tagID, "translation-single", "b")
	c := testutil.SeedEntityTag(t, conn, tagID, "translation-single", "c")

	translationID := testutil.SeedTranslation(t, conn, model.Translation{Label: "x"})

	require.NoError(t, repo.ReplaceSelected(ctx, translationID, "tags", []int64{c, a, b}))

	selected, err := repo.ListSelected(ctx, translationID, "tags")
	require.NoError(t, err)
	require.Len(t, selected, 3)
	require.Equal(t, []int64{c, a, b}, []int64{selected[0].ID, selected[1].ID, selected[2].ID})

	// Replacing swaps the selection wholesale.
	require.NoError(t, repo.ReplaceSelected(ctx, translationID, "tags", []int64{b}))
	selected, err = repo.ListSelected(ctx, translationID, "tags")
	require.NoError(t, err)
	require.Len(t, selected, 1)
	require.Equal(t, b, selected[0].ID)
}
