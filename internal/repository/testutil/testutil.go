// Package testutil provides sqlite-backed fixtures for repository and
// service tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"oneplace/translation/internal/db"
	"oneplace/translation/internal/model"
	"oneplace/translation/internal/snowflake"
)

func init() {
	if err := snowflake.Init(1); err != nil {
		panic(err)
	}
}

// NewTestDB opens a migrated, seeded sqlite database in a temp dir.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

// SeedTranslation inserts a translation row directly and returns its id.
func SeedTranslation(t *testing.T, conn *sql.DB, rec model.Translation) int64 {
	t.Helper()

	id := rec.ID
	if id == 0 {
		id = snowflake.NextID()
	}
	created := rec.CreatedDate
	if created.IsZero() {
		created = time.Now().UTC()
	}
	modified := rec.ModifiedDate
	if modified.IsZero() {
		modified = created
	}

	var languageID any
	if rec.LanguageID != nil {
		languageID = *rec.LanguageID
	}

	_, err := conn.ExecContext(
		context.Background(),
		`INSERT INTO translations (id, label, translation, language_idfs, created_by, created_date, modified_by, modified_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		rec.Label,
		rec.Translation,
		languageID,
		rec.CreatedBy,
		created.UTC().Format(time.RFC3339),
		rec.ModifiedBy,
		modified.UTC().Format(time.RFC3339),
	)
	require.NoError(t, err)
	return id
}

// SeedTag inserts a tag row and returns its id.
func SeedTag(t *testing.T, conn *sql.DB, key, label string) int64 {
	t.Helper()

	id := snowflake.NextID()
	_, err := conn.ExecContext(
		context.Background(),
		`INSERT INTO tags (id, tag_key, label) VALUES (?, ?, ?)`,
		id, key, label,
	)
	require.NoError(t, err)
	return id
}

// SeedEntityTag inserts an entity_tags association and returns its id.
func SeedEntityTag(t *testing.T, conn *sql.DB, tagID int64, form, value string) int64 {
	t.Helper()

	id := snowflake.NextID()
	_, err := conn.ExecContext(
		context.Background(),
		`INSERT INTO entity_tags (id, tag_idfs, entity_form_idfs, tag_value) VALUES (?, ?, ?, ?)`,
		id, tagID, form, value,
	)
	require.NoError(t, err)
	return id
}

// LanguageTagID returns the seeded entity tag id for a language code.
func LanguageTagID(t *testing.T, conn *sql.DB, lang string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRowContext(
		context.Background(),
		`SELECT e.id FROM entity_tags e JOIN tags t ON t.id = e.tag_idfs
		 WHERE t.tag_key = 'category' AND e.tag_value = ?`,
		lang,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// DropTaxonomy deletes the category tag and its associations, leaving
// the deployment in the partially configured state catalog generation
// must tolerate.
func DropTaxonomy(t *testing.T, conn *sql.DB) {
	t.Helper()

	_, err := conn.ExecContext(context.Background(), `DELETE FROM tags WHERE tag_key = 'category'`)
	require.NoError(t, err)
}
