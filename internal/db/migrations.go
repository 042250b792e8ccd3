package db

import (
	"database/sql"
	"fmt"
)

// Schema notes: translations is the entity table. tags and entity_tags
// form the generic categorization store: a tag is a category
// ("category" holds the language taxonomy), an entity_tag associates a
// tag value with a form. Select fields on a translation reference an
// entity_tag row by id; multiselect values live in
// translation_entity_tags linking rows.
const baseSchema = `
CREATE TABLE IF NOT EXISTS tags (
  id INTEGER PRIMARY KEY,
  tag_key TEXT NOT NULL UNIQUE,
  label TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entity_tags (
  id INTEGER PRIMARY KEY,
  tag_idfs INTEGER NOT NULL,
  entity_form_idfs TEXT NOT NULL,
  tag_value TEXT NOT NULL DEFAULT '',
  FOREIGN KEY (tag_idfs) REFERENCES tags(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_entity_tags_tag ON entity_tags(tag_idfs, entity_form_idfs);

CREATE TABLE IF NOT EXISTS translations (
  id INTEGER PRIMARY KEY,
  label TEXT NOT NULL,
  translation TEXT NOT NULL DEFAULT '',
  language_idfs INTEGER,
  created_by INTEGER NOT NULL,
  created_date TEXT NOT NULL,
  modified_by INTEGER NOT NULL,
  modified_date TEXT NOT NULL,
  FOREIGN KEY (language_idfs) REFERENCES entity_tags(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_translations_language ON translations(language_idfs);

CREATE TABLE IF NOT EXISTS translation_entity_tags (
  translation_idfs INTEGER NOT NULL,
  entity_tag_idfs INTEGER NOT NULL,
  field_key TEXT NOT NULL,
  sort_id INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (translation_idfs, entity_tag_idfs, field_key),
  FOREIGN KEY (translation_idfs) REFERENCES translations(id) ON DELETE CASCADE,
  FOREIGN KEY (entity_tag_idfs) REFERENCES entity_tags(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS form_fields (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  form TEXT NOT NULL,
  field_key TEXT NOT NULL,
  type TEXT NOT NULL,
  label TEXT NOT NULL,
  tab TEXT NOT NULL DEFAULT 'base',
  sort_id INTEGER NOT NULL DEFAULT 0,
  UNIQUE (form, field_key)
);

CREATE TABLE IF NOT EXISTS statistics (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  stats_key TEXT NOT NULL,
  data TEXT NOT NULL,
  date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_statistics_key ON statistics(stats_key);
`

// seedStatements installs the form schema and the language taxonomy,
// the Go counterpart of the module installer.
var seedStatements = []string{
	`INSERT OR IGNORE INTO form_fields (form, field_key, type, label, tab, sort_id) VALUES
	  ('translation-single', 'label', 'text', 'Label', 'base', 0),
	  ('translation-single', 'translation', 'textarea', 'Translation', 'base', 1),
	  ('translation-single', 'language', 'select', 'Language', 'base', 2),
	  ('translation-single', 'tags', 'multiselect', 'Tags', 'base', 3)`,
	`INSERT OR IGNORE INTO tags (id, tag_key, label) VALUES (1, 'category', 'Category')`,
	`INSERT OR IGNORE INTO entity_tags (id, tag_idfs, entity_form_idfs, tag_value) VALUES
	  (1, 1, 'translation-single', 'en_US'),
	  (2, 1, 'translation-single', 'de_DE')`,
}

func Migrate(conn *sql.DB) error {
	if _, err := conn.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	for _, stmt := range seedStatements {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("seed schema: %w", err)
		}
	}
	return nil
}
