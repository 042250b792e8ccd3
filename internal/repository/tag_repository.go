package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oneplace/translation/internal/model"
)

// TagRepository is the read-mostly view onto the generic tag store the
// resolver and the catalog generator consume. Only the multiselect
// linking rows of the translation entity are written through it.
type TagRepository interface {
	GetByKey(ctx context.Context, key string) (*model.Tag, error)
	FindAssociation(ctx context.Context, tagID int64, form, value string) (*model.EntityTag, error)
	GetAssociation(ctx context.Context, id int64) (*model.EntityTag, error)
	ListSelected(ctx context.Context, translationID int64, fieldKey string) ([]model.EntityTag, error)
	ReplaceSelected(ctx context.Context, translationID int64, fieldKey string, entityTagIDs []int64) error
}

type tagRepository struct {
	db dbtx
}

func NewTagRepository(db dbtx) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetByKey(ctx context.Context, key string) (*model.Tag, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, tag_key, label FROM tags WHERE tag_key = ?`, key)

	var tag model.Tag
	err := row.Scan(&tag.ID, &tag.TagKey, &tag.Label)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tag by key: %w", err)
	}
	return &tag, nil
}

const entityTagColumns = `e.id, e.tag_idfs, e.entity_form_idfs, e.tag_value, t.label`

func (r *tagRepository) FindAssociation(ctx context.Context, tagID int64, form, value string) (*model.EntityTag, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+entityTagColumns+`
		 FROM entity_tags e JOIN tags t ON t.id = e.tag_idfs
		 WHERE e.tag_idfs = ? AND e.entity_form_idfs = ? AND e.tag_value = ?`,
		tagID, form, value,
	)
	return scanEntityTag(row)
}

func (r *tagRepository) GetAssociation(ctx context.Context, id int64) (*model.EntityTag, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+entityTagColumns+`
		 FROM entity_tags e JOIN tags t ON t.id = e.tag_idfs
		 WHERE e.id = ?`,
		id,
	)
	return scanEntityTag(row)
}

func (r *tagRepository) ListSelected(ctx context.Context, translationID int64, fieldKey string) ([]model.EntityTag, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+entityTagColumns+`
		 FROM translation_entity_tags l
		 JOIN entity_tags e ON e.id = l.entity_tag_idfs
		 JOIN tags t ON t.id = e.tag_idfs
		 WHERE l.translation_idfs = ? AND l.field_key = ?
		 ORDER BY l.sort_id`,
		translationID, fieldKey,
	)
	if err != nil {
		return nil, fmt.Errorf("list selected tags: %w", err)
	}
	defer rows.Close()

	var out []model.EntityTag
	for rows.Next() {
		et, err := scanEntityTag(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *et)
	}
	return out, rows.Err()
}

// ReplaceSelected swaps the multiselect linking rows of one field for
// the given entity tag ids, keeping submission order.
func (r *tagRepository) ReplaceSelected(ctx context.Context, translationID int64, fieldKey string, entityTagIDs []int64) error {
	_, err := r.db.ExecContext(
		ctx,
		`DELETE FROM translation_entity_tags WHERE translation_idfs = ? AND field_key = ?`,
		translationID, fieldKey,
	)
	if err != nil {
		return fmt.Errorf("clear selected tags: %w", err)
	}

	for i, id := range entityTagIDs {
		_, err := r.db.ExecContext(
			ctx,
			`INSERT INTO translation_entity_tags (translation_idfs, entity_tag_idfs, field_key, sort_id)
			 VALUES (?, ?, ?, ?)`,
			translationID, id, fieldKey, i,
		)
		if err != nil {
			return fmt.Errorf("insert selected tag: %w", err)
		}
	}
	return nil
}

func scanEntityTag(row rowScanner) (*model.EntityTag, error) {
	var et model.EntityTag
	err := row.Scan(&et.ID, &et.TagID, &et.Form, &et.Value, &et.TagLabel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan entity tag: %w", err)
	}
	return &et, nil
}
