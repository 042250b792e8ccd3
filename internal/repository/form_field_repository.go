package repository

import (
	"context"
	"fmt"

	"oneplace/translation/internal/model"
)

// FormFieldRepository reads the externally supplied form schema.
type FormFieldRepository interface {
	ListByForm(ctx context.Context, form string) ([]model.FormField, error)
}

type formFieldRepository struct {
	db dbtx
}

func NewFormFieldRepository(db dbtx) FormFieldRepository {
	return &formFieldRepository{db: db}
}

func (r *formFieldRepository) ListByForm(ctx context.Context, form string) ([]model.FormField, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, form, field_key, type, label, tab, sort_id
		 FROM form_fields WHERE form = ? ORDER BY tab, sort_id`,
		form,
	)
	if err != nil {
		return nil, fmt.Errorf("list form fields: %w", err)
	}
	defer rows.Close()

	var out []model.FormField
	for rows.Next() {
		var f model.FormField
		if err := rows.Scan(&f.ID, &f.Form, &f.Key, &f.Type, &f.Label, &f.Tab, &f.SortID); err != nil {
			return nil, fmt.Errorf("scan form field: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
