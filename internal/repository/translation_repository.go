package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"oneplace/translation/internal/model"
	"oneplace/translation/internal/snowflake"
)

type TranslationRepository interface {
	List(ctx context.Context, filters map[string]string) ([]model.Translation, error)
	ListPage(ctx context.Context, filters map[string]string, page, perPage int) (model.Page[model.Translation], error)
	GetByID(ctx context.Context, id int64) (model.Translation, error)
	Insert(ctx context.Context, rec model.Translation) (int64, error)
	Update(ctx context.Context, rec model.Translation) (int64, error)
}

type translationRepository struct {
	db dbtx
}

func NewTranslationRepository(db dbtx) TranslationRepository {
	return &translationRepository{db: db}
}

const (
	// Filter key suffixes understood by List. "-like" marks a
	// case-insensitive prefix match, "_idfs" an exact match on a
	// foreign-key column. Anything else is ignored, not rejected;
	// existing API clients rely on that.
	likeSuffix = "-like"
	fkSuffix   = "_idfs"
)

var likeColumns = map[string]bool{
	"label":         true,
	"translation":   true,
	"created_date":  true,
	"modified_date": true,
}

var fkColumns = map[string]bool{
	"language_idfs": true,
}

// buildWhere turns the permissive filter map into a WHERE clause.
// Keys are applied in sorted order so identical filters always produce
// the same SQL.
func buildWhere(filters map[string]string) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var conds []string
	var args []any
	for _, key := range keys {
		switch {
		case strings.HasSuffix(key, likeSuffix):
			col := strings.TrimSuffix(key, likeSuffix)
			if likeColumns[col] {
				conds = append(conds, "lower("+col+") LIKE lower(?)")
				args = append(args, filters[key]+"%")
			}
		case strings.HasSuffix(key, fkSuffix):
			if fkColumns[key] {
				conds = append(conds, key+" = ?")
				args = append(args, filters[key])
			}
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

const translationColumns = `id, label, translation, language_idfs, created_by, created_date, modified_by, modified_date`

func (r *translationRepository) List(ctx context.Context, filters map[string]string) ([]model.Translation, error) {
	where, args := buildWhere(filters)
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+translationColumns+` FROM translations`+where+` ORDER BY id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	var out []model.Translation
	for rows.Next() {
		rec, err := scanTranslation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *translationRepository) ListPage(ctx context.Context, filters map[string]string, page, perPage int) (model.Page[model.Translation], error) {
	if page < 1 {
		page = 1
	}

	where, args := buildWhere(filters)

	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM translations`+where, args...).Scan(&total)
	if err != nil {
		return model.Page[model.Translation]{}, fmt.Errorf("count translations: %w", err)
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+translationColumns+` FROM translations`+where+` ORDER BY id LIMIT ? OFFSET ?`,
		append(args, perPage, (page-1)*perPage)...,
	)
	if err != nil {
		return model.Page[model.Translation]{}, fmt.Errorf("list translations page: %w", err)
	}
	defer rows.Close()

	items := make([]model.Translation, 0, perPage)
	for rows.Next() {
		rec, err := scanTranslation(rows)
		if err != nil {
			return model.Page[model.Translation]{}, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return model.Page[model.Translation]{}, err
	}

	totalPages := (total + perPage - 1) / perPage
	return model.Page[model.Translation]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

func (r *translationRepository) GetByID(ctx context.Context, id int64) (model.Translation, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+translationColumns+` FROM translations WHERE id = ?`,
		id,
	)
	return scanTranslation(row)
}

func (r *translationRepository) Insert(ctx context.Context, rec model.Translation) (int64, error) {
	rec.ID = snowflake.NextID()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO translations (`+translationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Label,
		rec.Translation,
		nullableInt64(rec.LanguageID),
		rec.CreatedBy,
		formatTime(rec.CreatedDate),
		rec.ModifiedBy,
		formatTime(rec.ModifiedDate),
	)
	if err != nil {
		return 0, fmt.Errorf("insert translation: %w", err)
	}
	return rec.ID, nil
}

// Update refreshes the entity fields and the modified metadata only;
// created_by and created_date are written once at insert.
func (r *translationRepository) Update(ctx context.Context, rec model.Translation) (int64, error) {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE translations
		 SET label = ?, translation = ?, language_idfs = ?, modified_by = ?, modified_date = ?
		 WHERE id = ?`,
		rec.Label,
		rec.Translation,
		nullableInt64(rec.LanguageID),
		rec.ModifiedBy,
		formatTime(rec.ModifiedDate),
		rec.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("update translation: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTranslation(row rowScanner) (model.Translation, error) {
	var rec model.Translation
	var languageID sql.NullInt64
	var createdDate, modifiedDate string

	err := row.Scan(
		&rec.ID,
		&rec.Label,
		&rec.Translation,
		&languageID,
		&rec.CreatedBy,
		&createdDate,
		&rec.ModifiedBy,
		&modifiedDate,
	)
	if err != nil {
		return model.Translation{}, err
	}

	if languageID.Valid {
		rec.LanguageID = &languageID.Int64
	}
	if rec.CreatedDate, err = parseTime(createdDate); err != nil {
		return model.Translation{}, fmt.Errorf("parse created_date: %w", err)
	}
	if rec.ModifiedDate, err = parseTime(modifiedDate); err != nil {
		return model.Translation{}, fmt.Errorf("parse modified_date: %w", err)
	}
	return rec, nil
}
