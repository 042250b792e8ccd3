package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"oneplace/translation/internal/config"
	"oneplace/translation/internal/model"
	"oneplace/translation/internal/repository"
)

// TranslationService owns the translation record lifecycle: listing
// with the permissive filter map, point reads, saves with audit
// metadata, and the daily statistics snapshot.
type TranslationService interface {
	List(ctx context.Context, filters map[string]string) ([]model.Translation, error)
	ListPage(ctx context.Context, filters map[string]string, page int) (model.Page[model.Translation], error)
	Get(ctx context.Context, id int64) (model.Translation, error)
	Save(ctx context.Context, rec model.Translation) (int64, error)
	GenerateDailyStats(ctx context.Context) error
}

type translationService struct {
	translations repository.TranslationRepository
	stats        repository.StatisticRepository
	identity     Identity
	now          func() time.Time
}

func NewTranslationService(
	translations repository.TranslationRepository,
	stats repository.StatisticRepository,
	identity Identity,
) TranslationService {
	return &translationService{
		translations: translations,
		stats:        stats,
		identity:     identity,
		now:          time.Now,
	}
}

func (s *translationService) List(ctx context.Context, filters map[string]string) ([]model.Translation, error) {
	return s.translations.List(ctx, filters)
}

func (s *translationService) ListPage(ctx context.Context, filters map[string]string, page int) (model.Page[model.Translation], error) {
	if page < 1 {
		page = 1
	}
	return s.translations.ListPage(ctx, filters, page, config.ItemsPerPage)
}

func (s *translationService) Get(ctx context.Context, id int64) (model.Translation, error) {
	rec, err := s.translations.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Translation{}, ErrNotFound
	}
	if err != nil {
		return model.Translation{}, fmt.Errorf("get translation: %w", err)
	}
	return rec, nil
}

// Save persists rec and returns its id. A zero id means a new record:
// it gets an assigned id and full audit metadata. A nonzero id must
// already exist; otherwise ErrNotFound and nothing is written.
func (s *translationService) Save(ctx context.Context, rec model.Translation) (int64, error) {
	actor := s.identity.ActingUserID(ctx)
	now := s.now()

	if rec.ID == 0 {
		rec.CreatedBy = actor
		rec.CreatedDate = now
		rec.ModifiedBy = actor
		rec.ModifiedDate = now
		id, err := s.translations.Insert(ctx, rec)
		if err != nil {
			return 0, fmt.Errorf("save translation: %w", err)
		}
		return id, nil
	}

	// Existence is re-checked here rather than trusted from the
	// caller; an update must never turn into an insert.
	if _, err := s.translations.GetByID(ctx, rec.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("check translation: %w", err)
	}

	rec.ModifiedBy = actor
	rec.ModifiedDate = now
	affected, err := s.translations.Update(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("save translation: %w", err)
	}
	if affected == 0 {
		return 0, ErrNotFound
	}
	return rec.ID, nil
}

// GenerateDailyStats appends a snapshot of the total record count and
// the count of records created today (date-only comparison in UTC, the
// zone timestamps are stored in) to the statistics sink.
func (s *translationService) GenerateDailyStats(ctx context.Context) error {
	all, err := s.translations.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("count translations: %w", err)
	}

	today := s.now().UTC().Format("2006-01-02")
	created, err := s.translations.List(ctx, map[string]string{"created_date-like": today})
	if err != nil {
		return fmt.Errorf("count new translations: %w", err)
	}

	return s.stats.Append(ctx, "translation-daily", map[string]int{
		"new":   len(created),
		"total": len(all),
	})
}
