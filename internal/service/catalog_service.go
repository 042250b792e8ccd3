package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"oneplace/translation/internal/catalog"
	"oneplace/translation/internal/config"
	"oneplace/translation/internal/i18n"
	"oneplace/translation/internal/logger"
	"oneplace/translation/internal/repository"
)

// CatalogService rebuilds the per-language gettext catalogs from the
// translation store. Catalogs are derived data: every generation starts
// from scratch so the files always reflect current store state.
type CatalogService interface {
	// Generate rebuilds the catalog for one language code. It reports
	// whether files were written: a missing category/language taxonomy
	// is a silent no-op (false, nil), while codec and filesystem
	// failures are returned as errors.
	Generate(ctx context.Context, lang string) (bool, error)

	// GenerateAll rebuilds the catalogs of every active language.
	GenerateAll(ctx context.Context) error
}

type catalogService struct {
	translations repository.TranslationRepository
	tags         repository.TagRepository
	translator   *i18n.Translator
	dir          string
	languages    []string

	// One mutex per language keeps concurrent regenerations of the
	// same catalog exclusive without serializing different languages.
	locks map[string]*sync.Mutex
}

func NewCatalogService(
	translations repository.TranslationRepository,
	tags repository.TagRepository,
	translator *i18n.Translator,
	dir string,
	languages []string,
) CatalogService {
	locks := make(map[string]*sync.Mutex, len(languages))
	for _, lang := range languages {
		locks[lang] = &sync.Mutex{}
	}
	return &catalogService{
		translations: translations,
		tags:         tags,
		translator:   translator,
		dir:          dir,
		languages:    languages,
		locks:        locks,
	}
}

func (s *catalogService) Generate(ctx context.Context, lang string) (bool, error) {
	if mu, ok := s.locks[lang]; ok {
		mu.Lock()
		defer mu.Unlock()
	}

	// The category taxonomy is optional infrastructure: a partially
	// configured deployment simply gets no catalogs.
	category, err := s.tags.GetByKey(ctx, "category")
	if err != nil {
		return false, fmt.Errorf("look up category tag: %w", err)
	}
	if category == nil {
		logger.Debug("no category taxonomy, skipping catalog", "module", "catalog", "language", lang)
		return false, nil
	}

	assoc, err := s.tags.FindAssociation(ctx, category.ID, config.SingleForm, lang)
	if err != nil {
		return false, fmt.Errorf("look up language tag: %w", err)
	}
	if assoc == nil {
		logger.Debug("language not in taxonomy, skipping catalog", "module", "catalog", "language", lang)
		return false, nil
	}

	records, err := s.translations.List(ctx, map[string]string{
		"language_idfs": strconv.FormatInt(assoc.ID, 10),
	})
	if err != nil {
		return false, fmt.Errorf("collect translations: %w", err)
	}

	entries := make([]catalog.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, catalog.Entry{ID: rec.Label, Str: rec.Translation})
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return false, fmt.Errorf("create language dir: %w", err)
	}

	poPath := filepath.Join(s.dir, lang+".po")
	if err := os.WriteFile(poPath, catalog.EncodePO(entries), 0o644); err != nil {
		return false, fmt.Errorf("write source catalog: %w", err)
	}

	// Compile from the file just written, not from memory, so the
	// compiled catalog is provably derived from the source on disk.
	source, err := os.ReadFile(poPath)
	if err != nil {
		return false, fmt.Errorf("read source catalog: %w", err)
	}
	compiled, err := catalog.CompileMO(source)
	if err != nil {
		return false, fmt.Errorf("compile catalog: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, lang+".mo"), compiled, 0o644); err != nil {
		return false, fmt.Errorf("write compiled catalog: %w", err)
	}

	if s.translator != nil {
		s.translator.Invalidate(lang)
	}

	logger.Info("catalog generated",
		"module", "catalog",
		"action", "generate",
		"resource", "catalog",
		"result", "ok",
		"language", lang,
		"entries", len(entries),
	)
	return true, nil
}

func (s *catalogService) GenerateAll(ctx context.Context) error {
	runID := uuid.New().String()

	g, ctx := errgroup.WithContext(ctx)
	for _, lang := range s.languages {
		g.Go(func() error {
			written, err := s.Generate(ctx, lang)
			if err != nil {
				logger.Error("catalog generation failed",
					"module", "catalog",
					"action", "generate",
					"resource", "catalog",
					"result", "failed",
					"run_id", runID,
					"language", lang,
					"error", err,
				)
				return fmt.Errorf("generate %s: %w", lang, err)
			}
			if !written {
				logger.Debug("catalog generation skipped", "module", "catalog", "run_id", runID, "language", lang)
			}
			return nil
		})
	}
	return g.Wait()
}
