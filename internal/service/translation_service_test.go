package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"oneplace/translation/internal/model"
	"oneplace/translation/internal/repository/mock"
	"oneplace/translation/internal/service"
)

func TestTranslationService_Save_New(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mock.NewMockTranslationRepository(ctrl)
	stats := mock.NewMockStatisticRepository(ctrl)
	svc := service.NewTranslationService(repo, stats, service.StaticIdentity(42))

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec model.Translation) (int64, error) {
			require.EqualValues(t, 42, rec.CreatedBy)
			require.EqualValues(t, 42, rec.ModifiedBy)
			require.False(t, rec.CreatedDate.IsZero())
			require.True(t, rec.ModifiedDate.Equal(rec.CreatedDate))
			return 100, nil
		})

	id, err := svc.Save(context.Background(), model.Translation{Label: "Hello"})
	require.NoError(t, err)
	require.EqualValues(t, 100, id)
}

func TestTranslationService_Save_Existing(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mock.NewMockTranslationRepository(ctrl)
	stats := mock.NewMockStatisticRepository(ctrl)
	svc := service.NewTranslationService(repo, stats, service.StaticIdentity(9))

	created := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	existing := model.Translation{ID: 55, Label: "Hello", CreatedBy: 1, CreatedDate: created}

	repo.EXPECT().GetByID(gomock.Any(), int64(55)).Return(existing, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec model.Translation) (int64, error) {
			require.EqualValues(t, 9, rec.ModifiedBy)
			require.False(t, rec.ModifiedDate.IsZero())
			return 1, nil
		})

	id, err := svc.Save(context.Background(), model.Translation{ID: 55, Label: "Hello", Translation: "Hallo"})
	require.NoError(t, err)
	require.EqualValues(t, 55, id)
}

func TestTranslationService_Save_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mock.NewMockTranslationRepository(ctrl)
	stats := mock.NewMockStatisticRepository(ctrl)
	svc := service.NewTranslationService(repo, stats, service.StaticIdentity(1))

	// Existence is re-checked; no insert or update may follow.
	repo.EXPECT().GetByID(gomock.Any(), int64(77)).Return(model.Translation{}, sql.ErrNoRows)

	_, err := svc.Save(context.Background(), model.Translation{ID: 77, Label: "x"})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestTranslationService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mock.NewMockTranslationRepository(ctrl)
	stats := mock.NewMockStatisticRepository(ctrl)
	svc := service.NewTranslationService(repo, stats, service.StaticIdentity(1))

	repo.EXPECT().GetByID(gomock.Any(), int64(404)).Return(model.Translation{}, sql.ErrNoRows)

	_, err := svc.Get(context.Background(), 404)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestTranslationService_GenerateDailyStats(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mock.NewMockTranslationRepository(ctrl)
	stats := mock.NewMockStatisticRepository(ctrl)
	svc := service.NewTranslationService(repo, stats, service.StaticIdentity(1))

	all := []model.Translation{{ID: 1}, {ID: 2}, {ID: 3}}
	today := time.Now().UTC().Format("2006-01-02")

	repo.EXPECT().List(gomock.Any(), gomock.Nil()).Return(all, nil)
	repo.EXPECT().
		List(gomock.Any(), map[string]string{"created_date-like": today}).
		Return(all[:1], nil)
	stats.EXPECT().
		Append(gomock.Any(), "translation-daily", map[string]int{"new": 1, "total": 3}).
		Return(nil)

	require.NoError(t, svc.GenerateDailyStats(context.Background()))
}
