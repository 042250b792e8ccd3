package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// StatisticRepository is the append-only statistics sink.
type StatisticRepository interface {
	Append(ctx context.Context, key string, data any) error
}

type statisticRepository struct {
	db dbtx
}

func NewStatisticRepository(db dbtx) StatisticRepository {
	return &statisticRepository{db: db}
}

func (r *statisticRepository) Append(ctx context.Context, key string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode stats payload: %w", err)
	}

	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO statistics (stats_key, data, date) VALUES (?, ?, ?)`,
		key, string(payload), formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("append statistic: %w", err)
	}
	return nil
}
