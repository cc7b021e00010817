package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jtalface/open-government-platform/internal/config"
	"github.com/jtalface/open-government-platform/internal/models"
	"github.com/jtalface/open-government-platform/internal/service"
	"github.com/redis/go-redis/v9"
)

// SettingsStore отдает коэффициенты ранжирования муниципалитета.
// Если муниципалитет не настроил веса, используются документированные
// значения по умолчанию (2.0, 1.0, 30) из конфигурации.
type SettingsStore struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cfg         *config.Config
}

func NewSettingsStore(db *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) service.SettingsProvider {
	return &SettingsStore{
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// ScoreWeights возвращает веса муниципалитета, сначала из кеша
func (s *SettingsStore) ScoreWeights(ctx context.Context, municipalityID uuid.UUID) (models.ScoreWeights, error) {
	key := fmt.Sprintf("score_weights:%s", municipalityID.String())

	if val, err := s.redisClient.Get(ctx, key).Bytes(); err == nil {
		var cached models.ScoreWeights
		if err := json.Unmarshal(val, &cached); err == nil {
			return cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return models.ScoreWeights{}, fmt.Errorf("failed to get score weights from cache: %w", err)
	}

	weights := s.defaults()
	query := `
		SELECT neighborhood_vote_weight, global_vote_weight, decay_constant_days
		FROM municipality_settings
		WHERE municipality_id = $1;
	`
	err := s.db.QueryRow(ctx, query, municipalityID).Scan(
		&weights.NeighborhoodVoteWeight,
		&weights.GlobalVoteWeight,
		&weights.DecayConstantDays,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return models.ScoreWeights{}, fmt.Errorf("failed to get municipality score weights: %w", err)
	}

	if val, err := json.Marshal(weights); err == nil {
		s.redisClient.Set(ctx, key, val, s.cacheTTL())
	}

	return weights, nil
}

func (s *SettingsStore) defaults() models.ScoreWeights {
	return models.ScoreWeights{
		NeighborhoodVoteWeight: s.cfg.DefaultNeighborhoodVoteWeight,
		GlobalVoteWeight:       s.cfg.DefaultGlobalVoteWeight,
		DecayConstantDays:      s.cfg.DefaultDecayConstantDays,
	}
}

func (s *SettingsStore) cacheTTL() time.Duration {
	if s.cfg.SettingsCacheTTL > 0 {
		return s.cfg.SettingsCacheTTL
	}
	return 10 * time.Minute
}
