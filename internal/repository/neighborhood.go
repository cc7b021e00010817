package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jtalface/open-government-platform/internal/models"
	"github.com/jtalface/open-government-platform/internal/neighborhood"
	"github.com/redis/go-redis/v9"
)

// NeighborhoodStore — хранилище районов, только чтение с точки зрения движка.
// Набор активных районов муниципалитета кэшируется в Redis, чтобы
// перестроение пространственного индекса не ходило в бд на каждый TTL.
type NeighborhoodStore struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewNeighborhoodStore(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) neighborhood.Store {
	return &NeighborhoodStore{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// ActiveByMunicipality возвращает активные районы муниципалитета
func (s *NeighborhoodStore) ActiveByMunicipality(ctx context.Context, municipalityID uuid.UUID) ([]models.Neighborhood, error) {
	key := fmt.Sprintf("neighborhoods:%s", municipalityID.String())

	if val, err := s.redisClient.Get(ctx, key).Bytes(); err == nil {
		var cached []models.Neighborhood
		if err := json.Unmarshal(val, &cached); err == nil {
			return cached, nil
		}
		// Испорченный кэш просто перечитываем из бд
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get neighborhoods from cache: %w", err)
	}

	query := `
		SELECT id, municipality_id, name, geometry, active
		FROM neighborhoods
		WHERE municipality_id = $1 AND active = TRUE
		ORDER BY id;
	`
	rows, err := s.db.Query(ctx, query, municipalityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active neighborhoods: %w", err)
	}
	defer rows.Close()

	neighborhoods := make([]models.Neighborhood, 0)
	for rows.Next() {
		var n models.Neighborhood
		var geometry []byte
		if err := rows.Scan(&n.ID, &n.MunicipalityID, &n.Name, &geometry, &n.Active); err != nil {
			return nil, fmt.Errorf("failed to scan neighborhood row: %w", err)
		}
		n.Geometry = json.RawMessage(geometry)
		neighborhoods = append(neighborhoods, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error neighborhoods iteration: %w", err)
	}

	if val, err := json.Marshal(neighborhoods); err == nil {
		// Отказ кэша не фатален: следующий вызов снова пойдет в бд
		s.redisClient.Set(ctx, key, val, s.cacheTTL)
	}

	return neighborhoods, nil
}
