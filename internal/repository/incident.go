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
	"github.com/jtalface/open-government-platform/internal/geomath"
	"github.com/jtalface/open-government-platform/internal/models"
	"github.com/jtalface/open-government-platform/internal/service"
	"github.com/redis/go-redis/v9"
)

const incidentColumns = `
	id,
	municipality_id,
	category_id,
	title,
	description,
	latitude,
	longitude,
	geohash,
	neighborhood_id,
	media_urls,
	status,
	vote_stats,
	importance_score,
	created_at,
	updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			municipality_id, category_id, title, description,
			latitude, longitude, geohash, neighborhood_id, media_urls,
			status, vote_stats, importance_score
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.MunicipalityID,
		incident.CategoryID,
		incident.Title,
		incident.Description,
		incident.Latitude,
		incident.Longitude,
		incident.Geohash,
		incident.NeighborhoodID,
		incident.MediaURLs,
		incident.Status,
		incident.VoteStats,
		incident.ImportanceScore,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := fmt.Sprintf(`SELECT %s FROM incidents WHERE id = $1;`, incidentColumns)

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", service.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// UpdateRanking записывает пересчитанные агрегат и важность одним UPDATE,
// чтобы пара vote_stats/importance_score никогда не была "порвана".
// seq — оптимистическая версия журнала голосов: если с момента снимка по
// инциденту прошёл новый голос, запись пропускается (его пересчет свежее).
// seq < 0 означает безусловную запись (ремонтный пересчет).
func (r *IncidentRepository) UpdateRanking(ctx context.Context, id uuid.UUID, stats models.VoteStats, score float64, seq int64) (bool, error) {
	query := `
		UPDATE incidents SET
			vote_stats = $2,
			importance_score = $3,
			updated_at = NOW()
		WHERE id = $1 AND ($4::bigint < 0 OR vote_seq = $4);
	`
	cmdTag, err := r.db.Exec(ctx, query, id, stats, score, seq)
	if err != nil {
		return false, fmt.Errorf("failed to update incident ranking: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// RankedFeed возвращает инциденты муниципалитета в порядке
// importance_score desc, created_at desc с пагинацией
func (r *IncidentRepository) RankedFeed(ctx context.Context, municipalityID uuid.UUID, filters models.FeedFilters, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := fmt.Sprintf(`SELECT %s FROM incidents WHERE municipality_id = $1`, incidentColumns)
	args := []any{municipalityID}

	if filters.CategoryID != nil {
		args = append(args, *filters.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	args = append(args, pageSize, offset)
	query += fmt.Sprintf(`
		ORDER BY importance_score DESC, created_at DESC
		LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranked feed: %w", err)
	}
	defer rows.Close()

	return collectIncidents(rows)
}

// FindInBoundingBox возвращает инциденты муниципалитета внутри грубой рамки.
// Точную проверку расстояния делает вызывающий код.
func (r *IncidentRepository) FindInBoundingBox(ctx context.Context, municipalityID uuid.UUID, box geomath.BBox) ([]*models.Incident, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM incidents
		WHERE
			municipality_id = $1
			AND latitude BETWEEN $2 AND $3
			AND longitude BETWEEN $4 AND $5
		ORDER BY importance_score DESC, created_at DESC;`, incidentColumns)

	rows, err := r.db.Query(ctx, query, municipalityID, box.South, box.North, box.West, box.East)
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents in bounding box: %w", err)
	}
	defer rows.Close()

	return collectIncidents(rows)
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

// scanIncident читает одну строку инцидента
func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.MunicipalityID,
		&incident.CategoryID,
		&incident.Title,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Geohash,
		&incident.NeighborhoodID,
		&incident.MediaURLs,
		&incident.Status,
		&incident.VoteStats,
		&incident.ImportanceScore,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incidents iteration: %w", err)
	}
	return incidents, nil
}
