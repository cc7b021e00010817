package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jtalface/open-government-platform/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	eventQueueKey = "incident_events"

	// Типы событий движка ранжирования
	EventIncidentCreated  = "incident.created"
	EventIncidentReranked = "incident.reranked"
)

// Event - структура события для внешних подписчиков (каналы публикации,
// аудит и прочие коллабораторы, живущие вне движка)
type Event struct {
	Type            string           `json:"type"`
	IncidentID      uuid.UUID        `json:"incident_id"`
	MunicipalityID  uuid.UUID        `json:"municipality_id"`
	NeighborhoodID  *uuid.UUID       `json:"neighborhood_id,omitempty"`
	ImportanceScore float64          `json:"importance_score"`
	VoteStats       models.VoteStats `json:"vote_stats"`
	Timestamp       time.Time        `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий движка
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
