package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jtalface/open-government-platform/internal/config"
	"github.com/jtalface/open-government-platform/internal/geomath"
	"github.com/jtalface/open-government-platform/internal/models"
	"github.com/jtalface/open-government-platform/internal/neighborhood"
	"github.com/jtalface/open-government-platform/internal/scoring"
	"github.com/jtalface/open-government-platform/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	// UpdateRanking записывает пересчитанные агрегат и важность одним
	// обновлением. seq — оптимистическая версия журнала голосов; при
	// расхождении запись пропускается (false), seq < 0 пишет безусловно.
	UpdateRanking(ctx context.Context, id uuid.UUID, stats models.VoteStats, score float64, seq int64) (bool, error)
	RankedFeed(ctx context.Context, municipalityID uuid.UUID, filters models.FeedFilters, page, pageSize int) ([]*models.Incident, error)
	FindInBoundingBox(ctx context.Context, municipalityID uuid.UUID, box geomath.BBox) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// VoteLedger определяет контракт журнала голосов: ровно одна запись на пару
// (инцидент, пользователь). Мутация возвращает свежий снимок всего набора
// голосов и версию журнала, снятые в одной транзакции с блокировкой строки
// инцидента, поэтому конкурирующие голоса по одному инциденту сериализованы.
type VoteLedger interface {
	UpsertVote(ctx context.Context, vote *models.Vote) ([]models.Vote, int64, error)
	RemoveVote(ctx context.Context, incidentID uuid.UUID, userID string) ([]models.Vote, int64, error)
	Snapshot(ctx context.Context, incidentID uuid.UUID) ([]models.Vote, error)
}

// NeighborhoodResolver определяет контракт привязки точки к району
type NeighborhoodResolver interface {
	Resolve(ctx context.Context, municipalityID uuid.UUID, point geomath.Point) (*uuid.UUID, error)
}

// SettingsProvider отдает коэффициенты ранжирования муниципалитета
type SettingsProvider interface {
	ScoreWeights(ctx context.Context, municipalityID uuid.UUID) (models.ScoreWeights, error)
}

// IncidentService определяет контракт конвейера ранжирования инцидентов
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	CastVote(ctx context.Context, incidentID uuid.UUID, userID string, value int, voterLocation *geomath.Point) error
	RemoveVote(ctx context.Context, incidentID uuid.UUID, userID string) error
	RankedFeed(ctx context.Context, municipalityID uuid.UUID, filters models.FeedFilters, page, pageSize int) ([]*models.Incident, error)
	Nearby(ctx context.Context, municipalityID uuid.UUID, center geomath.Point, radiusMeters float64) ([]*models.Incident, error)
	RecomputeIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
}

type incidentService struct {
	repo      IncidentRepository
	ledger    VoteLedger
	resolver  NeighborhoodResolver
	settings  SettingsProvider
	publisher webhook.EventPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewIncidentService(
	repo IncidentRepository,
	ledger VoteLedger,
	resolver NeighborhoodResolver,
	settings SettingsProvider,
	publisher webhook.EventPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) IncidentService {
	return &incidentService{
		repo:      repo,
		ledger:    ledger,
		resolver:  resolver,
		settings:  settings,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateIncident валидирует координаты, штампует geohash и район,
// сохраняет инцидент с нулевым агрегатом и нулевой важностью
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "incident",
		"method":          "CreateIncident",
		"municipality_id": incident.MunicipalityID,
	})
	log.Info("Attempting to create a new incident")

	if err := validateLocation(incident.Latitude, incident.Longitude); err != nil {
		log.WithError(err).Warn("Rejected incident with invalid location")
		return err
	}

	incident.Geohash = geomath.EncodeGeohash(incident.Latitude, incident.Longitude, s.cfg.GeohashPrecision)

	// Привязка к району — best-effort: при недоступном хранилище инцидент
	// создается без района, ошибка качества геоданных поднимается наверх
	point := geomath.Point{Lat: incident.Latitude, Lng: incident.Longitude}
	neighborhoodID, err := s.resolver.Resolve(ctx, incident.MunicipalityID, point)
	if err != nil {
		if errors.Is(err, neighborhood.ErrMalformedGeometry) {
			log.WithError(err).Error("Neighborhood geometry is malformed")
			return fmt.Errorf("service: could not resolve neighborhood: %w", err)
		}
		log.WithError(err).Warn("Neighborhood resolution unavailable, creating incident without neighborhood")
		neighborhoodID = nil
	}
	incident.NeighborhoodID = neighborhoodID

	incident.Status = "open"
	incident.VoteStats = models.ZeroVoteStats()
	incident.ImportanceScore = 0

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	s.publishEvent(ctx, log, webhook.EventIncidentCreated, incident)

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		log.WithError(err).Error("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// CastVote регистрирует или перезаписывает голос и синхронно пересчитывает
// агрегат и важность инцидента из полного снимка журнала
func (s *incidentService) CastVote(ctx context.Context, incidentID uuid.UUID, userID string, value int, voterLocation *geomath.Point) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CastVote",
		"incident_id": incidentID,
		"user_id":     userID,
	})
	log.Info("Casting vote")

	if value != 1 && value != -1 {
		return fmt.Errorf("%w: %d", ErrInvalidVoteValue, value)
	}

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Vote cast against a nonexistent incident")
			return err
		}
		log.WithError(err).Error("Failed to get incident from repository")
		return fmt.Errorf("service: could not get incident: %w", err)
	}

	// Район голосующего определяется один раз при подаче голоса и
	// замораживается в строке голоса; при перезаписи значения журнал
	// снимок района не трогает
	var voterNeighborhoodID *uuid.UUID
	if voterLocation != nil {
		voterNeighborhoodID, err = s.resolver.Resolve(ctx, incident.MunicipalityID, *voterLocation)
		if err != nil {
			log.WithError(err).Warn("Failed to resolve voter neighborhood, counting vote globally")
			voterNeighborhoodID = nil
		}
	}

	vote := &models.Vote{
		IncidentID:     incidentID,
		UserID:         userID,
		Value:          value,
		NeighborhoodID: voterNeighborhoodID,
	}
	snapshot, seq, err := s.ledger.UpsertVote(ctx, vote)
	if err != nil {
		log.WithError(err).Error("Failed to upsert vote in ledger")
		return fmt.Errorf("service: could not cast vote: %w", err)
	}

	if err := s.recomputeRanking(ctx, log, incident, snapshot, seq); err != nil {
		return err
	}

	log.Info("Vote cast successfully")
	return nil
}

// RemoveVote снимает голос пользователя; повторное снятие — no-op
func (s *incidentService) RemoveVote(ctx context.Context, incidentID uuid.UUID, userID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "RemoveVote",
		"incident_id": incidentID,
		"user_id":     userID,
	})
	log.Info("Removing vote")

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Vote removal against a nonexistent incident")
			return err
		}
		log.WithError(err).Error("Failed to get incident from repository")
		return fmt.Errorf("service: could not get incident: %w", err)
	}

	snapshot, seq, err := s.ledger.RemoveVote(ctx, incidentID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to remove vote from ledger")
		return fmt.Errorf("service: could not remove vote: %w", err)
	}

	if err := s.recomputeRanking(ctx, log, incident, snapshot, seq); err != nil {
		return err
	}

	log.Info("Vote removed successfully")
	return nil
}

// RankedFeed возвращает инциденты муниципалитета в порядке
// importance_score desc, created_at desc с пагинацией
func (s *incidentService) RankedFeed(ctx context.Context, municipalityID uuid.UUID, filters models.FeedFilters, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":         "incident",
		"method":          "RankedFeed",
		"municipality_id": municipalityID,
		"page":            page,
		"page_size":       pageSize,
	})

	incidents, err := s.repo.RankedFeed(ctx, municipalityID, filters, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to read ranked feed from repository")
		return nil, fmt.Errorf("service: could not list ranked feed: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Ranked feed listed successfully")
	return incidents, nil
}

// Nearby находит инциденты в радиусе от точки: грубая рамка как предфильтр
// в запросе, затем точная проверка расстояния, затем ранжирование
func (s *incidentService) Nearby(ctx context.Context, municipalityID uuid.UUID, center geomath.Point, radiusMeters float64) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "incident",
		"method":          "Nearby",
		"municipality_id": municipalityID,
		"radius_meters":   radiusMeters,
	})

	if err := validateLocation(center.Lat, center.Lng); err != nil {
		return nil, err
	}
	if radiusMeters <= 0 || math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) {
		return nil, fmt.Errorf("%w: radius must be positive and finite", ErrInvalidLocation)
	}

	box := geomath.BoundingBox(center, radiusMeters)
	candidates, err := s.repo.FindInBoundingBox(ctx, municipalityID, box)
	if err != nil {
		log.WithError(err).Error("Failed to find incidents in bounding box")
		return nil, fmt.Errorf("service: could not find nearby incidents: %w", err)
	}

	incidents := make([]*models.Incident, 0, len(candidates))
	for _, inc := range candidates {
		d := geomath.DistanceMeters(center, geomath.Point{Lat: inc.Latitude, Lng: inc.Longitude})
		if d <= radiusMeters {
			incidents = append(incidents, inc)
		}
	}
	scoring.SortRanked(incidents)

	log.WithField("count", len(incidents)).Info("Nearby incidents found")
	return incidents, nil
}

// RecomputeIncident перестраивает агрегат и важность из журнала голосов.
// Пересчет идемпотентен, поэтому операция безопасна в любой момент —
// например, из периодической задачи починки.
func (s *incidentService) RecomputeIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "RecomputeIncident",
		"incident_id": id,
	})
	log.Info("Recomputing incident ranking from the vote ledger")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		log.WithError(err).Error("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	snapshot, err := s.ledger.Snapshot(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to read vote snapshot from ledger")
		return nil, fmt.Errorf("service: could not read vote snapshot: %w", err)
	}

	if err := s.recomputeRanking(ctx, log, incident, snapshot, -1); err != nil {
		return nil, err
	}
	return incident, nil
}

// recomputeRanking — общий хвост мутаций: полный пересчет агрегата из снимка,
// подсчет важности по весам муниципалитета и атомарная запись обеих величин
func (s *incidentService) recomputeRanking(ctx context.Context, log *logrus.Entry, incident *models.Incident, snapshot []models.Vote, seq int64) error {
	stats := scoring.ComputeStats(snapshot)

	weights, err := s.settings.ScoreWeights(ctx, incident.MunicipalityID)
	if err != nil {
		log.WithError(err).Warn("Failed to load municipality score weights, using defaults")
		weights = scoring.DefaultWeights()
	}

	score := scoring.Score(stats, incident.NeighborhoodID, incident.CreatedAt, weights, s.now())

	updated, err := s.repo.UpdateRanking(ctx, incident.ID, stats, score, seq)
	if err != nil {
		log.WithError(err).Error("Failed to persist recomputed ranking")
		return fmt.Errorf("service: could not persist ranking: %w", err)
	}
	if !updated {
		// Параллельный голос уже запустил более свежий пересчет;
		// последний пишущий побеждает
		log.Debug("Ranking write superseded by a newer vote, skipping")
		return nil
	}

	incident.VoteStats = stats
	incident.ImportanceScore = score

	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	s.publishEvent(ctx, log, webhook.EventIncidentReranked, incident)
	return nil
}

// publishEvent отправляет событие внешним подписчикам; отказ доставки не
// откатывает мутацию
func (s *incidentService) publishEvent(ctx context.Context, log *logrus.Entry, eventType string, incident *models.Incident) {
	event := webhook.Event{
		Type:            eventType,
		IncidentID:      incident.ID,
		MunicipalityID:  incident.MunicipalityID,
		NeighborhoodID:  incident.NeighborhoodID,
		ImportanceScore: incident.ImportanceScore,
		VoteStats:       incident.VoteStats,
		Timestamp:       s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident event")
	}
}

// validateLocation отклоняет неконечные и выходящие за диапазон координаты
func validateLocation(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return fmt.Errorf("%w: coordinates must be finite", ErrInvalidLocation)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %f out of range", ErrInvalidLocation, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %f out of range", ErrInvalidLocation, lng)
	}
	return nil
}
