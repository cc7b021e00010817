package neighborhood

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jtalface/open-government-platform/internal/geomath"
	"github.com/jtalface/open-government-platform/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	// ErrMalformedGeometry — геометрия района не проходит базовую проверку;
	// это ошибка качества данных, которую нельзя молча проглатывать
	ErrMalformedGeometry = errors.New("malformed neighborhood geometry")

	// ErrSpatialIndexUnavailable — хранилище районов временно недоступно.
	// Ошибка транзиентная (повторяемая) и не равнозначна "район не найден".
	ErrSpatialIndexUnavailable = errors.New("spatial index unavailable")
)

// Store определяет контракт чтения районов муниципалитета
type Store interface {
	ActiveByMunicipality(ctx context.Context, municipalityID uuid.UUID) ([]models.Neighborhood, error)
}

// indexedNeighborhood — район с разобранной геометрией
type indexedNeighborhood struct {
	id    uuid.UUID
	polys []polygon
}

// municipalityIndex — разобранные полигоны одного муниципалитета
type municipalityIndex struct {
	neighborhoods []indexedNeighborhood
	builtAt       time.Time
}

// Resolver сопоставляет точку с административным районом муниципалитета.
// Разобранные полигоны держатся в памяти с TTL, чтобы проверка вхождения
// не превращалась в полный проход по хранилищу на каждый вызов.
type Resolver struct {
	store  Store
	logger *logrus.Logger
	ttl    time.Duration

	mu      sync.RWMutex
	indexes map[uuid.UUID]*municipalityIndex
}

func NewResolver(store Store, logger *logrus.Logger, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Resolver{
		store:   store,
		logger:  logger,
		ttl:     ttl,
		indexes: make(map[uuid.UUID]*municipalityIndex),
	}
}

// Resolve возвращает район, содержащий точку, либо ближайший район как
// запасной вариант. Если у муниципалитета нет активных районов, возвращается
// (nil, nil): вызывающий код трактует это как "без привязки к району",
// а не как ошибку.
func (r *Resolver) Resolve(ctx context.Context, municipalityID uuid.UUID, point geomath.Point) (*uuid.UUID, error) {
	idx, err := r.index(ctx, municipalityID)
	if err != nil {
		return nil, err
	}

	if len(idx.neighborhoods) == 0 {
		return nil, nil
	}

	// Шаг 1: проверка вхождения. Если точку содержат несколько полигонов,
	// берём район с наименьшим id — стабильный выбор при любом порядке обхода.
	var containing *uuid.UUID
	for i := range idx.neighborhoods {
		n := &idx.neighborhoods[i]
		for _, poly := range n.polys {
			if poly.contains(point) {
				if containing == nil || lessUUID(n.id, *containing) {
					id := n.id
					containing = &id
				}
				break
			}
		}
	}
	if containing != nil {
		return containing, nil
	}

	// Шаг 2: точка не попала ни в один полигон — берём геометрически
	// ближайший район по расстоянию до границы
	var nearest *uuid.UUID
	bestDist := 0.0
	for i := range idx.neighborhoods {
		n := &idx.neighborhoods[i]
		for _, poly := range n.polys {
			d := poly.distanceMeters(point)
			if nearest == nil || d < bestDist || (d == bestDist && lessUUID(n.id, *nearest)) {
				id := n.id
				nearest = &id
				bestDist = d
			}
		}
	}
	return nearest, nil
}

// Invalidate сбрасывает кэш индекса муниципалитета (например, после
// редактирования границ районов)
func (r *Resolver) Invalidate(municipalityID uuid.UUID) {
	r.mu.Lock()
	delete(r.indexes, municipalityID)
	r.mu.Unlock()
}

// index возвращает индекс муниципалитета, перестраивая его по истечении TTL
func (r *Resolver) index(ctx context.Context, municipalityID uuid.UUID) (*municipalityIndex, error) {
	r.mu.RLock()
	idx, ok := r.indexes[municipalityID]
	r.mu.RUnlock()
	if ok && time.Since(idx.builtAt) < r.ttl {
		return idx, nil
	}

	neighborhoods, err := r.store.ActiveByMunicipality(ctx, municipalityID)
	if err != nil {
		// Протухший индекс лучше отказа: точность привязки деградирует,
		// но создание инцидентов продолжает работать
		if ok {
			r.logger.WithError(err).WithField("municipality_id", municipalityID).
				Warn("Neighborhood store unavailable, serving stale index")
			return idx, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrSpatialIndexUnavailable, err)
	}

	built, err := buildIndex(neighborhoods)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.indexes[municipalityID] = built
	r.mu.Unlock()
	return built, nil
}

func buildIndex(neighborhoods []models.Neighborhood) (*municipalityIndex, error) {
	idx := &municipalityIndex{builtAt: time.Now()}
	for _, n := range neighborhoods {
		polys, err := parseGeometry(n.Geometry)
		if err != nil {
			return nil, fmt.Errorf("neighborhood %s: %w", n.ID, err)
		}
		idx.neighborhoods = append(idx.neighborhoods, indexedNeighborhood{id: n.ID, polys: polys})
	}
	return idx, nil
}

func lessUUID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
