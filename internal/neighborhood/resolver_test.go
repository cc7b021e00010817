package neighborhood

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jtalface/open-government-platform/internal/geomath"
	"github.com/jtalface/open-government-platform/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore — хранилище районов в памяти для тестов
type fakeStore struct {
	neighborhoods []models.Neighborhood
	err           error
	calls         int
}

func (s *fakeStore) ActiveByMunicipality(ctx context.Context, municipalityID uuid.UUID) ([]models.Neighborhood, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.neighborhoods, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// squarePolygon строит GeoJSON квадрат [west..east]x[south..north]
func squarePolygon(south, west, north, east float64) json.RawMessage {
	geo := fmt.Sprintf(
		`{"type":"Polygon","coordinates":[[[%f,%f],[%f,%f],[%f,%f],[%f,%f],[%f,%f]]]}`,
		west, south, east, south, east, north, west, north, west, south,
	)
	return json.RawMessage(geo)
}

func newNeighborhood(municipalityID uuid.UUID, geometry json.RawMessage) models.Neighborhood {
	return models.Neighborhood{
		ID:             uuid.New(),
		MunicipalityID: municipalityID,
		Name:           "Тестовый район",
		Geometry:       geometry,
		Active:         true,
	}
}

func TestResolve_Containment(t *testing.T) {
	// Подготовка
	municipalityID := uuid.New()
	n1 := newNeighborhood(municipalityID, squarePolygon(0, 0, 1, 1))
	n2 := newNeighborhood(municipalityID, squarePolygon(0, 2, 1, 3))
	store := &fakeStore{neighborhoods: []models.Neighborhood{n1, n2}}
	resolver := NewResolver(store, testLogger(), time.Minute)

	// Действие
	id, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 0.5, Lng: 0.5})

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, n1.ID, *id)
}

func TestResolve_NearestFallback(t *testing.T) {
	// Точка между двумя квадратами, но ближе ко второму
	municipalityID := uuid.New()
	n1 := newNeighborhood(municipalityID, squarePolygon(0, 0, 1, 1))
	n2 := newNeighborhood(municipalityID, squarePolygon(0, 2, 1, 3))
	store := &fakeStore{neighborhoods: []models.Neighborhood{n1, n2}}
	resolver := NewResolver(store, testLogger(), time.Minute)

	id, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 0.5, Lng: 1.8})

	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, n2.ID, *id)
}

func TestResolve_NearestByBoundaryNotCentroid(t *testing.T) {
	// Большой район с далеким центроидом, но близкой границей, должен
	// выигрывать у маленького с более близким центроидом
	municipalityID := uuid.New()
	large := newNeighborhood(municipalityID, squarePolygon(0, 2, 10, 12))
	small := newNeighborhood(municipalityID, squarePolygon(0.4, -4, 0.6, -3.8))
	store := &fakeStore{neighborhoods: []models.Neighborhood{small, large}}
	resolver := NewResolver(store, testLogger(), time.Minute)

	// До границы large — 1.5 градуса, до small — ~3.3; центроид large в (5,7)
	id, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 0.5, Lng: 0.5})

	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, large.ID, *id)
}

func TestResolve_MultipleContainersStableTieBreak(t *testing.T) {
	// Две пересекающиеся геометрии, содержащие точку: выбирается
	// наименьший id независимо от порядка в хранилище
	municipalityID := uuid.New()
	a := newNeighborhood(municipalityID, squarePolygon(0, 0, 2, 2))
	b := newNeighborhood(municipalityID, squarePolygon(0, 0, 2, 2))

	want := a.ID
	if bytes.Compare(b.ID[:], a.ID[:]) < 0 {
		want = b.ID
	}

	for _, order := range [][]models.Neighborhood{{a, b}, {b, a}} {
		store := &fakeStore{neighborhoods: order}
		resolver := NewResolver(store, testLogger(), time.Minute)

		id, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 1, Lng: 1})
		require.NoError(t, err)
		require.NotNil(t, id)
		assert.Equal(t, want, *id)
	}
}

func TestResolve_HoleExcluded(t *testing.T) {
	// Полигон с дырой: точка в дыре не считается принадлежащей району,
	// но он остаётся ближайшим
	municipalityID := uuid.New()
	withHole := models.Neighborhood{
		ID:             uuid.New(),
		MunicipalityID: municipalityID,
		Geometry: json.RawMessage(`{
			"type": "Polygon",
			"coordinates": [
				[[0,0],[4,0],[4,4],[0,4],[0,0]],
				[[1,1],[3,1],[3,3],[1,3],[1,1]]
			]
		}`),
		Active: true,
	}
	store := &fakeStore{neighborhoods: []models.Neighborhood{withHole}}
	resolver := NewResolver(store, testLogger(), time.Minute)

	// Точка в дыре: вхождения нет, срабатывает ближайший район
	id, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 2, Lng: 2})
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, withHole.ID, *id)

	// Точка в "теле" между внешним кольцом и дырой — прямое вхождение
	id, err = resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 0.5, Lng: 2})
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, withHole.ID, *id)
}

func TestResolve_NoNeighborhoods(t *testing.T) {
	// Муниципалитет без активных районов — (nil, nil), не ошибка
	store := &fakeStore{}
	resolver := NewResolver(store, testLogger(), time.Minute)

	id, err := resolver.Resolve(context.Background(), uuid.New(), geomath.Point{Lat: 0.5, Lng: 0.5})

	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestResolve_StoreUnavailable(t *testing.T) {
	store := &fakeStore{err: fmt.Errorf("connection refused")}
	resolver := NewResolver(store, testLogger(), time.Minute)

	_, err := resolver.Resolve(context.Background(), uuid.New(), geomath.Point{Lat: 0.5, Lng: 0.5})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpatialIndexUnavailable)
}

func TestResolve_MalformedGeometry(t *testing.T) {
	municipalityID := uuid.New()
	bad := models.Neighborhood{
		ID:             uuid.New(),
		MunicipalityID: municipalityID,
		Geometry:       json.RawMessage(`{"type":"Point","coordinates":[1,2]}`),
		Active:         true,
	}
	store := &fakeStore{neighborhoods: []models.Neighborhood{bad}}
	resolver := NewResolver(store, testLogger(), time.Minute)

	_, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 0.5, Lng: 0.5})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedGeometry)
}

func TestResolve_ShortRingRejected(t *testing.T) {
	municipalityID := uuid.New()
	bad := models.Neighborhood{
		ID:             uuid.New(),
		MunicipalityID: municipalityID,
		Geometry:       json.RawMessage(`{"type":"Polygon","coordinates":[[[0,0],[1,0],[0,0]]]}`),
		Active:         true,
	}
	store := &fakeStore{neighborhoods: []models.Neighborhood{bad}}
	resolver := NewResolver(store, testLogger(), time.Minute)

	_, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 0.5, Lng: 0.5})

	assert.ErrorIs(t, err, ErrMalformedGeometry)
}

func TestResolve_UnclosedRingRejected(t *testing.T) {
	// Кольцо без замыкающей позиции (первая != последняя) теряло бы
	// последний сегмент границы, поэтому это ошибка качества данных
	municipalityID := uuid.New()
	bad := models.Neighborhood{
		ID:             uuid.New(),
		MunicipalityID: municipalityID,
		Geometry:       json.RawMessage(`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1]]]}`),
		Active:         true,
	}
	store := &fakeStore{neighborhoods: []models.Neighborhood{bad}}
	resolver := NewResolver(store, testLogger(), time.Minute)

	_, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 0.5, Lng: 0.5})

	assert.ErrorIs(t, err, ErrMalformedGeometry)
}

func TestResolve_IndexCached(t *testing.T) {
	municipalityID := uuid.New()
	n1 := newNeighborhood(municipalityID, squarePolygon(0, 0, 1, 1))
	store := &fakeStore{neighborhoods: []models.Neighborhood{n1}}
	resolver := NewResolver(store, testLogger(), time.Minute)

	for range 3 {
		_, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 0.5, Lng: 0.5})
		require.NoError(t, err)
	}

	// Индекс строится один раз и переиспользуется до истечения TTL
	assert.Equal(t, 1, store.calls)
}

func TestResolve_StaleIndexOnStoreFailure(t *testing.T) {
	municipalityID := uuid.New()
	n1 := newNeighborhood(municipalityID, squarePolygon(0, 0, 1, 1))
	store := &fakeStore{neighborhoods: []models.Neighborhood{n1}}
	resolver := NewResolver(store, testLogger(), time.Nanosecond)

	_, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 0.5, Lng: 0.5})
	require.NoError(t, err)

	// TTL истёк, хранилище упало: продолжаем отвечать по протухшему индексу
	store.err = fmt.Errorf("connection refused")
	time.Sleep(time.Millisecond)

	id, err := resolver.Resolve(context.Background(), municipalityID, geomath.Point{Lat: 0.5, Lng: 0.5})
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, n1.ID, *id)
}
