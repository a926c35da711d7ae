package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/internal/infra/cache"
	catalogRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/catalog"
)

type fakeSportRepo struct {
	sports      []*domain.Sport
	sportByName map[string]*domain.Sport
	err         error
}

func (f *fakeSportRepo) ListActiveSports(_ context.Context) ([]*domain.Sport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sports, nil
}

func (f *fakeSportRepo) GetSportByName(_ context.Context, name string) (*domain.Sport, error) {
	if f.err != nil {
		return nil, f.err
	}
	sport, ok := f.sportByName[name]
	if !ok {
		return nil, catalogRepo.ErrSportNotFound
	}
	return sport, nil
}

type fakeVenueRepo struct {
	venues      []*domain.Venue
	venueByID   map[int64]*domain.Venue
	venueByName map[string]*domain.Venue
	err         error
}

func (f *fakeVenueRepo) ListActiveVenues(_ context.Context) ([]*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.venues, nil
}

func (f *fakeVenueRepo) GetVenueByID(_ context.Context, id int64) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	venue, ok := f.venueByID[id]
	if !ok {
		return nil, catalogRepo.ErrVenueNotFound
	}
	return venue, nil
}

func (f *fakeVenueRepo) GetVenueByName(_ context.Context, name string) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	venue, ok := f.venueByName[name]
	if !ok {
		return nil, catalogRepo.ErrVenueNotFound
	}
	return venue, nil
}

type fakeCourtRepo struct {
	courts []*domain.Court
	err    error
}

func (f *fakeCourtRepo) ListByVenueAndSport(_ context.Context, _, _ int64) ([]*domain.Court, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courts, nil
}

// fakeCache хранит значения в памяти как JSON, имитируя redis
type fakeCache struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, value any) error {
	if f.getErr != nil {
		return f.getErr
	}
	raw, ok := f.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, value)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any) error {
	if f.setErr != nil {
		return f.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	f.setKeys = append(f.setKeys, key)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestService_ListSports(t *testing.T) {
	sports := []*domain.Sport{
		{ID: 1, Name: "Теннис", IsActive: true},
		{ID: 2, Name: "Баскетбол", IsActive: true},
	}

	c := newFakeCache()
	svc := NewService(&fakeSportRepo{sports: sports}, &fakeVenueRepo{}, &fakeCourtRepo{}, c, noopLogger{})

	resp, err := svc.ListSports(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Sports, 2)
	assert.Equal(t, "Теннис", resp.Sports[0].Name)

	// Результат записан в кэш
	assert.Contains(t, c.setKeys, "catalog:sports")
}

func TestService_ListSports_ServedFromCache(t *testing.T) {
	c := newFakeCache()
	svc := NewService(&fakeSportRepo{sports: []*domain.Sport{{ID: 1, Name: "Теннис"}}}, &fakeVenueRepo{}, &fakeCourtRepo{}, c, noopLogger{})

	// Первый вызов наполняет кэш
	_, err := svc.ListSports(context.Background())
	require.NoError(t, err)

	// Второй вызов не должен ходить в репозиторий
	failing := NewService(&fakeSportRepo{err: errors.New("db down")}, &fakeVenueRepo{}, &fakeCourtRepo{}, c, noopLogger{})
	resp, err := failing.ListSports(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Sports, 1)
	assert.Equal(t, "Теннис", resp.Sports[0].Name)
}

func TestService_ListSports_CacheFailureDegradesToRepo(t *testing.T) {
	c := newFakeCache()
	c.getErr = errors.New("redis timeout")
	c.setErr = errors.New("redis timeout")

	svc := NewService(&fakeSportRepo{sports: []*domain.Sport{{ID: 1, Name: "Теннис"}}}, &fakeVenueRepo{}, &fakeCourtRepo{}, c, noopLogger{})
	resp, err := svc.ListSports(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Sports, 1)
}

func TestService_ListVenues_NilCache(t *testing.T) {
	svc := NewService(&fakeSportRepo{}, &fakeVenueRepo{venues: []*domain.Venue{{ID: 1, Name: "Арена"}}}, &fakeCourtRepo{}, nil, noopLogger{})

	resp, err := svc.ListVenues(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, "Арена", resp.Venues[0].Name)
}

func TestService_GetVenue(t *testing.T) {
	venues := &fakeVenueRepo{venueByID: map[int64]*domain.Venue{
		5: {ID: 5, Name: "Арена", Location: "Москва", IsActive: true},
	}}
	svc := NewService(&fakeSportRepo{}, venues, &fakeCourtRepo{}, nil, noopLogger{})

	resp, err := svc.GetVenue(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Арена", resp.Name)
}

func TestService_GetVenue_NotFound(t *testing.T) {
	svc := NewService(&fakeSportRepo{}, &fakeVenueRepo{venueByID: map[int64]*domain.Venue{}}, &fakeCourtRepo{}, nil, noopLogger{})

	_, err := svc.GetVenue(context.Background(), 99)

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestService_ResolveCourts(t *testing.T) {
	venues := &fakeVenueRepo{venueByName: map[string]*domain.Venue{
		"Арена": {ID: 5, Name: "Арена"},
	}}
	sports := &fakeSportRepo{sportByName: map[string]*domain.Sport{
		"Теннис": {ID: 2, Name: "Теннис"},
	}}
	courts := &fakeCourtRepo{courts: []*domain.Court{
		{ID: 10, VenueID: 5, SportID: 2, Name: "Корт 1"},
		{ID: 11, VenueID: 5, SportID: 2, Name: "Корт 2"},
	}}
	svc := NewService(sports, venues, courts, nil, noopLogger{})

	resp, err := svc.ResolveCourts(context.Background(), "Арена", "Теннис")

	require.NoError(t, err)
	require.Len(t, resp.Courts, 2)
	assert.Equal(t, int64(10), resp.Courts[0].ID)
}

func TestService_ResolveCourts_UnknownNames(t *testing.T) {
	venues := &fakeVenueRepo{venueByName: map[string]*domain.Venue{
		"Арена": {ID: 5, Name: "Арена"},
	}}
	sports := &fakeSportRepo{sportByName: map[string]*domain.Sport{}}

	tests := []struct {
		name  string
		venue string
		sport string
	}{
		{name: "unknown venue", venue: "Нет такой", sport: "Теннис"},
		{name: "unknown sport", venue: "Арена", sport: "Керлинг"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(sports, venues, &fakeCourtRepo{}, nil, noopLogger{})
			resp, err := svc.ResolveCourts(context.Background(), tt.venue, tt.sport)

			// Неизвестные имена - не ошибка, а пустой список
			require.NoError(t, err)
			assert.Empty(t, resp.Courts)
			assert.NotNil(t, resp.Courts)
		})
	}
}

func TestService_ResolveCourts_StorageFailure(t *testing.T) {
	venues := &fakeVenueRepo{err: errors.New("connection refused")}
	svc := NewService(&fakeSportRepo{}, venues, &fakeCourtRepo{}, nil, noopLogger{})

	_, err := svc.ResolveCourts(context.Background(), "Арена", "Теннис")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListCourts(t *testing.T) {
	courts := &fakeCourtRepo{courts: []*domain.Court{{ID: 10, VenueID: 5, SportID: 2, Name: "Корт 1"}}}
	svc := NewService(&fakeSportRepo{}, &fakeVenueRepo{}, courts, nil, noopLogger{})

	resp, err := svc.ListCourts(context.Background(), 5, 2)

	require.NoError(t, err)
	assert.Len(t, resp.Courts, 1)
}
