package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SportHub-BookingService/internal/infra/cache"
	catalogRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SportHub-BookingService/internal/service/catalog/models"
)

// Ключи кэша справочных данных
const (
	cacheKeySports = "catalog:sports"
	cacheKeyVenues = "catalog:venues"
)

// Service сервис справочных данных: виды спорта, площадки, корты
type Service struct {
	sportRepo SportRepository
	venueRepo VenueRepository
	courtRepo CourtRepository
	cache     CatalogCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса справочных данных
func NewService(
	sportRepo SportRepository,
	venueRepo VenueRepository,
	courtRepo CourtRepository,
	catalogCache CatalogCache,
	logger Logger,
) *Service {
	return &Service{
		sportRepo: sportRepo,
		venueRepo: venueRepo,
		courtRepo: courtRepo,
		cache:     catalogCache,
		logger:    logger,
	}
}

// ListSports возвращает список активных видов спорта
// Читает через кэш: промах кэша прозрачно уходит в БД
func (s *Service) ListSports(ctx context.Context) (*models.SportListResponse, error) {
	var cached models.SportListResponse
	if err := s.getCached(ctx, cacheKeySports, &cached); err == nil {
		s.logger.Info("ListSports: served %d sports from cache", len(cached.Sports))
		return &cached, nil
	}

	sports, err := s.sportRepo.ListActiveSports(ctx)
	if err != nil {
		s.logger.Error("ListSports: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSports - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainSportList(sports)
	s.setCached(ctx, cacheKeySports, resp)

	s.logger.Info("ListSports: successfully fetched %d sports", len(resp.Sports))
	return resp, nil
}

// ListVenues возвращает список активных площадок
// Читает через кэш: промах кэша прозрачно уходит в БД
func (s *Service) ListVenues(ctx context.Context) (*models.VenueListResponse, error) {
	var cached models.VenueListResponse
	if err := s.getCached(ctx, cacheKeyVenues, &cached); err == nil {
		s.logger.Info("ListVenues: served %d venues from cache", len(cached.Venues))
		return &cached, nil
	}

	venues, err := s.venueRepo.ListActiveVenues(ctx)
	if err != nil {
		s.logger.Error("ListVenues: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListVenues - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainVenueList(venues)
	s.setCached(ctx, cacheKeyVenues, resp)

	s.logger.Info("ListVenues: successfully fetched %d venues", len(resp.Venues))
	return resp, nil
}

// GetVenue возвращает площадку по ID
func (s *Service) GetVenue(ctx context.Context, id int64) (*models.VenueResponse, error) {
	s.logger.Info("GetVenue: fetching venue id=%d", id)

	venue, err := s.venueRepo.GetVenueByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVenueNotFound) {
			s.logger.Warn("GetVenue: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetVenue: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetVenue - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVenue(venue), nil
}

// ResolveCourts находит активные корты площадки для вида спорта по их именам.
// Отсутствие площадки или вида спорта с таким именем не считается ошибкой -
// возвращается пустой список, как и при отсутствии подходящих кортов.
// Ошибкой считается только сбой хранилища.
func (s *Service) ResolveCourts(ctx context.Context, venueName, sportName string) (*models.CourtListResponse, error) {
	s.logger.Info("ResolveCourts: resolving courts for venue=%q sport=%q", venueName, sportName)

	venue, err := s.venueRepo.GetVenueByName(ctx, venueName)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVenueNotFound) {
			s.logger.Warn("ResolveCourts: venue %q not found", venueName)
			return models.FromDomainCourtList(nil), nil
		}
		s.logger.Error("ResolveCourts: failed to get venue %q: %v", venueName, err)
		return nil, fmt.Errorf("%w: ResolveCourts - failed to get venue: %v", ErrInternal, err)
	}

	sport, err := s.sportRepo.GetSportByName(ctx, sportName)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSportNotFound) {
			s.logger.Warn("ResolveCourts: sport %q not found", sportName)
			return models.FromDomainCourtList(nil), nil
		}
		s.logger.Error("ResolveCourts: failed to get sport %q: %v", sportName, err)
		return nil, fmt.Errorf("%w: ResolveCourts - failed to get sport: %v", ErrInternal, err)
	}

	courts, err := s.courtRepo.ListByVenueAndSport(ctx, venue.ID, sport.ID)
	if err != nil {
		s.logger.Error("ResolveCourts: failed to list courts for venue=%d sport=%d: %v", venue.ID, sport.ID, err)
		return nil, fmt.Errorf("%w: ResolveCourts - failed to list courts: %v", ErrInternal, err)
	}

	s.logger.Info("ResolveCourts: resolved %d courts for venue=%d sport=%d", len(courts), venue.ID, sport.ID)
	return models.FromDomainCourtList(courts), nil
}

// ListCourts возвращает активные корты площадки для вида спорта по ID
func (s *Service) ListCourts(ctx context.Context, venueID, sportID int64) (*models.CourtListResponse, error) {
	s.logger.Info("ListCourts: fetching courts for venue=%d sport=%d", venueID, sportID)

	courts, err := s.courtRepo.ListByVenueAndSport(ctx, venueID, sportID)
	if err != nil {
		s.logger.Error("ListCourts: repository error for venue=%d sport=%d: %v", venueID, sportID, err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourtList(courts), nil
}

// Вспомогательные методы

// getCached читает значение из кэша, ошибки кэша деградируют в промах
func (s *Service) getCached(ctx context.Context, key string, value any) error {
	if s.cache == nil {
		return cache.ErrCacheMiss
	}

	err := s.cache.GetJSON(ctx, key, value)
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("getCached: cache read failed for key=%s: %v", key, err)
	}
	return err
}

// setCached сохраняет значение в кэш, ошибки кэша не прерывают запрос
func (s *Service) setCached(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SetJSON(ctx, key, value); err != nil {
		s.logger.Warn("setCached: cache write failed for key=%s: %v", key, err)
	}
}
