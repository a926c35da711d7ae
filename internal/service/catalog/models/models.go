package models

import (
	"time"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
)

// Response модели

// SportResponse ответ с данными вида спорта
type SportResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// SportListResponse ответ со списком видов спорта
type SportListResponse struct {
	Sports []SportResponse `json:"sports"`
}

// VenueResponse ответ с данными площадки
type VenueResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	Location      *string `json:"location,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	OpeningHours  *string `json:"openingHours,omitempty"`
	Capacity      *int    `json:"capacity,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID      int64  `json:"id"`
	VenueID int64  `json:"venueId"`
	SportID int64  `json:"sportId"`
	Name    string `json:"name"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// Методы конвертации

// FromDomainSport конвертирует domain модель в DTO
func FromDomainSport(s *domain.Sport) *SportResponse {
	if s == nil {
		return nil
	}

	return &SportResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

// FromDomainSportList конвертирует список domain моделей в DTO
func FromDomainSportList(sports []*domain.Sport) *SportListResponse {
	resp := &SportListResponse{
		Sports: make([]SportResponse, 0, len(sports)),
	}

	for _, sport := range sports {
		if sportResp := FromDomainSport(sport); sportResp != nil {
			resp.Sports = append(resp.Sports, *sportResp)
		}
	}

	return resp
}

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	return &VenueResponse{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		Location:      &v.Location,
		ImageURL:      v.ImageURL,
		OpeningHours:  v.OpeningHours,
		Capacity:      v.Capacity,
		ContactNumber: v.ContactNumber,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// FromDomainVenueList конвертирует список domain моделей в DTO
func FromDomainVenueList(venues []*domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: make([]VenueResponse, 0, len(venues)),
	}

	for _, venue := range venues {
		if venueResp := FromDomainVenue(venue); venueResp != nil {
			resp.Venues = append(resp.Venues, *venueResp)
		}
	}

	return resp
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}

	return &CourtResponse{
		ID:      c.ID,
		VenueID: c.VenueID,
		SportID: c.SportID,
		Name:    c.Name,
	}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
	}

	for _, court := range courts {
		if courtResp := FromDomainCourt(court); courtResp != nil {
			resp.Courts = append(resp.Courts, *courtResp)
		}
	}

	return resp
}
