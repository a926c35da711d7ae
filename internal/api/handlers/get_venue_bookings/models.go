package get_venue_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/internal/service/bookings/models"
)

// ParseQuery разбирает query параметры фильтрации бронирований площадки
// Поддерживаются: courtId, startDate, endDate (YYYY-MM-DD), status, includeCancelled
func ParseQuery(query url.Values, venueID, userID int64) (*models.GetVenueBookingsRequest, error) {
	req := &models.GetVenueBookingsRequest{
		UserID:  userID,
		VenueID: venueID,
	}

	if courtIDStr := query.Get("courtId"); courtIDStr != "" {
		courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CourtID = &courtID
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if includeStr := query.Get("includeCancelled"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
