package panchang

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/vaidikvista/panchang-api/internal/almanac"
)

// Outbound date layouts of the event endpoint differ between modes.
const (
	eventListDateLayout   = "02-Jan-2006" // dd-MMM-yyyy
	eventDetailDateLayout = "02/Jan/2006" // dd/MMM/yyyy
)

// EventTypes lists the selectable reminder events for a date. Errors
// degrade to an empty list.
func (s *Service) EventTypes(ctx context.Context, date time.Time) []almanac.EventTypeItem {
	params := almanac.EventParams{
		EventID:   "0",
		EventDate: date.Format(eventListDateLayout),
		SPMode:    "0",
	}
	items, err := s.client.EventTypeList(ctx, params)
	if err != nil {
		log.Printf("event types for %s: %v", params.EventDate, err)
		return []almanac.EventTypeItem{}
	}
	if items == nil {
		return []almanac.EventTypeItem{}
	}
	return items
}

// EventDetails fetches the next-occurrence record for one event. Errors and
// empty responses degrade to nil.
func (s *Service) EventDetails(ctx context.Context, eventID int, date time.Time) *almanac.EventDetails {
	params := almanac.EventParams{
		EventID:   strconv.Itoa(eventID),
		EventDate: date.Format(eventDetailDateLayout),
		SPMode:    "1",
	}
	items, err := s.client.EventDetails(ctx, params)
	if err != nil {
		log.Printf("event details for id %d: %v", eventID, err)
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}
