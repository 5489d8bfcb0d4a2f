package reminder

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"github.com/vaidikvista/panchang-api/db"
	"github.com/vaidikvista/panchang-api/internal/sheets"
)

// Categories a reminder can be filed under.
const (
	CategoryTithi    = "tithi"
	CategoryOccasion = "occasion"
	CategoryFestival = "festival"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Form is a reminder submission. The event fields are denormalized copies
// taken from the selected event at submission time.
type Form struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Category   string `json:"category"`
	EventID    *int   `json:"event_id,omitempty"`
	EventName  string `json:"event_name,omitempty"`
	NextDate   string `json:"next_date,omitempty"`
	HinduMonth string `json:"hindu_month,omitempty"`
	TithiName  string `json:"tithi_name,omitempty"`
	Paksha     string `json:"paksha,omitempty"`
	Frequency  string `json:"frequency,omitempty"`
	Consent    bool   `json:"consent"`
}

// Validate checks the form before submission.
func (f Form) Validate() error {
	if len(f.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}
	if !phonePattern.MatchString(f.Phone) {
		return errors.New("phone number must be 10 digits")
	}
	switch f.Category {
	case CategoryTithi, CategoryOccasion, CategoryFestival:
	default:
		return errors.New("category must be one of tithi, occasion, festival")
	}
	if !f.Consent {
		return errors.New("consent to notifications is required")
	}
	return nil
}

// Result is the submission outcome reported to the caller.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Store persists accepted reminders.
type Store interface {
	InsertReminder(ctx context.Context, r db.Reminder) (db.Reminder, error)
}

// Service persists reminders and appends them to the configured sheet.
type Service struct {
	store    Store
	appender *sheets.Appender // nil when no sheet is configured
}

// NewService builds a Service. appender may be nil; submissions are then
// stored only.
func NewService(store Store, appender *sheets.Appender) *Service {
	return &Service{store: store, appender: appender}
}

// Submit stores the reminder and appends it to the sheet. The caller is
// expected to have validated the form. With a sheet configured the store
// insert is best-effort and the append is the outward contract; without one
// the store is the sole sink, so an insert failure fails the submission.
func (s *Service) Submit(ctx context.Context, f Form) Result {
	row := db.Reminder{
		CreatedAt:  time.Now().UTC(),
		Name:       f.Name,
		Phone:      f.Phone,
		Category:   f.Category,
		EventID:    f.EventID,
		EventName:  f.EventName,
		NextDate:   f.NextDate,
		HinduMonth: f.HinduMonth,
		TithiName:  f.TithiName,
		Paksha:     f.Paksha,
		Frequency:  f.Frequency,
		Consent:    f.Consent,
	}

	stored, err := s.store.InsertReminder(ctx, row)
	if err != nil {
		log.Printf("reminder submit: store insert failed: %v", err)
		if s.appender == nil {
			return Result{Success: false, Message: "Failed to save reminder. Please try again."}
		}
		stored = row
	}

	if s.appender == nil {
		log.Printf("reminder submit: no sheet configured, stored only")
		return Result{Success: true, Message: "Reminder saved."}
	}

	if err := s.appender.AppendReminder(ctx, stored); err != nil {
		log.Printf("reminder submit: sheet append failed: %v", err)
		return Result{Success: false, Message: sheets.ClassifyError(err)}
	}
	return Result{Success: true, Message: "Reminder saved successfully to Google Sheet."}
}
