package sheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/vaidikvista/panchang-api/db"
)

// Appender appends reminder rows to one tab of a Google spreadsheet.
type Appender struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	tab           string
}

// New builds an Appender authenticated with a service-account credentials
// file. The service account needs editor access to the sheet.
func New(ctx context.Context, credentialsFile, spreadsheetID, tab string) (*Appender, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Appender{svc: svc, spreadsheetID: spreadsheetID, tab: tab}, nil
}

// AppendReminder writes one row after the last populated row of the tab.
// Column order is fixed: timestamp, name, phone, category, event id, event
// name, next date, hindu month, tithi name, paksha, frequency, consent.
// No retry; duplicate submissions produce duplicate rows.
func (a *Appender) AppendReminder(ctx context.Context, r db.Reminder) error {
	eventID := ""
	if r.EventID != nil {
		eventID = strconv.Itoa(*r.EventID)
	}

	row := []interface{}{
		r.CreatedAt.Format(time.RFC3339),
		r.Name,
		r.Phone,
		r.Category,
		eventID,
		r.EventName,
		r.NextDate,
		r.HinduMonth,
		r.TithiName,
		r.Paksha,
		r.Frequency,
		strconv.FormatBool(r.Consent),
	}

	_, err := a.svc.Spreadsheets.Values.
		Append(a.spreadsheetID, a.tab, &sheetsapi.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

// ClassifyError maps an append failure onto an operator-facing message.
func ClassifyError(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 403:
			return "Permission denied. Ensure the service account email has editor access to the sheet."
		case 404:
			return "Sheet or tab not found. Verify the spreadsheet id and tab name."
		case 400:
			return "Invalid argument provided to the Sheets API. Check data format or sheet range."
		}
	}
	return fmt.Sprintf("Failed to save reminder: %v", err)
}
