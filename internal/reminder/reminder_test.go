package reminder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaidikvista/panchang-api/db"
)

// mockStore is a mock implementation of Store for testing.
type mockStore struct {
	insertErr error
	inserted  []db.Reminder
}

func (m *mockStore) InsertReminder(ctx context.Context, r db.Reminder) (db.Reminder, error) {
	if m.insertErr != nil {
		return db.Reminder{}, m.insertErr
	}
	m.inserted = append(m.inserted, r)
	return r, nil
}

func validForm() Form {
	eventID := 12
	return Form{
		Name:       "Asha Rao",
		Phone:      "9876543210",
		Category:   CategoryTithi,
		EventID:    &eventID,
		EventName:  "Ekadashi",
		NextDate:   "2025-06-06",
		HinduMonth: "Jyeshtha",
		TithiName:  "Ekadashi",
		Paksha:     "Shukla",
		Frequency:  "Monthly",
		Consent:    true,
	}
}

func TestFormValidate(t *testing.T) {
	assert.NoError(t, validForm().Validate())
}

func TestFormValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Form)
		message string
	}{
		{"short name", func(f *Form) { f.Name = "A" }, "name must be at least 2 characters"},
		{"short phone", func(f *Form) { f.Phone = "12345" }, "phone number must be 10 digits"},
		{"phone with letters", func(f *Form) { f.Phone = "98765abc10" }, "phone number must be 10 digits"},
		{"eleven digit phone", func(f *Form) { f.Phone = "98765432100" }, "phone number must be 10 digits"},
		{"unknown category", func(f *Form) { f.Category = "eclipse" }, "category must be one of tithi, occasion, festival"},
		{"empty category", func(f *Form) { f.Category = "" }, "category must be one of tithi, occasion, festival"},
		{"no consent", func(f *Form) { f.Consent = false }, "consent to notifications is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			err := form.Validate()
			assert.EqualError(t, err, tc.message)
		})
	}
}

func TestSubmitStoreOnly(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store, nil)

	result := svc.Submit(context.Background(), validForm())
	assert.True(t, result.Success)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "Asha Rao", store.inserted[0].Name)
	assert.False(t, store.inserted[0].CreatedAt.IsZero())
}

func TestSubmitStoreOnlyInsertFailureFails(t *testing.T) {
	// Without a sheet the store is the sole sink: an insert failure must
	// not report success.
	store := &mockStore{insertErr: errors.New("connection refused")}
	svc := NewService(store, nil)

	result := svc.Submit(context.Background(), validForm())
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Failed to save reminder")
}

func TestFormValidateAllCategories(t *testing.T) {
	for _, category := range []string{CategoryTithi, CategoryOccasion, CategoryFestival} {
		form := validForm()
		form.Category = category
		assert.NoError(t, form.Validate())
	}
}
