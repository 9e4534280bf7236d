package process_message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocamarg0/trim-squire/pkg/types"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestParseDate(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2024, time.December, 20, 15, 0, 0, 0, loc)

	tests := []struct {
		name    string
		message string
		want    time.Time
		wantErr error
	}{
		{name: "hoje", message: "hoje", want: time.Date(2024, 12, 20, 0, 0, 0, 0, loc)},
		{name: "hoje inside sentence", message: "Pode ser hoje?", want: time.Date(2024, 12, 20, 0, 0, 0, 0, loc)},
		{name: "today", message: "today", want: time.Date(2024, 12, 20, 0, 0, 0, 0, loc)},
		{name: "amanhã", message: "amanhã", want: time.Date(2024, 12, 21, 0, 0, 0, 0, loc)},
		{name: "amanha without accent", message: "Amanha", want: time.Date(2024, 12, 21, 0, 0, 0, 0, loc)},
		{name: "tomorrow", message: "tomorrow", want: time.Date(2024, 12, 21, 0, 0, 0, 0, loc)},
		{name: "dd/mm/yyyy", message: "25/12/2024", want: time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},
		{name: "d/m/yyyy", message: "5/1/2025", want: time.Date(2025, 1, 5, 0, 0, 0, 0, loc)},
		{name: "iso", message: "2025-01-10", want: time.Date(2025, 1, 10, 0, 0, 0, 0, loc)},
		{name: "english month", message: "January 2, 2025", want: time.Date(2025, 1, 2, 0, 0, 0, 0, loc)},
		{name: "surrounding spaces", message: "  25/12/2024 ", want: time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},
		{name: "yesterday", message: "19/12/2024", wantErr: errDateInPast},
		{name: "garbage", message: "sexta que vem", wantErr: errDateFormat},
		{name: "impossible day", message: "31/02/2025", wantErr: errDateFormat},
		{name: "empty", message: "", wantErr: errDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.message, now, loc)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseDate_UsesShopTimezone(t *testing.T) {
	loc := saoPaulo(t)
	// 01:00 UTC on the 21st is still the 20th in São Paulo
	now := time.Date(2024, time.December, 21, 1, 0, 0, 0, time.UTC)

	got, err := parseDate("hoje", now, loc)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Day())

	got, err = parseDate("20/12/2024", now, loc)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Day())
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		message string
		want    types.TimeString
		wantErr error
	}{
		{message: "14:30", want: "14:30"},
		{message: "14h30", want: "14:30"},
		{message: "14H30", want: "14:30"},
		{message: "1430", want: "14:30"},
		{message: " 14 : 30 ", want: "14:30"},
		{message: "9:05", want: "09:05"},
		{message: "0:00", want: "00:00"},
		{message: "23:59", want: "23:59"},
		{message: "25:00", wantErr: errTimeRange},
		{message: "14:75", wantErr: errTimeRange},
		{message: "-1:00", wantErr: errTimeRange},
		{message: "14", wantErr: errTimeFormat},
		{message: "14h", wantErr: errTimeFormat},
		{message: "14:30:00", wantErr: errTimeFormat},
		{message: "ab:cd", wantErr: errTimeFormat},
		{message: "", wantErr: errTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, err := parseClock(tt.message)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectOption(t *testing.T) {
	names := []string{"Barba", "Luzes", "Pezinho 5 estrelas"}

	tests := []struct {
		message string
		want    int
		ok      bool
	}{
		{message: "1", want: 0, ok: true},
		{message: " 3 ", want: 2, ok: true},
		{message: "luz", want: 1, ok: true},
		{message: "BARBA", want: 0, ok: true},
		{message: "0", ok: false},
		{message: "-1", ok: false},
		{message: "4", ok: false},
		// out-of-range number still tries the names
		{message: "5", want: 2, ok: true},
		{message: "tintura", ok: false},
		{message: "", ok: false},
		{message: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, ok := selectOption(tt.message, names)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	assert.ErrorIs(t, validateRequest(nil), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{BarbershopID: "s", ClientID: "c"}), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{ChatID: "c", ClientID: "c"}), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{ChatID: "c", BarbershopID: "s"}), ErrInvalidInput)
	assert.NoError(t, validateRequest(&Request{ChatID: "c", BarbershopID: "s", ClientID: "u"}))
}
