package rfq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeliveryDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid ISO date",
			input: "2026-03-15",
			want:  time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace tolerated",
			input: "  2026-03-15  ",
			want:  time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "US-style date rejected on structured path",
			input:   "03/15/2026",
			wantErr: true,
		},
		{
			name:    "garbage rejected",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "empty rejected",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDeliveryDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback int
		want     int
	}{
		{name: "plain digits", input: "42", fallback: 1, want: 42},
		{name: "whitespace trimmed", input: " 7 ", fallback: 1, want: 7},
		{name: "blank degrades to fallback", input: "", fallback: 1, want: 1},
		{name: "garbage degrades to fallback", input: "abc", fallback: 1, want: 1},
		{name: "float text degrades to fallback", input: "3.5", fallback: 0, want: 0},
		{name: "negative accepted", input: "-2", fallback: 1, want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formInt(tt.input, tt.fallback))
		})
	}
}

func TestFormFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "decimal", input: "12.50", want: 12.50},
		{name: "integer text", input: "3", want: 3},
		{name: "blank degrades to zero", input: "", want: 0.0},
		{name: "garbage degrades to zero", input: "xyz", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formFloat(tt.input))
		})
	}
}

func TestFormDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "US-style date",
			input: "03/15/2026",
			want:  time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "blank degrades to fallback",
			input: "",
			want:  fallbackDeliveryDate,
		},
		{
			name:  "ISO date degrades to fallback on form path",
			input: "2026-03-15",
			want:  fallbackDeliveryDate,
		},
		{
			name:  "garbage degrades to fallback",
			input: "someday",
			want:  fallbackDeliveryDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formDate(tt.input))
		})
	}
}

func TestFallbackDeliveryDate(t *testing.T) {
	assert.Equal(t, "2099-12-31", fallbackDeliveryDate.Format(deliveryDateLayout))
}
