package daterule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expectError bool
		expected    time.Time
	}{
		{
			description: "plain date",
			input:       "2025-06-04",
			expected:    date(2025, time.June, 4),
		},
		{
			description: "leap day",
			input:       "2024-02-29",
			expected:    date(2024, time.February, 29),
		},
		{
			description: "not a date",
			input:       "pooja",
			expectError: true,
		},
		{
			description: "wrong shape",
			input:       "04-06-2025",
			expectError: true,
		},
		{
			description: "empty",
			input:       "",
			expectError: true,
		},
		{
			description: "timestamp instead of date",
			input:       "2025-06-04T00:00:00Z",
			expectError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			got, err := Normalize(test.input)
			if test.expectError {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(test.expected), "got %v want %v", got, test.expected)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestToday(t *testing.T) {
	// A late evening in Kolkata is already the next day in IST but the UTC
	// calendar date is what counts.
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	now := time.Date(2025, time.June, 2, 1, 30, 0, 0, kolkata) // 2025-06-01 20:00 UTC
	assert.True(t, Today(now).Equal(date(2025, time.June, 1)))

	noon := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, Today(noon).Equal(date(2025, time.June, 1)))
}

func TestRequiredBookingDate(t *testing.T) {
	tests := []struct {
		description string
		poojaDate   time.Time
		expected    time.Time
	}{
		{
			description: "mid month",
			poojaDate:   date(2025, time.June, 20),
			expected:    date(2025, time.June, 17),
		},
		{
			description: "crosses month boundary",
			poojaDate:   date(2025, time.July, 2),
			expected:    date(2025, time.June, 29),
		},
		{
			description: "crosses year boundary",
			poojaDate:   date(2024, time.January, 2),
			expected:    date(2023, time.December, 30),
		},
		{
			description: "crosses leap february",
			poojaDate:   date(2024, time.March, 2),
			expected:    date(2024, time.February, 28),
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			got := RequiredBookingDate(test.poojaDate)
			assert.True(t, got.Equal(test.expected), "got %v want %v", got, test.expected)
		})
	}
}

func TestIsAdmissible(t *testing.T) {
	poojaDate := date(2025, time.June, 4)

	admissible := date(2025, time.June, 1)
	assert.True(t, IsAdmissible(poojaDate, admissible))

	// Any time of day on the required date qualifies.
	assert.True(t, IsAdmissible(poojaDate, admissible.Add(23*time.Hour+59*time.Minute)))

	// Every other day is rejected, before and after the mark.
	for _, offset := range []int{-4, -2, -1, 0, 1, 30} {
		now := poojaDate.AddDate(0, 0, offset)
		assert.False(t, IsAdmissible(poojaDate, now), "offset %d days from pooja date", offset)
	}
}
