package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingNumber(t *testing.T) {
	number := GenerateBookingNumber()
	assert.Regexp(t, regexp.MustCompile(`^BK\d{13}$`), number)
}

func TestGenerateTrackingNumber(t *testing.T) {
	stamp := time.Date(2024, 12, 12, 17, 45, 0, 0, time.UTC)
	number := GenerateTrackingNumber(stamp)

	require.Regexp(t, regexp.MustCompile(`^CTR-\d{8}-[A-Z0-9]{5}$`), number)
	assert.Equal(t, "CTR-20241212-", number[:13])
}

func TestGenerateTrackingNumberSuffixVaries(t *testing.T) {
	stamp := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[GenerateTrackingNumber(stamp)] = true
	}
	assert.Greater(t, len(seen), 1, "suffix must be random")
}

func TestValidateDateRange(t *testing.T) {
	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)
	nextWeek := today.AddDate(0, 0, 7)
	yesterday := today.AddDate(0, 0, -1)

	t.Run("valid future range", func(t *testing.T) {
		assert.NoError(t, ValidateDateRange(tomorrow, nextWeek))
	})

	t.Run("same day trip starting today", func(t *testing.T) {
		assert.NoError(t, ValidateDateRange(today, today))
	})

	t.Run("start in the past", func(t *testing.T) {
		err := ValidateDateRange(yesterday, nextWeek)
		require.Error(t, err)
		assert.Equal(t, "start date cannot be in the past", err.Error())
	})

	t.Run("end before start", func(t *testing.T) {
		err := ValidateDateRange(nextWeek, tomorrow)
		require.Error(t, err)
		assert.Equal(t, "end date cannot be before start date", err.Error())
	})
}
