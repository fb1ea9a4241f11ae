package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayKeyRoundTrip(t *testing.T) {
	assert.Equal(t, "1", DayKey(1))
	assert.Equal(t, "21", DayKey(21))
	assert.Equal(t, 21, ParseDayKey("21"))
	assert.Equal(t, 0, ParseDayKey("abc"))
}

func TestFormatTimeDisplay(t *testing.T) {
	assert.Equal(t, "0m", FormatTimeDisplay(0))
	assert.Equal(t, "45m", FormatTimeDisplay(45))
	assert.Equal(t, "1h 0m", FormatTimeDisplay(60))
	assert.Equal(t, "2h 15m", FormatTimeDisplay(135))
}
