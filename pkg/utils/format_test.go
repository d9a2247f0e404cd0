package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatIndianCurrency(t *testing.T) {
	assert.Equal(t, "₹500.00", FormatIndianCurrency(500))
	assert.Equal(t, "₹1,000.00", FormatIndianCurrency(1000))
	assert.Equal(t, "₹1,00,000.00", FormatIndianCurrency(100000))
	assert.Equal(t, "₹22,15,750.50", FormatIndianCurrency(2215750.50))
	assert.Equal(t, "-₹3,750.00", FormatIndianCurrency(-3750))
}

func TestFormatPnL(t *testing.T) {
	assert.Equal(t, "+₹7,500.00", FormatPnL(7500))
	assert.Equal(t, "-₹400.00", FormatPnL(-400))
	assert.Equal(t, "₹0.00", FormatPnL(0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+2.50%", FormatPercent(2.5))
	assert.Equal(t, "-1.20%", FormatPercent(-1.2))
	assert.Equal(t, "0.00%", FormatPercent(0))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "75", FormatQuantity(75))
	assert.Equal(t, "1,50,000", FormatQuantity(150000))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05 Jun 2024", FormatDate(time.Date(2024, 6, 5, 9, 30, 0, 0, time.Local)))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "breakout", TruncateString("breakout", 15))
	assert.Equal(t, "mean-rever...", TruncateString("mean-reversion-swing", 13))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}
