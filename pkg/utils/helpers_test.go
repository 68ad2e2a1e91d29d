package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 33.3, Round(100.0/3, 1))
	assert.Equal(t, 5.66, Round(5.656854, 2))
	assert.Equal(t, 3.0, Round(2.5, 0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(5, 0))
	assert.Equal(t, 66.7, Percent(2, 3))
	assert.Equal(t, 100.0, Percent(7, 7))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, ClampInt(-5, 1, 10))
	assert.Equal(t, 10, ClampInt(50, 1, 10))
	assert.Equal(t, 4, ClampInt(4, 1, 10))
}

func TestMinInt(t *testing.T) {
	assert.Equal(t, 2, MinInt(2, 3))
	assert.Equal(t, -1, MinInt(4, -1))
}
