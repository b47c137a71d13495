package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadiusRoundTrip(t *testing.T) {
	// Integer pixel values survive the px -> rem -> px cycle exactly; the
	// factor is a power of two so no precision is lost.
	for px := 0; px <= 32; px++ {
		rem := RadiusToRem(float64(px))
		assert.Equal(t, float64(px), RadiusToPx(rem), "px=%d", px)
	}
}

func TestRadiusConversion(t *testing.T) {
	assert.Equal(t, 0.5, RadiusToRem(8))
	assert.Equal(t, 8.0, RadiusToPx(0.5))
	assert.Equal(t, 0.0, RadiusToRem(0))
	assert.Equal(t, 1.0, RadiusToRem(16))
}
