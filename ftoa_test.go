package printf_test

import (
	"math"
	"testing"

	"github.com/bjaus/printf"
	"github.com/stretchr/testify/assert"
)

func TestFtoa(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()
		s, ok := printf.Ftoa(1.5, false)
		assert.True(t, ok)
		assert.Equal(t, "1.50000000", s)
	})

	t.Run("with bits", func(t *testing.T) {
		t.Parallel()
		s, ok := printf.Ftoa(1.5, true)
		assert.True(t, ok)
		assert.Equal(t, "1.50000000#3FC00000", s)
	})

	t.Run("nan renders zero", func(t *testing.T) {
		t.Parallel()
		s, ok := printf.Ftoa(float32(math.NaN()), false)
		assert.False(t, ok)
		assert.Equal(t, "0.00000000", s)
	})

	t.Run("infinity renders zero", func(t *testing.T) {
		t.Parallel()
		s, ok := printf.Ftoa(float32(math.Inf(-1)), true)
		assert.False(t, ok)
		assert.Equal(t, "0.00000000#00000000", s)
	})
}

func TestDtoa(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()
		s, ok := printf.Dtoa(1.5, false)
		assert.True(t, ok)
		assert.Equal(t, "1.5000000000000000", s)
	})

	t.Run("with bits", func(t *testing.T) {
		t.Parallel()
		s, ok := printf.Dtoa(1.5, true)
		assert.True(t, ok)
		assert.Equal(t, "1.5000000000000000#3FF8000000000000", s)
	})

	t.Run("nan renders zero", func(t *testing.T) {
		t.Parallel()
		s, ok := printf.Dtoa(math.NaN(), true)
		assert.False(t, ok)
		assert.Equal(t, "0.0000000000000000#0000000000000000", s)
	})
}
