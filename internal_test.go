package printf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFloat(t *testing.T) {
	t.Parallel()

	fromBits := math.Float64frombits

	tests := []struct {
		name string
		v    float64
		want floatClass
	}{
		{"normal", 1.5, floatNormal},
		{"zero", 0.0, floatNormal},
		{"positive infinity", math.Inf(1), floatPosInf},
		{"negative infinity", math.Inf(-1), floatNegInf},
		{"quiet nan", fromBits(0x7FF8000000000001), floatPosQNaN},
		{"negative quiet nan with payload", fromBits(0xFFF8000000000001), floatNegQNaN},
		{"signalling nan", fromBits(0x7FF0000000000001), floatPosSNaN},
		{"negative signalling nan", fromBits(0xFFF0000000000001), floatNegSNaN},
		{"indefinite", fromBits(0xFFF8000000000000), floatIndNaN},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classifyFloat(tt.v))
		})
	}
}

func TestFloatExponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{5, 0},
		{9.99, 0},
		{10, 1},
		{1234.5, 3},
		{0.5, -1},
		{0.00123, -3},
		{-1234.5, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, floatExponent(tt.v), "%v", tt.v)
	}
}

func TestExpAppendExponent(t *testing.T) {
	t.Parallel()

	var buf [64]byte
	end := expAppendExponent(buf[:], 0, 3)
	assert.Equal(t, "e+03", string(buf[:end]))

	end = expAppendExponent(buf[:], 0, -7)
	assert.Equal(t, "e-07", string(buf[:end]))

	end = expAppendExponent(buf[:], 0, 123)
	assert.Equal(t, "e+123", string(buf[:end]))

	end = expAppendExponent(buf[:], 0, -308)
	assert.Equal(t, "e-308", string(buf[:end]))
}

func TestFindHandler(t *testing.T) {
	t.Parallel()

	for _, c := range []byte("bodiuxXpefgvqmcsB") {
		h := findHandler(c)
		require.NotNil(t, h, "%c", c)
		assert.Equal(t, c, h.specChar)
	}

	assert.Nil(t, findHandler('z'))
	assert.Nil(t, findHandler(0))
	assert.Nil(t, findHandler('%'))
}

func TestReceiverModes(t *testing.T) {
	t.Parallel()

	t.Run("counting", func(t *testing.T) {
		t.Parallel()
		r := newCountReceiver()
		r.receiveString("hello")
		assert.Equal(t, 5, r.numReceived())
	})

	t.Run("growable", func(t *testing.T) {
		t.Parallel()
		buf := make([]byte, 0, 4)
		r := newBufReceiver(&buf)
		r.receiveString("hello world")
		assert.Equal(t, "hello world", string(buf))
		assert.Equal(t, 11, r.numReceived())
	})

	t.Run("fixed counts past the region", func(t *testing.T) {
		t.Parallel()
		dst := make([]byte, 3)
		r := newFixedReceiver(dst)
		r.receiveString("hello")
		assert.Equal(t, 5, r.numReceived())
		assert.Equal(t, "hel", string(dst))
	})
}

func TestAppendGrouped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		digits    string
		fl        specFlags
		groupSize int
		want      string
	}{
		{"plain", "12345678", 0, 4, "12345678"},
		{"underscore even groups", "11111111", flagDecorative, 4, "1111_1111"},
		{"underscore partial lead group", "12345", flagDecorative, 4, "1_2345"},
		{"underscore exact group", "1234", flagDecorative, 4, "1234"},
		{"underscore wide groups", "123456789A", flagDecorative, 8, "12_3456789A"},
		{"comma thousands", "1234567", flagDecorativeAlt, 4, "1,234,567"},
		{"comma short run", "123", flagDecorativeAlt, 4, "123"},
		{"single digit", "7", flagDecorative, 4, "7"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := appendGrouped(nil, []byte(tt.digits), tt.fl, tt.groupSize)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestUint512Arithmetic(t *testing.T) {
	t.Parallel()

	t.Run("neg of one is all ones", func(t *testing.T) {
		t.Parallel()
		want := Uint512{}
		for i := range want {
			want[i] = math.MaxUint64
		}
		assert.Equal(t, want, U512(1).neg())
	})

	t.Run("neg of zero is zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Uint512{}, U512(0).neg())
		assert.True(t, U512(0).isZero())
	})

	t.Run("divmod carries across limbs", func(t *testing.T) {
		t.Parallel()
		// 2^64 = 18446744073709551616; divided by 10 that is
		// 1844674407370955161 remainder 6.
		v := Uint512{0, 1}
		q, rem := v.divmod(10)
		assert.Equal(t, uint64(6), rem)
		assert.Equal(t, U512(1844674407370955161), q)
	})

	t.Run("maskBits truncates high limbs", func(t *testing.T) {
		t.Parallel()
		v := Uint512{1, 2, 3, 4}
		assert.Equal(t, Uint512{1, 2}, v.maskBits(128))
	})

	t.Run("bit indexes across limbs", func(t *testing.T) {
		t.Parallel()
		v := Uint512{0, 1}
		assert.True(t, v.bit(64))
		assert.False(t, v.bit(63))
		assert.True(t, Uint512{0, 0, 0, 0, 0, 0, 0, 1 << 63}.bit(511))
	})

	t.Run("mulAdd builds decimal values", func(t *testing.T) {
		t.Parallel()
		v := U512(0)
		for _, d := range []uint64{1, 2, 3} {
			v = v.mulAdd(10, d)
		}
		assert.Equal(t, U512(123), v)
	})
}

func TestDefaultPrecision(t *testing.T) {
	prev := DefaultPrecision()
	t.Cleanup(func() { SetDefaultPrecision(prev) })

	assert.Equal(t, 4, DefaultPrecision())

	SetDefaultPrecision(2)
	assert.Equal(t, "1.50", Sprintf("%f", 1.5))
	assert.Equal(t, "1.50e+01", Sprintf("%e", 15.0))

	SetDefaultPrecision(-1)
	assert.Equal(t, 2, DefaultPrecision(), "negative values are ignored")
}

func TestProcessTerminatesWithNUL(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 0, 8)
	r := newBufReceiver(&buf)
	process(r, "ab%d", []any{1})
	require.Equal(t, 4, r.numReceived())
	assert.Equal(t, []byte{'a', 'b', '1', 0}, buf)
}
