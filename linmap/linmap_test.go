package linmap_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linmap-go/errcode"
	"linmap-go/linmap"
	"linmap-go/x/mathx"
)

func TestMapWorkedExample(t *testing.T) {
	// 5 + (3*26)//9 == 5 + 8
	got, err := linmap.Map(3, 0, 9, 5, 31)
	require.NoError(t, err)
	assert.Equal(t, 13, got)
}

func TestMapClampsBelowInputMinimum(t *testing.T) {
	for x := -50; x < 5; x++ {
		got, err := linmap.Map(x, 5, 32, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, got, "x=%d", x)
	}
	got, err := linmap.Map(-1e9, -3.5, 2.0, 7.0, 9.0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
}

func TestMapMatchesFloorFormula(t *testing.T) {
	type C struct{ inMin, inMax, outMin, outMax int }
	for _, c := range []C{
		{0, 9, 5, 31},
		{5, 32, 0, 10},
		{0, 127, 0, 15},
		{-10, 10, 100, -100}, // descending output
		{10, -10, 0, 50},     // descending input
		{-7, 3, -20, -1},
	} {
		for x := c.inMin - 5; x <= c.inMax+20; x++ {
			got, err := linmap.Map(x, c.inMin, c.inMax, c.outMin, c.outMax)
			require.NoError(t, err)
			want := c.outMin
			if x >= c.inMin {
				want = mathx.FloorDiv((x-c.inMin)*(c.outMax-c.outMin), c.inMax-c.inMin) + c.outMin
			}
			require.Equal(t, want, got, "x=%d ranges=%+v", x, c)
		}
	}
}

func TestMapFloorsNegativeQuotients(t *testing.T) {
	// (1-0)*(0-10)//3 == -4, not the truncated -3.
	got, err := linmap.Map(1, 0, 3, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	f, err := linmap.Map(1.0, 0, 3, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, f)
}

func TestMapEndpointsExact(t *testing.T) {
	type C struct{ inMin, inMax, outMin, outMax int64 }
	for _, c := range []C{
		{0, 9, 5, 31},
		{5, 32, 0, 10},
		{-32768, 32767, 0, 16383},
		{3, 4, 1000, -1000},
	} {
		lo, err := linmap.Map(c.inMin, c.inMin, c.inMax, c.outMin, c.outMax)
		require.NoError(t, err)
		hi, err := linmap.Map(c.inMax, c.inMin, c.inMax, c.outMin, c.outMax)
		require.NoError(t, err)
		assert.Equal(t, c.outMin, lo)
		assert.Equal(t, c.outMax, hi)
	}
}

func TestMapMonotonic(t *testing.T) {
	type C struct{ inMin, inMax, outMin, outMax int }
	for _, c := range []C{
		{5, 32, 0, 10},
		{-7, 3, -20, -1},
		{-100, -3, 0, 7},   // negative input range, slope below one
		{0, 7, -1000, 999}, // slope above one
		{-32768, 32767, 0, 16383},
	} {
		m, err := linmap.New(linmap.Range[int]{Min: c.inMin, Max: c.inMax}, linmap.Range[int]{Min: c.outMin, Max: c.outMax})
		require.NoError(t, err)
		prev := math.MinInt
		for x := c.inMin - 10; x < c.inMax+100; x++ {
			y, err := m.Map(x)
			require.NoError(t, err)
			require.GreaterOrEqual(t, y, prev, "x=%d ranges=%+v", x, c)
			prev = y
		}
	}
}

func TestMapExtrapolatesAboveInputMaximum(t *testing.T) {
	got, err := linmap.Map(18, 0, 9, 5, 31)
	require.NoError(t, err)
	assert.Equal(t, 57, got)
}

func TestMapZeroWidthInputRange(t *testing.T) {
	_, err := linmap.Map(4, 7, 7, 0, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcode.InvalidRange))

	_, err = linmap.Map(0.5, 1.0, 1.0, 0, 1)
	assert.Equal(t, errcode.InvalidRange, errcode.Of(err))

	_, err = linmap.New(linmap.Range[uint8]{Min: 3, Max: 3}, linmap.Range[uint8]{Min: 0, Max: 1})
	assert.ErrorIs(t, err, errcode.InvalidRange)
}

func TestMapNarrowIntegersDoNotOverflowIntermediate(t *testing.T) {
	// (200-0)*(250-0) overflows uint8 and int16 if computed in T.
	got, err := linmap.Map[uint8](200, 0, 255, 0, 250)
	require.NoError(t, err)
	assert.Equal(t, uint8(196), got)

	i, err := linmap.Map[int16](30000, -32768, 32767, -32768, 32767)
	require.NoError(t, err)
	assert.Equal(t, int16(30000), i)

	u, err := linmap.Map[uint64](math.MaxUint64, 0, math.MaxUint64, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), u)

	// Beyond the int64 fast path the result is still exact.
	big, err := linmap.Map[int64](1<<40, 0, 1<<41, -(1 << 45), 1<<45)
	require.NoError(t, err)
	assert.Equal(t, int64(0), big)
	big, err = linmap.Map[int64](math.MaxInt64, math.MinInt64, math.MaxInt64, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), big)
}

func TestMapResultOverflow(t *testing.T) {
	_, err := linmap.Map[uint8](255, 0, 1, 0, 2)
	require.Error(t, err)
	assert.Equal(t, errcode.Overflow, errcode.Of(err))

	// Descending output below zero cannot be represented unsigned.
	_, err = linmap.Map[uint](9, 0, 9, 5, 0)
	require.NoError(t, err)
	_, err = linmap.Map[uint](10, 0, 9, 5, 0)
	assert.ErrorIs(t, err, errcode.Overflow)
	_, err = linmap.Map[int8](127, 0, 1, 0, 1)
	require.NoError(t, err)
	_, err = linmap.Map[int8](127, 0, 1, 0, 2)
	assert.ErrorIs(t, err, errcode.Overflow)
}

func TestMapFloat32(t *testing.T) {
	got, err := linmap.Map[float32](0.5, 0, 1, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, float32(5), got)

	got, err = linmap.Map[float32](0.55, 0, 1, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, float32(5), got)
}
