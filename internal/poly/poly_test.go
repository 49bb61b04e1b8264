package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/xsss/internal/gf256"
)

func TestEvaluateConstant(t *testing.T) {
	assert.Equal(t, byte(0x01), Evaluate([]byte{0x01}, 5))
	assert.Equal(t, byte(0x01), Evaluate([]byte{0x01}, 0))
}

func TestEvaluateMatchesDirectSum(t *testing.T) {
	coeffs := []byte{0x01, 0x02, 0x03}
	x := byte(7)
	want := gf256.Add(gf256.Add(coeffs[0], gf256.Mul(coeffs[1], gf256.Pow(x, 1))), gf256.Mul(coeffs[2], gf256.Pow(x, 2)))
	assert.Equal(t, want, Evaluate(coeffs, x))
}

func TestInterpolateRecoversConstantTerm(t *testing.T) {
	coeffs := []byte{0x41, 0x02, 0x9a}
	points := []Point{
		{X: 1, Y: Evaluate(coeffs, 1)},
		{X: 2, Y: Evaluate(coeffs, 2)},
		{X: 3, Y: Evaluate(coeffs, 3)},
	}
	secret, err := InterpolateAtZero(points)
	require.NoError(t, err)
	assert.Equal(t, coeffs[0], secret)
}

func TestInterpolateAnySubsetAgrees(t *testing.T) {
	coeffs := []byte{0x13, 0x37, 0x42, 0x99}
	var all []Point
	for x := byte(1); x <= 10; x++ {
		all = append(all, Point{X: x, Y: Evaluate(coeffs, x)})
	}
	want, err := InterpolateAtZero(all[:len(coeffs)])
	require.NoError(t, err)
	for k := len(coeffs); k <= len(all); k++ {
		got, err := InterpolateAtZero(all[:k])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestInterpolateDuplicatePoint(t *testing.T) {
	_, err := InterpolateAtZero([]Point{{X: 1, Y: 1}, {X: 1, Y: 2}})
	require.ErrorIs(t, err, ErrDuplicatePoint)
}
