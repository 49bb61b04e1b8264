package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommutative(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			assert.Equal(t, Add(byte(a), byte(b)), Add(byte(b), byte(a)))
		}
	}
}

func TestMulCommutativeAndDistributive(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			assert.Equal(t, Mul(byte(a), byte(b)), Mul(byte(b), byte(a)))
		}
	}
	for a := 1; a < 256; a += 17 {
		for b := 1; b < 256; b += 19 {
			for c := 1; c < 256; c += 23 {
				lhs := Mul(byte(a), Add(byte(b), byte(c)))
				rhs := Add(Mul(byte(a), byte(b)), Mul(byte(a), byte(c)))
				assert.Equal(t, rhs, lhs)
			}
		}
	}
}

func TestInvIsMultiplicativeInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv, err := Inv(byte(a))
		require.NoError(t, err)
		assert.Equal(t, byte(1), Mul(byte(a), inv))
	}
}

func TestInvZeroFails(t *testing.T) {
	_, err := Inv(0)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestTableAndBitSerialAgree(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			require.Equalf(t, MulSlow(byte(a), byte(b)), Mul(byte(a), byte(b)), "a=%d b=%d", a, b)
		}
	}
}

func TestPow(t *testing.T) {
	assert.Equal(t, byte(1), Pow(5, 0))
	assert.Equal(t, byte(5), Pow(5, 1))
	assert.Equal(t, Mul(5, 5), Pow(5, 2))
	assert.Equal(t, Mul(Mul(5, 5), 5), Pow(5, 3))
}
