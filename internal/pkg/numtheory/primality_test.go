//go:build unit
// +build unit

package numtheory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testUpperBound = 50000

func TestIsPrime_SmallPrimes(t *testing.T) {
	for _, p := range []int64{2, 3, 5, 7, 11, 13, 53, 61, 7919} {
		assert.True(t, IsPrime(p, testUpperBound), "expected %d to be prime", p)
	}
}

func TestIsPrime_NonPrimes(t *testing.T) {
	for _, n := range []int64{1, 0, -1, -7, 4, 6, 9, 25, 49, 3233} {
		assert.False(t, IsPrime(n, testUpperBound), "expected %d to be rejected", n)
	}
}

func TestIsPrime_UpperBound(t *testing.T) {
	tests := []struct {
		name      string
		candidate int64
		bound     int64
		expected  bool
	}{
		{"above bound", 53, 52, false},
		{"at bound", 53, 53, true},
		{"large prime within bound", 65537, 70000, true},
		{"large prime beyond default bound", 65537, testUpperBound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPrime(tt.candidate, tt.bound))
		})
	}
}

func TestIsPrime_MatchesSieve(t *testing.T) {
	const limit = 2000
	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	for n := 2; n <= limit; n++ {
		assert.Equal(t, !composite[n], IsPrime(int64(n), limit), "n=%d", n)
	}
}
