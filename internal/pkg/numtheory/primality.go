package numtheory

// IsPrime reports whether candidate is prime using trial division by every integer
// from 2 up to floor(sqrt(candidate)).
//
// Candidates at or below 1, or above upperBound, are rejected outright. The bound caps
// the O(sqrt(n)) cost; the toolkit only ever feeds it values of a few ten-thousands.
func IsPrime(candidate, upperBound int64) bool {
	if candidate <= 1 || candidate > upperBound {
		return false
	}
	for i := int64(2); i <= candidate/i; i++ {
		if candidate%i == 0 {
			return false
		}
	}
	return true
}
