package calc

import "math/bits"

// MaxExactFactorial is the largest n whose factorial fits in a uint32.
const MaxExactFactorial uint32 = 12

// Factorial returns 1*2*...*n computed with uint32 arithmetic.
// Factorial(0) is 1. Results past MaxExactFactorial wrap modulo 2^32.
func Factorial(n uint32) uint32 {
	result := uint32(1)
	for i := uint32(1); i <= n; i++ {
		result *= i
		if result == 0 {
			// 34! carries 2^32 as a factor; every later product stays zero.
			break
		}
	}
	return result
}

// FactorialOverflows reports whether the exact value of n! exceeds the uint32
// range, i.e. whether Factorial(n) has wrapped.
func FactorialOverflows(n uint32) bool {
	result := uint32(1)
	for i := uint32(2); i <= n; i++ {
		hi, lo := bits.Mul32(result, i)
		if hi != 0 {
			return true
		}
		result = lo
	}
	return false
}
