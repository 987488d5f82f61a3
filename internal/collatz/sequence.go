package collatz

// TargetLength is the sequence length the range counter looks for.
const TargetLength = 112

// SequenceLength returns the number of terms in the Collatz sequence starting
// at n, counting n itself and the terminal 1. SequenceLength(1) is 1.
//
// n == 0 never reaches 1 (0 is even and halves to itself); it returns 0
// instead of looping.
func SequenceLength(n uint64) int {
	if n == 0 {
		return 0
	}
	count := 1
	for n != 1 {
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		count++
	}
	return count
}
