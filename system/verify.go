package system

// Sum returns Σx.
func Sum(x []int) int {
	var total int
	for _, v := range x {
		total += v
	}

	return total
}

// Apply computes A·x with integer arithmetic.
//
// Errors:
//   - ErrLengthMismatch if len(x) != NumButtons().
func (s *LinearSystem) Apply(x []int) ([]int, error) {
	if len(x) != len(s.buttons) {
		return nil, systemErrorf("Apply: %d presses for %d buttons", ErrLengthMismatch, len(x), len(s.buttons))
	}
	out := make([]int, len(s.target))
	for j, b := range s.buttons {
		if x[j] == 0 {
			continue
		}
		for _, p := range b.Positions {
			out[p] += x[j]
		}
	}

	return out, nil
}

// Verify checks that x is a non-negative integer solution of A·x = b.
//
// Errors:
//   - ErrLengthMismatch, ErrNegativePress, ErrUnsatisfied (first failing position).
func (s *LinearSystem) Verify(x []int) error {
	for j, v := range x {
		if v < 0 {
			return systemErrorf("Verify: button %d pressed %d times", ErrNegativePress, j, v)
		}
	}
	got, err := s.Apply(x)
	if err != nil {
		return err
	}
	for i := range got {
		if got[i] != s.target[i] {
			return systemErrorf("Verify: position %d got %d want %d", ErrUnsatisfied, i, got[i], s.target[i])
		}
	}

	return nil
}
