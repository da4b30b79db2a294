package textspan

// Direction indicates which way a movement or selection extends.
type Direction uint8

const (
	// Forward moves toward the end of the buffer.
	Forward Direction = iota

	// Backward moves toward the start of the buffer.
	Backward
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// DirectionOf returns the direction implied by a signed repeat count.
// A count of zero is treated as forward; callers reject zero counts before
// direction matters.
func DirectionOf(n int) Direction {
	if n < 0 {
		return Backward
	}
	return Forward
}
