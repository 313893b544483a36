package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// ApplyGravity advances one airborne step: velocity first, then position.
// The landing flag is set when y reached or passed groundY, in which case y
// is snapped to the ground and the velocity is zeroed.
func ApplyGravity(y, velocityY, gravity, groundY float64) (newY, newVelocityY float64, landed bool) {
	velocityY += gravity
	y += velocityY
	if y >= groundY {
		return groundY, 0, true
	}
	return y, velocityY, false
}

// HorizontalStep returns the movement direction produced by the two latches.
// Both held cancel out.
func HorizontalStep(left, right bool) float64 {
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	default:
		return 0
	}
}
