package bitwindow

// Bit manipulation functions

const wordBits = 64

const all1s uint64 = 1<<64 - 1

// Return a bitmask with ones everywhere except the left most significant bits
// and the right least significant bits.
// Shifts of 64 produce 0, so left+right == 64 gives an empty mask.
func onesBetween(left, right uint) uint64 {
	// Generate two overlapping sequences of 1s, and keep the overlap.
	highOrderOnes := all1s >> left
	lowOrderOnes := all1s << right
	return highOrderOnes & lowOrderOnes
}

func maxUint(x, y uint) uint {
	if x >= y {
		return x
	}
	return y
}

func minUint(x, y uint) uint {
	if x <= y {
		return x
	}
	return y
}

// x - y, or 0 when y is larger.
func subOrZero(x, y uint) uint {
	if y >= x {
		return 0
	}
	return x - y
}
