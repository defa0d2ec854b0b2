package bitwindow

// Op is a bitwise operator applied to two storage words.
type Op func(x, y uint64) uint64

func And(x, y uint64) uint64 {
	return x & y
}

func Or(x, y uint64) uint64 {
	return x | y
}

func Xor(x, y uint64) uint64 {
	return x ^ y
}

func AndNot(x, y uint64) uint64 {
	return x &^ y
}

// TrimTo shortens the window to newLen bits by dropping bits on the side
// away from its anchor. The anchored margin never changes. Windows already
// newLen bits or shorter are returned unchanged.
func (w Window) TrimTo(newLen uint) Window {
	if newLen >= w.Length() {
		return w
	}
	if w.alignLeft {
		w.right = wordBits - w.left - newLen
	} else {
		w.left = wordBits - w.right - newLen
	}
	return w
}

// AlignedTo moves the content of w so that it sits against the anchored side
// of ref, with the same margin ref has on that side. The result is as long
// as the longer of the two windows, or as much of it as still fits in the
// word, and keeps the anchor of w.
//
// Bits shifted in on the side away from ref's anchor are whatever the shift
// produces; mask or trim the result when they matter.
func (w Window) AlignedTo(ref Window) Window {
	length := maxUint(w.Length(), ref.Length())
	out := Window{alignLeft: w.alignLeft}
	if ref.alignLeft {
		out.storage = w.storage << w.left >> ref.left
		out.left = ref.left
		out.right = subOrZero(wordBits-ref.left, length)
	} else {
		out.storage = w.storage >> w.right << ref.right
		out.right = ref.right
		out.left = subOrZero(wordBits-ref.right, length)
	}
	return out
}

// Combine applies op to the bits of w and other, position by position.
//
// Both windows are first trimmed to the shorter of the two lengths, each on
// the side away from its own anchor, and other is laid out on the frame of w.
// The result has that common length and the anchor of w.
func (w Window) Combine(op Op, other Window) Window {
	n := minUint(w.Length(), other.Length())
	self := w.TrimTo(n)
	aligned := other.TrimTo(n).AlignedTo(self)
	return Window{
		storage:   op(self.storage, aligned.storage),
		left:      maxUint(self.left, aligned.left),
		right:     maxUint(self.right, aligned.right),
		alignLeft: w.alignLeft,
	}
}

// Apply trims a and b to the shorter of their lengths and applies op to
// their integer values. Unlike Combine the result is always right-justified
// in its word, and it is anchored left if either operand is.
func Apply(op Op, a, b Window) Window {
	n := minUint(a.Length(), b.Length())
	a = a.TrimTo(n)
	b = b.TrimTo(n)
	return Window{
		storage:   op(a.Uint64(), b.Uint64()),
		left:      wordBits - n,
		alignLeft: a.alignLeft || b.alignLeft,
	}
}
