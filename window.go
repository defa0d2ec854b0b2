// Package bitwindow implements a run of bits living inside a single 64-bit
// word.
//
// A Window describes which bits of its storage word are meaningful by the
// number of bits cut off on either side: the left margin counts the most
// significant bits outside the window, the right margin the least significant
// ones. The anchor (AlignLeft) says which end of the window is fixed when it
// is shortened or laid out against a window of a different length, the way a
// big-endian field is anchored at its most significant bit.
//
// Windows are values. Every operation returns a new Window and none of them
// modify the receiver, so Windows can be shared between goroutines freely.
package bitwindow

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidMargins is returned when the two margins of a window add up to
// more than the 64 bits of its storage word.
var ErrInvalidMargins = errors.New("invalid window margins")

// Window is a run of meaningful bits inside a 64-bit storage word.
//
// Bits of storage outside the window are ignored by every operation and are
// not required to be zero. Because of that, use Equal rather than == to
// compare windows.
//
// The zero value is a full 64-bit, right-anchored window holding 0.
type Window struct {
	storage   uint64
	left      uint
	right     uint
	alignLeft bool
}

// New returns the window of storage that excludes the leftMargin most
// significant and rightMargin least significant bits.
func New(storage uint64, leftMargin, rightMargin uint, alignLeft bool) (Window, error) {
	if leftMargin > wordBits || rightMargin > wordBits || leftMargin+rightMargin > wordBits {
		return Window{}, errors.Wrapf(ErrInvalidMargins, "left %d + right %d exceeds %d bits", leftMargin, rightMargin, wordBits)
	}
	return Window{
		storage:   storage,
		left:      leftMargin,
		right:     rightMargin,
		alignLeft: alignLeft,
	}, nil
}

// MustNew is like New but panics if the margins are invalid.
func MustNew(storage uint64, leftMargin, rightMargin uint, alignLeft bool) Window {
	w, err := New(storage, leftMargin, rightMargin, alignLeft)
	if err != nil {
		panic(err)
	}
	return w
}

// FromUint64 returns a right-justified window over the low length bits of
// value. A length above 64 is treated as 64.
func FromUint64(value uint64, length uint, alignLeft bool) Window {
	length = minUint(length, wordBits)
	return Window{
		storage:   value,
		left:      wordBits - length,
		alignLeft: alignLeft,
	}
}

// Storage returns the raw storage word, including bits outside the window.
func (w Window) Storage() uint64 {
	return w.storage
}

func (w Window) LeftMargin() uint {
	return w.left
}

func (w Window) RightMargin() uint {
	return w.right
}

// AlignLeft reports whether the window is anchored at its most significant
// end.
func (w Window) AlignLeft() bool {
	return w.alignLeft
}

// Length returns the number of meaningful bits, between 0 and 64.
func (w Window) Length() uint {
	return wordBits - w.left - w.right
}

// Mask returns a word with exactly the bits of the window set.
func (w Window) Mask() uint64 {
	return onesBetween(w.left, w.right)
}

// Uint64 returns the content of the window shifted down so that its least
// significant bit is bit 0.
func (w Window) Uint64() uint64 {
	return (w.storage & (all1s >> w.left)) >> w.right
}

// Equal reports whether w and other have the same anchor, the same length
// and the same content. Bits outside either window are not compared.
func (w Window) Equal(other Window) bool {
	return w.alignLeft == other.alignLeft &&
		w.Length() == other.Length() &&
		w.Uint64() == other.Uint64()
}

// String formats the window as anchor:length:content, e.g. "left:6:0b010100".
func (w Window) String() string {
	var sb strings.Builder
	if w.alignLeft {
		sb.WriteString("left:")
	} else {
		sb.WriteString("right:")
	}
	n := w.Length()
	sb.WriteString(strconv.FormatUint(uint64(n), 10))
	sb.WriteString(":0b")
	if n == 0 {
		return sb.String()
	}
	digits := strconv.FormatUint(w.Uint64(), 2)
	for i := uint(len(digits)); i < n; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(digits)
	return sb.String()
}
