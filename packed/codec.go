package packed

const (
	// MinBitWidth is the smallest element width a Vector accepts.
	MinBitWidth = 1

	// MaxBitWidth is the largest element width a Vector accepts.
	// Elements never span a byte, so a width must leave room for at least
	// one element per byte.
	MaxBitWidth = 7
)

// Codec declares how values of T are stored in a Vector: the number of bits
// one value occupies, and how to move the value's bits in and out of its raw
// representation.
//
// Implementations must guarantee that FromRaw(Raw(v)) == v for every value v
// of T once Raw(v) is masked to BitWidth() bits. A codec declaring a width
// too small to distinguish all values of T silently loses information; the
// Vector cannot detect it.
type Codec[T any] interface {
	// BitWidth returns the number of bits one element occupies.
	BitWidth() uint

	// Raw returns the bits of v in the low BitWidth() bits.
	Raw(v T) uint8

	// FromRaw reconstructs a value from its low BitWidth() bits.
	FromRaw(raw uint8) T
}

// BoolCodec stores a bool in a single bit.
type BoolCodec struct{}

// Bool is the codec for bool values.
var Bool Codec[bool] = BoolCodec{}

func (BoolCodec) BitWidth() uint { return 1 }

func (BoolCodec) Raw(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func (BoolCodec) FromRaw(raw uint8) bool { return raw&1 == 1 }

// EnumCodec stores a small enumeration backed by an unsigned byte, such as
// a set of iota constants, using a fixed number of bits.
type EnumCodec[T ~uint8] struct {
	bits uint
}

// Enum returns a codec storing values of T in bits bits. The width is
// checked when the codec is handed to New.
func Enum[T ~uint8](bits uint) EnumCodec[T] {
	return EnumCodec[T]{bits: bits}
}

func (c EnumCodec[T]) BitWidth() uint { return c.bits }

func (c EnumCodec[T]) Raw(v T) uint8 { return uint8(v) }

func (c EnumCodec[T]) FromRaw(raw uint8) T { return T(raw) }

// mask returns the low-bits mask for a width in 1..MaxBitWidth.
func mask(width uint) uint8 {
	return uint8(1<<width) - 1
}
