package packed

import (
	"fmt"

	"go.uber.org/zap"
)

// Vector is a growable sequence of values of T, each stored in the codec's
// bit width and packed into bytes from the least-significant bit upward.
//
// An element never spans two bytes. When the trailing byte has fewer free
// bits than the width, the next element starts a fresh byte and the
// remaining bits of the previous byte stay zero. Every byte therefore holds
// exactly 8/width elements, except the trailing one, which may hold fewer.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	codec   Codec[T]
	width   uint
	mask    uint8
	perByte int

	storage  []byte
	bitsUsed uint // occupied low bits of the trailing byte

	logger *zap.Logger
}

// New returns an empty Vector storing values through codec. It fails with
// ErrInvalidBitWidth if the codec's width is outside [MinBitWidth, MaxBitWidth].
func New[T any](codec Codec[T], opts ...OptionFunc) (*Vector[T], error) {
	width := codec.BitWidth()
	if width < MinBitWidth || width > MaxBitWidth {
		return nil, fmt.Errorf("%w; expected: %d..%d, given: %d", ErrInvalidBitWidth, MinBitWidth, MaxBitWidth, width)
	}

	options := &option{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	if err := options.validate(); err != nil {
		return nil, err
	}

	v := &Vector[T]{
		codec:   codec,
		width:   width,
		mask:    mask(width),
		perByte: int(8 / width),
		logger:  options.logger,
	}
	if options.capacity > 0 {
		v.storage = make([]byte, 0, (options.capacity+v.perByte-1)/v.perByte)
	}
	return v, nil
}

// MustNew is like New but panics on an invalid codec width.
func MustNew[T any](codec Codec[T], opts ...OptionFunc) *Vector[T] {
	v, err := New(codec, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// BitWidth returns the number of bits one element occupies.
func (v *Vector[T]) BitWidth() uint {
	return v.width
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	if len(v.storage) == 0 {
		return 0
	}
	return (len(v.storage)-1)*v.perByte + int(v.bitsUsed/v.width)
}

// Bytes returns a copy of the packed storage.
func (v *Vector[T]) Bytes() []byte {
	out := make([]byte, len(v.storage))
	copy(out, v.storage)
	return out
}

// Push appends value to the end of the vector.
func (v *Vector[T]) Push(value T) {
	if len(v.storage) == 0 {
		v.storage = append(v.storage, 0)
		v.bitsUsed = 0
	}

	raw := v.codec.Raw(value) & v.mask
	free := 8 - v.bitsUsed

	if free < v.width {
		// Start a fresh byte; the free bits left behind remain zero padding.
		v.storage = append(v.storage, raw)
		v.bitsUsed = v.width
		v.trace("push: new byte", raw, 0, raw)
		return
	}

	shifted := raw << v.bitsUsed
	v.storage[len(v.storage)-1] |= shifted
	v.trace("push", raw, v.bitsUsed, shifted)
	v.bitsUsed += v.width
}

// Extend appends all values, in order.
func (v *Vector[T]) Extend(values []T) {
	for _, value := range values {
		v.Push(value)
	}
}

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.codec.FromRaw(v.at(i)), nil
}

// Set overwrites the element at index i. The bits of neighbouring elements
// are left untouched.
func (v *Vector[T]) Set(i int, value T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.put(i, v.codec.Raw(value)&v.mask)
	return nil
}

// Remove deletes the element at index i and returns it. Every following
// element moves down by one position, and the trailing byte is released
// once it no longer holds any element.
func (v *Vector[T]) Remove(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	removed := v.codec.FromRaw(v.at(i))

	n := v.Len()
	for j := i; j < n-1; j++ {
		v.put(j, v.at(j+1))
	}
	v.put(n-1, 0)
	v.truncate(n - 1)

	return removed, nil
}

// Iter returns a new sequential view over the current elements.
func (v *Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{vec: v}
}

// Values returns all elements, in order.
func (v *Vector[T]) Values() []T {
	values := make([]T, 0, v.Len())
	it := v.Iter()
	for value, ok := it.Next(); ok; value, ok = it.Next() {
		values = append(values, value)
	}
	return values
}

func (v *Vector[T]) checkIndex(i int) error {
	if n := v.Len(); i < 0 || i >= n {
		return fmt.Errorf("%w; expected: 0 <= index < %d, given: %d", ErrIndexOutOfRange, n, i)
	}
	return nil
}

// locate returns the byte holding element i and the element's bit offset
// within it.
func (v *Vector[T]) locate(i int) (int, uint) {
	return i / v.perByte, uint(i%v.perByte) * v.width
}

func (v *Vector[T]) at(i int) uint8 {
	idx, shift := v.locate(i)
	return (v.storage[idx] >> shift) & v.mask
}

func (v *Vector[T]) put(i int, raw uint8) {
	idx, shift := v.locate(i)
	v.storage[idx] = v.storage[idx]&^(v.mask<<shift) | raw<<shift
}

// truncate shrinks the storage to hold exactly n elements. Bits of the
// dropped elements must already be cleared.
func (v *Vector[T]) truncate(n int) {
	if n == 0 {
		v.storage = v.storage[:0]
		v.bitsUsed = 0
		return
	}

	last := n - 1
	v.storage = v.storage[:last/v.perByte+1]
	v.bitsUsed = uint(last%v.perByte+1) * v.width
}

func (v *Vector[T]) trace(msg string, raw uint8, inUse uint, shifted uint8) {
	if ce := v.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(
			zap.String("raw", FormatByte(raw, true)),
			zap.Uint("in_use", inUse),
			zap.String("mask", FormatByte(shifted, true)),
			zap.Int("bytes", len(v.storage)),
		)
	}
}
