package packed

import (
	"errors"

	"go.uber.org/zap"
)

type option struct {
	logger   *zap.Logger
	capacity int
}

func (o *option) validate() error {
	if o.logger == nil {
		return errors.New("`logger` is required")
	}
	return nil
}

// OptionFunc is a function that sets an option for a Vector instance.
type OptionFunc func(*option) error

// WithLogger sets the logger receiving the debug trace of packing operations.
// Tracing is only emitted at debug level.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(opts *option) error {
		opts.logger = logger
		return nil
	}
}

// WithCapacity preallocates storage for n elements.
func WithCapacity(n int) OptionFunc {
	return func(opts *option) error {
		if n < 0 {
			return errors.New("invalid `capacity`; expected: >= 0")
		}
		opts.capacity = n
		return nil
	}
}
