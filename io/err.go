package io

import (
	"errors"

	"github.com/ezrec/marie/translate"
)

var f = translate.From

var (
	// Device errors
	ErrDeviceEmpty    = errors.New(f("device empty"))
	ErrDeviceFull     = errors.New(f("device full"))
	ErrDeviceReadOnly = errors.New(f("device read-only"))
	ErrDeviceInput    = errors.New(f("device input missing"))
	ErrDeviceOutput   = errors.New(f("device output missing"))

	// Image errors
	ErrImageOdd = errors.New(f("image has odd byte count"))
)

// ErrParseValue is a tape token that is not a 16-bit number.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a 16-bit value", string(err))
}

// ErrImageSize is an image larger than the permitted byte count.
type ErrImageSize int

func (err ErrImageSize) Error() string {
	return f("image of %v bytes is too large", int(err))
}
