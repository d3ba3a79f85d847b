package emulator

import (
	"errors"

	"github.com/ezrec/marie/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrScriptFunction is a device script missing a required function.
type ErrScriptFunction string

func (err ErrScriptFunction) Error() string {
	return f("script function '%v' missing", string(err))
}

// ErrScriptValue is a device script returning a value that is not a word.
type ErrScriptValue string

func (err ErrScriptValue) Error() string {
	return f("script value '%v' is not a word", string(err))
}
