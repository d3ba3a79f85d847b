package emulator

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/marie/io"
)

// Script is a device whose words are produced and consumed by a Starlark
// program. The program must define `read()`, returning an integer word or
// None when exhausted, and `write(value)`.
type Script struct {
	Verbose bool                // If set, script print() output is logged.
	Globals starlark.StringDict // Module globals.

	thread *starlark.Thread
	read   starlark.Callable
	write  starlark.Callable
}

// NewScript compiles and runs a device script. The source may be nil, in
// which case it is read from filename.
func NewScript(filename string, src any) (script *Script, err error) {
	script = &Script{}

	script.thread = &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if script.Verbose {
				log.Printf("script: %v", msg)
			}
		},
	}

	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"WORD_MASK": starlark.MakeInt(0xffff),
	}

	_, prog, err := starlark.SourceProgramOptions(&opts, filename, src, pred.Has)
	if err != nil {
		script = nil
		return
	}

	// Globals stay unfrozen, so read() and write() may keep state.
	script.Globals, err = prog.Init(script.thread, pred)
	if err != nil {
		script = nil
		return
	}

	for _, name := range []string{"read", "write"} {
		fn, ok := script.Globals[name].(starlark.Callable)
		if !ok {
			script = nil
			err = ErrScriptFunction(name)
			return
		}
		if name == "read" {
			script.read = fn
		} else {
			script.write = fn
		}
	}

	return
}

// Read calls the script's read().
func (sc *Script) Read() (value uint16, err error) {
	rc, err := starlark.Call(sc.thread, sc.read, nil, nil)
	if err != nil {
		return
	}

	if rc == starlark.None {
		err = io.ErrDeviceEmpty
		return
	}

	st_int, ok := rc.(starlark.Int)
	if !ok {
		err = ErrScriptValue(rc.String())
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < -0x8000 || st_int64 > 0xffff {
		err = ErrScriptValue(rc.String())
		return
	}

	value = uint16(st_int64)
	return
}

// Write calls the script's write(value).
func (sc *Script) Write(value uint16) (err error) {
	args := starlark.Tuple{starlark.MakeInt(int(value))}
	_, err = starlark.Call(sc.thread, sc.write, args, nil)
	return
}
