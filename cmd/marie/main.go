// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/marie/cpu"
	"github.com/ezrec/marie/emulator"
	"github.com/ezrec/marie/io"
)

// PROMPT is shown before each input read on an interactive terminal.
const PROMPT = "? "

// loadProgram compiles or loads the program named by the options.
func loadProgram(opt *Options) (prog *cpu.Program, err error) {
	prog = &cpu.Program{}

	// Compile a new instruction stream.
	if len(opt.Compile) != 0 {
		var inf *os.File
		inf, err = os.Open(opt.Compile)
		if err != nil {
			return
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: opt.Verbose}
		prog, err = asm.Parse(inf)
		return
	}

	// Load a program image.
	if len(opt.Binary) != 0 {
		var inf *os.File
		inf, err = os.Open(opt.Binary)
		if err != nil {
			return
		}
		defer inf.Close()

		var data []byte
		data, err = io.ReadImage(inf, cpu.MEMORY_BYTES)
		if err != nil {
			return
		}

		var words []uint16
		words, err = io.BytesAsWords(data)
		if err != nil {
			return
		}

		prog.Codes = make([]cpu.Code, cpu.MEMORY_WORDS)
		for n, word := range words {
			prog.Codes[n] = cpu.Code(word)
		}
	}

	return
}

// writeProgram saves the program image.
func writeProgram(path string, prog *cpu.Program) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = io.WriteImage(ouf, prog.Codes)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}

// run performs the actions selected by the options.
func run(opt *Options) (err error) {
	prog, err := loadProgram(opt)
	if err != nil {
		return
	}

	if len(opt.Write) != 0 {
		err = writeProgram(opt.Write, prog)
		if err != nil {
			return
		}
	}

	if opt.Listing {
		err = dumpWords(os.Stdout, prog.Codes)
		if err != nil {
			return
		}
	}

	if opt.Save {
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = opt.Verbose
	emu.Tape.Hex = opt.Hex

	if opt.Input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		var inf *os.File
		inf, err = os.Open(opt.Input)
		if err != nil {
			return
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if opt.Output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		var ouf *os.File
		ouf, err = os.Create(opt.Output)
		if err != nil {
			return
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	switch {
	case len(opt.Script) != 0:
		var script *emulator.Script
		script, err = emulator.NewScript(opt.Script, nil)
		if err != nil {
			return
		}
		script.Verbose = opt.Verbose
		emu.SetDevice(script)
	case opt.Input == "-" && term.IsTerminal(int(os.Stdin.Fd())):
		con := &emulator.Console{Tape: emu.Tape, Prompt: PROMPT}
		emu.SetDevice(con)
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	err = emu.Run(opt.Limit)
	if opt.Verbose {
		log.Print(emu.Cpu.String())
	}

	return
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(os.Args[0] + ": ")

	opt := &Options{}
	opt.Flags(flag.CommandLine)

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("Unknown arguments: %v", flag.Args())
	}

	err := opt.LoadConfig(flag.CommandLine)
	if err != nil {
		log.Fatalf("%v: %v", opt.ConfigFile, err)
	}

	err = run(opt)
	if err != nil {
		log.Fatal(err)
	}
}
