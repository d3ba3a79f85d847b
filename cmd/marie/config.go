package main

import (
	"flag"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/marie/translate"
)

var f = translate.From

// ErrConfigKey is an unknown key in a configuration file.
type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("unknown configuration key '%v'", string(err))
}

// Config holds the run settings that may come from a TOML file.
type Config struct {
	Verbose bool   `toml:"verbose"` // Verbose logging.
	Input   string `toml:"input"`   // Tape input path, or "-" for stdin.
	Output  string `toml:"output"`  // Tape output path, or "-" for stdout.
	Hex     bool   `toml:"hex"`     // Tape values are hexadecimal.
	Limit   int    `toml:"limit"`   // Tick limit; zero runs until halted.
	Script  string `toml:"script"`  // Starlark device script path.
}

// Options are the command line settings.
type Options struct {
	Config

	ConfigFile string // TOML file supplying defaults.
	Compile    string // Assembly source to compile.
	Binary     string // Program image to load.
	Write      string // Program image to write.
	Save       bool   // Do not execute.
	Listing    bool   // Dump the program image.
}

// Flags binds the options to a flag set.
func (opt *Options) Flags(fs *flag.FlagSet) {
	fs.StringVar(&opt.Compile, "c", "", ".mas file to compile")
	fs.StringVar(&opt.Binary, "b", "", "program image to load")
	fs.StringVar(&opt.Write, "w", "", "program image to write")
	fs.BoolVar(&opt.Save, "s", false, "Save program image only, do not execute")
	fs.BoolVar(&opt.Listing, "l", false, "Dump the program image")
	fs.StringVar(&opt.Input, "i", "-", "Tape input")
	fs.StringVar(&opt.Output, "o", "-", "Tape output")
	fs.BoolVar(&opt.Hex, "x", false, "Hexadecimal tape values")
	fs.StringVar(&opt.Script, "script", "", "Starlark device script")
	fs.IntVar(&opt.Limit, "limit", 0, "Tick limit, 0 for none")
	fs.BoolVar(&opt.Verbose, "v", false, "Verbose mode")
	fs.StringVar(&opt.ConfigFile, "config", "", "TOML configuration file")
}

// LoadConfig reads the configuration file over the options. Flags set on
// the command line keep their values.
func (opt *Options) LoadConfig(fs *flag.FlagSet) (err error) {
	if len(opt.ConfigFile) == 0 {
		return
	}

	explicit := opt.Config

	md, err := toml.DecodeFile(opt.ConfigFile, &opt.Config)
	if err != nil {
		return
	}

	undecoded := md.Undecoded()
	if len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		err = ErrConfigKey(strings.Join(keys, ", "))
		return
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "v":
			opt.Verbose = explicit.Verbose
		case "i":
			opt.Input = explicit.Input
		case "o":
			opt.Output = explicit.Output
		case "x":
			opt.Hex = explicit.Hex
		case "limit":
			opt.Limit = explicit.Limit
		case "script":
			opt.Script = explicit.Script
		}
	})

	return
}
