package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/ezrec/marie/cpu"
)

// DUMP_COLUMNS is the number of words per listing row.
const DUMP_COLUMNS = 16

// dumpWords writes a hex listing of a program image. Rows after the last
// non-zero word are elided.
func dumpWords(w io.Writer, words []cpu.Code) (err error) {
	_, err = fmt.Fprint(w, "      ")
	if err != nil {
		return
	}
	for col := range DUMP_COLUMNS {
		fmt.Fprintf(w, "   +%X", col)
	}
	fmt.Fprintln(w)

	for row := 0; row < len(words); row += DUMP_COLUMNS {
		rest := words[row:]
		if !slices.ContainsFunc(rest, func(code cpu.Code) bool { return code != 0 }) {
			_, err = fmt.Fprintf(w, "... %04X to %04X is all zeroed memory ...\n", row, len(words)-1)
			return
		}

		line := rest[:min(DUMP_COLUMNS, len(rest))]

		fmt.Fprintf(w, "%04X  ", row)
		for _, code := range line {
			fmt.Fprintf(w, " %04X", uint16(code))
		}
		_, err = fmt.Fprintln(w)
		if err != nil {
			return
		}
	}

	return
}
