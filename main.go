//go:build !js

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"slate/internal/context"
	"slate/internal/interp"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	exprFlag := flag.String("e", "", "Run the given program instead of a file")
	flag.Parse()

	if *exprFlag == "" && flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [--debug] [-e program] <file.sl>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	options := &context.InterpOptions{
		Debug: *debugFlag,
	}
	ctx := context.New(options)

	var value interp.Value
	var err error
	if *exprFlag != "" {
		value, err = ctx.Run("<arg>", *exprFlag)
	} else {
		value, err = ctx.RunFile(flag.Arg(0))
	}

	if err != nil {
		if ctx.HasErrors() {
			ctx.EmitDiagnostics(os.Stderr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	if value.Kind != interp.UnitValue {
		fmt.Println(value)
	}
}
