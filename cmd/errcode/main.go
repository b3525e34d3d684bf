package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasm-errcode/engine"
	"github.com/wippyai/wasm-errcode/errors"
)

func main() {
	var (
		rawCode     = flag.String("code", "", "Raw 32-bit code to decode (decimal or 0x-prefixed hex)")
		category    = flag.Uint("category", uint(errors.CategoryUserLevelError), "Category byte used with -value")
		value       = flag.String("value", "", "Code to pack under -category (masked to 24 bits)")
		list        = flag.Bool("list", false, "List phases and kinds and exit")
		wasmFile    = flag.String("wasm", "", "Path to core wasm module to run")
		funcName    = flag.String("func", "", "Function to call with -wasm")
		callArgs    = flag.String("args", "", "Comma-separated i32 arguments for -func")
		interactive = flag.Bool("i", false, "Interactive code browser")
		verbose     = flag.Bool("v", false, "Log failures to stderr")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		errors.SetLogger(l)
		engine.SetLogger(l)
	}

	var err error
	switch {
	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			err = fmt.Errorf("-i requires a terminal")
			break
		}
		err = runInteractive()
	case *list:
		printTables(os.Stdout)
	case *rawCode != "":
		var n uint32
		if n, err = parseUint32(*rawCode); err == nil {
			describe(os.Stdout, errors.FromRaw(n))
		}
	case *value != "":
		if *category > 0xFF {
			err = fmt.Errorf("category %d does not fit in a byte", *category)
			break
		}
		var n uint32
		if n, err = parseUint32(*value); err == nil {
			describe(os.Stdout, errors.Make(errors.Category(*category), n))
		}
	case *wasmFile != "":
		err = runWasm(os.Stdout, *wasmFile, *funcName, *callArgs)
	default:
		fmt.Fprintln(os.Stderr, "Usage: errcode -code <u32>")
		fmt.Fprintln(os.Stderr, "       errcode -value <u32> [-category <u8>]")
		fmt.Fprintln(os.Stderr, "       errcode -list")
		fmt.Fprintln(os.Stderr, "       errcode -wasm <file.wasm> -func name [-args 1,2]")
		fmt.Fprintln(os.Stderr, "       errcode -i  (interactive mode)")
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return uint32(n), nil
}

// describe prints every field extracted from c.
func describe(w io.Writer, c errors.ErrCode) {
	fmt.Fprintf(w, "code:     0x%08x\n", c.Uint32())
	fmt.Fprintf(w, "category: %s (%d)\n", c.Category(), uint8(c.Category()))
	fmt.Fprintf(w, "phase:    %s (%d)\n", c.Phase(), uint8(c.Phase()))
	fmt.Fprintf(w, "kind:     %s (0x%04x)\n", c.Kind(), uint32(c.Kind()))
	fmt.Fprintf(w, "value:    0x%06x\n", c.Code())
}

func printTables(w io.Writer) {
	fmt.Fprintln(w, "Phases:")
	for p, name := range errors.Phases() {
		fmt.Fprintf(w, "  %2d  %s\n", uint8(p), name)
	}

	fmt.Fprintln(w, "\nKinds:")
	for k, name := range errors.Kinds() {
		fmt.Fprintf(w, "  0x%04x  %-14s %s\n", uint32(k), k.Phase(), name)
	}
}

func runWasm(w io.Writer, wasmFile, funcName, argsStr string) error {
	ctx := context.Background()

	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if funcName == "" {
		return fmt.Errorf("-func is required with -wasm")
	}

	var params []uint64
	if argsStr != "" {
		for _, a := range strings.Split(argsStr, ",") {
			v, err := strconv.ParseInt(strings.TrimSpace(a), 0, 32)
			if err != nil {
				return fmt.Errorf("parse argument %q: %w", a, err)
			}
			params = append(params, api.EncodeI32(int32(v)))
		}
	}

	eng := engine.New(ctx, &engine.Config{CloseOnContextDone: true})
	defer eng.Close(ctx)

	mod, ec := eng.Load(ctx, "main", data)
	if !ec.OK() {
		return errors.Describe(ec).Path(wasmFile).Build()
	}
	defer mod.Close(ctx)

	results, ec := mod.Call(ctx, funcName, params...)
	if !ec.OK() {
		describe(w, ec)
		return errors.Describe(ec).Path(wasmFile, funcName).Value(params).Build()
	}

	for i, r := range results {
		fmt.Fprintf(w, "result[%d]: %d\n", i, api.DecodeI32(r))
	}
	return nil
}
