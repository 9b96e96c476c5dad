// Package main implements a CHIP-8 ROM disassembler
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input  string
	output string
	quiet  bool
}

func main() {
	opts := readArguments()

	if !opts.quiet {
		printBanner()
	}

	if err := disasmFile(opts); err != nil {
		fmt.Println(fmt.Errorf("disassembling failed: %w", err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := optionFlags{}

	flags.StringVar(&opts.output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.BoolVar(&opts.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		printBanner()
		fmt.Printf("usage: chip8dis [options] <file to disassemble>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	opts.input = args[0]

	return opts
}

func printBanner() {
	fmt.Println("[---------------------------------------]")
	fmt.Println("[ chip8dis - CHIP-8 ROM disassembler    ]")
	fmt.Printf("[---------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func disasmFile(opts optionFlags) error {
	program := options.Program{
		Parameters: options.Parameters{Input: opts.input},
	}
	rom, err := loader.New().Load(&program)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var outputFile io.WriteCloser
	if opts.output == "" {
		outputFile = nopCloser{os.Stdout}
	} else {
		outputFile, err = os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", opts.output, err)
		}
	}

	if err = disasm.Listing(outputFile, rom, memory.ProgramStart); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("processing file: %w", err)
	}
	if err = outputFile.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

// nopCloser wraps an io.Writer to add a no-op Close method.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
