package main

import (
	"os"

	"github.com/projectdiscovery/dafsa"
	"github.com/projectdiscovery/dafsa/internal/reader"
	"github.com/projectdiscovery/dafsa/internal/runner"
	"github.com/projectdiscovery/dafsa/internal/sourceformat"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := runner.ParseFlags()

	in := os.Stdin
	if opts.Input != "-" && opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			gologger.Fatal().Msgf("dafsagen: failed to open input %v: %v", opts.Input, err)
		}
		defer f.Close()
		in = f
	}

	words, err := reader.Read(in, reader.Options{Reverse: opts.Reverse, Dedupe: true})
	if err != nil {
		gologger.Fatal().Msgf("dafsagen: failed to read dictionary: %v", err)
	}
	gologger.Info().Msgf("dafsagen: read %d dictionary entries", len(words))

	compiled, err := (&dafsa.Compiler{Reverse: opts.Reverse}).Compile(words)
	if err != nil {
		gologger.Fatal().Msgf("dafsagen: compile failed: %v", err)
	}
	gologger.Info().Msgf("dafsagen: compiled to %d bytes", len(compiled))

	out := os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			gologger.Fatal().Msgf("dafsagen: failed to create output %v: %v", opts.Output, err)
		}
		defer f.Close()
		out = f
	}

	switch opts.Format {
	case "go":
		text := sourceformat.Render(compiled, sourceformat.Options{Package: "main", Name: "kDafsa"})
		if _, err := out.WriteString(text); err != nil {
			gologger.Fatal().Msgf("dafsagen: failed to write output: %v", err)
		}
	default:
		if _, err := out.Write(compiled); err != nil {
			gologger.Fatal().Msgf("dafsagen: failed to write output: %v", err)
		}
	}
}
