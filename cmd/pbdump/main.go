// Command pbdump renders arbitrary protobuf wire bytes as an annotated
// hex dump, without needing the bytes' schema. It is a thin shell
// around the inspect package: read bytes, scan, render, print.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gowire/pbwire/codec"
	"github.com/gowire/pbwire/internal/dumpconfig"
	"github.com/gowire/pbwire/internal/wirelog"
	"github.com/gowire/pbwire/inspect"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("pbdump", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a pbdump.toml config file")
	strict := fs.Bool("strict", false, "fail the whole dump on the first unparseable byte instead of skipping it")
	bytesPerLine := fs.Int("width", 0, "hex dump row width in bytes (0 = use config or default)")
	color := fs.Bool("color", false, "colorize the offset column and field interpretations")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: pbdump [-config FILE] [-strict] [-width N] [-color] [FILE]")
		fmt.Fprintln(fs.Output(), "reads protobuf wire bytes from FILE, or stdin if omitted, and prints an annotated hex dump")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := wirelog.New("pbdump")

	cfg := dumpconfig.Default()
	if *configPath != "" {
		loaded, err := dumpconfig.Load(*configPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to load config")
			return 1
		}
		cfg = loaded
	}
	if *bytesPerLine > 0 {
		cfg.BytesPerLine = *bytesPerLine
	}
	if *strict {
		cfg.Permissive = false
	}
	if *color {
		cfg.Color = true
	}

	var src io.Reader = stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.Error().Err(err).Str("path", fs.Arg(0)).Msg("failed to open input")
			return 1
		}
		defer f.Close()
		src = f
	}

	data, err := io.ReadAll(io.LimitReader(src, codec.MaxSerializedSize+1))
	if err != nil {
		log.Error().Err(err).Msg("failed to read input")
		return 1
	}
	if len(data) > codec.MaxSerializedSize {
		log.Error().Int("bytes", len(data)).Msg("input exceeds the maximum serialized size")
		return 1
	}

	spans := inspect.Scan(data, cfg.Permissive)
	if spans == nil {
		log.Error().Int("bytes", len(data)).Msg("input did not parse as protobuf wire bytes in strict mode")
		return 1
	}

	fmt.Fprint(stdout, inspect.RenderColor(data, spans, cfg.BytesPerLine, cfg.Color))
	return 0
}
