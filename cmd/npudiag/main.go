// Command npudiag renders the dual-engine NPU architecture diagram to a
// PNG file.
//
// With no arguments it writes npu_architecture_neat.png in the working
// directory at 300 DPI, cropped to its content.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/gogpu/blockdiag"
	"github.com/gogpu/blockdiag/internal/preview"
)

// defaultOutput is the file written when -o is not given.
const defaultOutput = "npu_architecture_neat.png"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "npudiag: %v\n", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be driven from tests.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("npudiag", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		output  = fs.String("o", defaultOutput, "output PNG file")
		dpi     = fs.Float64("dpi", blockdiag.DefaultDPI, "output resolution in dots per inch")
		tight   = fs.Bool("tight", true, "crop the image to its content")
		show    = fs.Bool("show", false, "preview the diagram in the terminal after saving")
		verbose = fs.Bool("v", false, "log every drawn element")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	blockdiag.SetLogger(logger)
	defer blockdiag.SetLogger(nil)

	r, err := blockdiag.NewRenderer(
		blockdiag.WithDPI(*dpi),
		blockdiag.WithTightBBox(*tight),
	)
	if err != nil {
		return err
	}
	d, err := r.Render(blockdiag.NPUArchitecture())
	if err != nil {
		return err
	}
	if err := d.SavePNG(*output); err != nil {
		return err
	}
	_, _ = color.New(color.FgGreen).Fprintf(stdout, "Saved %s\n", *output)

	if !*show {
		return nil
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Warn("preview skipped: stdout is not a terminal")
		return nil
	}
	return preview.Show(d.Image)
}
