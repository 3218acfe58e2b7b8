package main

import (
	"bytes"
	"errors"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"golang.org/x/term"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "diagram.png")
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-o", out, "-dpi", "30"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v (stderr: %s)", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Saved "+out) {
		t.Errorf("stdout = %q, want confirmation", stdout.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dx() > 22*30 || b.Dy() > 14*30 {
		t.Errorf("image size = %v, want within 660x420", b)
	}
}

func TestRunUncropped(t *testing.T) {
	out := filepath.Join(t.TempDir(), "full.png")
	if err := run([]string{"-o", out, "-dpi", "20", "-tight=false"}, &bytes.Buffer{}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 440 || cfg.Height != 280 {
		t.Errorf("size = %dx%d, want 440x280", cfg.Width, cfg.Height)
	}
}

func TestRunDefaults(t *testing.T) {
	if testing.Short() {
		t.Skip("renders the full 300 DPI figure")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout bytes.Buffer
	if err := run(nil, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	info, err := os.Stat(defaultOutput)
	if err != nil {
		t.Fatalf("default output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("default output is empty")
	}
	if got := stdout.String(); got != "Saved npu_architecture_neat.png\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunVerboseLogs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "v.png")
	var stderr bytes.Buffer
	if err := run([]string{"-v", "-o", out, "-dpi", "20"}, &bytes.Buffer{}, &stderr); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"rendering diagram", "name=host", "saved diagram"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("verbose log missing %q", want)
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"positional argument", []string{"extra"}},
		{"bad dpi", []string{"-dpi", "0", "-o", filepath.Join(dir, "a.png")}},
		{"missing directory", []string{"-dpi", "10", "-o", filepath.Join(dir, "missing", "a.png")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
				t.Error("run() = nil, want error")
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	err := run([]string{"-h"}, &bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("run(-h) = %v, want flag.ErrHelp", err)
	}
}

func TestRunShowWithoutTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal; the preview would wait for input")
	}
	out := filepath.Join(t.TempDir(), "s.png")
	var stderr bytes.Buffer
	if err := run([]string{"-show", "-o", out, "-dpi", "10"}, &bytes.Buffer{}, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "preview skipped") {
		t.Errorf("stderr = %q, want preview skipped warning", stderr.String())
	}
}
