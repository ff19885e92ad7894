package main

import (
	"bytes"
	"testing"

	"github.com/ironsheep/ring-separator/internal/pipeline"
)

func TestPrintCreated(t *testing.T) {
	var buf bytes.Buffer
	printCreated(&buf, pipeline.DefaultConfig())

	want := "✓ Created circle.png\n✓ Created background.png\n"
	if got := buf.String(); got != want {
		t.Errorf("output:\ngot  %q\nwant %q", got, want)
	}
}

func TestPrintCreated_UsesFileNames(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.ForegroundPath = "/tmp/out/rings.png"
	cfg.BackgroundPath = "relative/bg.png"

	var buf bytes.Buffer
	printCreated(&buf, cfg)

	want := "✓ Created rings.png\n✓ Created bg.png\n"
	if got := buf.String(); got != want {
		t.Errorf("output:\ngot  %q\nwant %q", got, want)
	}
}
