package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-planets/internal/asset"
	"github.com/litescript/ls-planets/internal/logging"
	"github.com/litescript/ls-planets/internal/render"
	"github.com/litescript/ls-planets/internal/scene"
)

func TestRunSnapshot_MissingAssetsRenderBlack(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.EnvironmentURL = "missing.hdr"
	loader := asset.NewLoader(asset.WithBaseDir(t.TempDir()))

	var buf bytes.Buffer
	err := runSnapshot(context.Background(), &buf, loader, snapshotOptions{
		Scene:   cfg,
		Render:  render.DefaultOptions(),
		Width:   12,
		Height:  4,
		ASCII:   true,
		Timeout: 5 * time.Second,
	}, logging.Discard())
	if err != nil {
		t.Fatalf("runSnapshot: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for i, line := range lines {
		if line != strings.Repeat(" ", 12) {
			t.Errorf("line %d = %q, want blank", i, line)
		}
	}
}

func TestRunSnapshot_InvalidSize(t *testing.T) {
	loader := asset.NewLoader(asset.WithBaseDir(t.TempDir()))
	err := runSnapshot(context.Background(), &bytes.Buffer{}, loader, snapshotOptions{
		Scene:  scene.DefaultConfig(),
		Render: render.DefaultOptions(),
		Width:  0,
		Height: 4,
	}, logging.Discard())
	if err == nil {
		t.Error("expected error for zero width")
	}
}
