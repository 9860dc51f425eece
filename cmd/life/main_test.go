package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func TestPatternsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"patterns"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"pattern", "image", "random", "glider", "(1,2)"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSnapshotCommandWritesBitmaps(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "life.yaml")
	cfg := "width: 12\nheight: 10\nseed:\n  strategy: pattern\n  pattern: glider\nlog:\n  level: error\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "frames")

	rootCmd.SetArgs([]string{"snapshot", "--config", cfgPath, "--generations", "4", "--every", "2", "--out", outDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("wrote %d files, want 2", len(entries))
	}
}

func TestSnapshotUsesConfiguredScale(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "life.yaml")
	cfg := "width: 12\nheight: 10\nscale: 2\nlog:\n  level: error\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "frames")

	rootCmd.SetArgs([]string{"snapshot", "--config", cfgPath, "--generations", "1", "--every", "1", "--out", outDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	entries, err := os.ReadDir(outDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("ReadDir: %d entries, err %v", len(entries), err)
	}
	f, err := os.Open(filepath.Join(outDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	bc, err := bmp.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if bc.Width != 24 || bc.Height != 20 {
		t.Fatalf("bitmap is %dx%d, want 24x20", bc.Width, bc.Height)
	}
}

func TestInvalidSizeFailsBeforeRunning(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "life.yaml")
	if err := os.WriteFile(cfgPath, []byte("width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rootCmd.SetArgs([]string{"snapshot", "--config", cfgPath, "--out", filepath.Join(dir, "frames")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected validation error for zero width")
	}
	if _, err := os.Stat(filepath.Join(dir, "frames")); !os.IsNotExist(err) {
		t.Fatal("output directory created despite invalid config")
	}
}
