package input

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FocuswithJustin/Aozora/core/errors"
)

func writeZip(t *testing.T, name, entryName, content string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(entryName)
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write zip: %v", err)
	}
	return path
}

func writeTarGz(t *testing.T, name, entryName, content string) string {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	if err := tw.WriteHeader(&tar.Header{Name: entryName, Mode: 0o644, Size: int64(len(content))}); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if _, err := tw.Write([]byte(content)); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write tar.gz: %v", err)
	}
	return path
}

func TestReadPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kokoro.txt")
	if err := os.WriteFile(path, []byte("本文テキスト"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	data, err := Read(path, false)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "本文テキスト" {
		t.Errorf("Read() = %q, want %q", data, "本文テキスト")
	}
}

func TestReadStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	go func() {
		w.Write([]byte("標準入力の本文"))
		w.Close()
	}()

	data, err := Read("", false)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "標準入力の本文" {
		t.Errorf("Read() = %q, want %q", data, "標準入力の本文")
	}
}

func TestReadZipModeRequiresFile(t *testing.T) {
	_, err := Read("", true)
	if err == nil {
		t.Fatal("expected error for zip mode without input file")
	}
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "ZIP mode requires an input file") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestReadZipMode(t *testing.T) {
	path := writeZip(t, "kokoro.bin", "kokoro.txt", "zip内の本文")

	data, err := Read(path, true)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "zip内の本文" {
		t.Errorf("Read() = %q, want %q", data, "zip内の本文")
	}
}

func TestReadZipSuffix(t *testing.T) {
	path := writeZip(t, "kokoro.zip", "kokoro.txt", "本文")

	data, err := Read(path, false)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "本文" {
		t.Errorf("Read() = %q, want %q", data, "本文")
	}
}

func TestReadTarGzSuffix(t *testing.T) {
	path := writeTarGz(t, "kokoro.tar.gz", "kokoro.txt", "tar内の本文")

	data, err := Read(path, false)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "tar内の本文" {
		t.Errorf("Read() = %q, want %q", data, "tar内の本文")
	}
}

func TestReadRejectsDisguisedZip(t *testing.T) {
	// A ZIP archive without the .zip suffix read in plain mode should
	// produce a hint instead of garbled output.
	zipPath := writeZip(t, "kokoro.bin", "kokoro.txt", "本文")

	_, err := Read(zipPath, false)
	if err == nil {
		t.Fatal("expected error for ZIP content in plain mode")
	}
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "--zip") {
		t.Errorf("expected hint about --zip option, got %q", err.Error())
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"), false)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
