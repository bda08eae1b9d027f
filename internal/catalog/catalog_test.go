package catalog

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/FocuswithJustin/Aozora/core/errors"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestFormatIsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		expected bool
	}{
		{
			name:     "html",
			format:   FormatHTML,
			expected: true,
		},
		{
			name:     "text",
			format:   FormatText,
			expected: true,
		},
		{
			name:     "epub is not a conversion format",
			format:   Format("epub"),
			expected: false,
		},
		{
			name:     "empty",
			format:   Format(""),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.IsValid(); got != tt.expected {
				t.Errorf("IsValid(%q) = %v, want %v", tt.format, got, tt.expected)
			}
		})
	}
}

func TestHashSource(t *testing.T) {
	h1 := HashSource([]byte("吾輩は猫である"))
	h2 := HashSource([]byte("吾輩は猫である"))
	h3 := HashSource([]byte("こころ"))

	if len(h1) != 64 {
		t.Errorf("HashSource() length = %d, want 64 hex chars", len(h1))
	}
	if h1 != h2 {
		t.Error("HashSource() not deterministic for identical input")
	}
	if h1 == h3 {
		t.Error("HashSource() collided for different inputs")
	}
	if strings.ToLower(h1) != h1 {
		t.Error("HashSource() should be lowercase hex")
	}
}

func TestAdd(t *testing.T) {
	c := openTestCatalog(t)
	data := []byte("本文テキスト")

	rec, err := c.Add(data, "kokoro.txt", "こころ", "夏目漱石", FormatHTML)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if len(rec.ID) != 36 {
		t.Errorf("Add() ID = %q, want UUID of length 36", rec.ID)
	}
	if rec.Title != "こころ" {
		t.Errorf("Add() Title = %q, want %q", rec.Title, "こころ")
	}
	if rec.Author != "夏目漱石" {
		t.Errorf("Add() Author = %q, want %q", rec.Author, "夏目漱石")
	}
	if rec.Source != "kokoro.txt" {
		t.Errorf("Add() Source = %q, want %q", rec.Source, "kokoro.txt")
	}
	if rec.Format != FormatHTML {
		t.Errorf("Add() Format = %q, want %q", rec.Format, FormatHTML)
	}
	if rec.SourceHash != HashSource(data) {
		t.Errorf("Add() SourceHash = %q, want %q", rec.SourceHash, HashSource(data))
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Add() CreatedAt should be set")
	}
}

func TestAddInvalidFormat(t *testing.T) {
	c := openTestCatalog(t)

	_, err := c.Add([]byte("本文"), "kokoro.txt", "こころ", "夏目漱石", Format("epub"))
	if err == nil {
		t.Fatal("expected error for invalid format")
	}
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddDuplicateSource(t *testing.T) {
	c := openTestCatalog(t)
	data := []byte("同じ本文")

	if _, err := c.Add(data, "kokoro.txt", "こころ", "夏目漱石", FormatHTML); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}

	_, err := c.Add(data, "kokoro2.txt", "こころ（再）", "夏目漱石", FormatText)
	if err == nil {
		t.Fatal("expected error for duplicate source")
	}
	if !errors.Is(err, errors.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestList(t *testing.T) {
	c := openTestCatalog(t)

	works := []struct {
		data  string
		title string
	}{
		{data: "本文一", title: "こころ"},
		{data: "本文二", title: "坊っちゃん"},
		{data: "本文三", title: "三四郎"},
	}
	for _, w := range works {
		if _, err := c.Add([]byte(w.data), w.title+".txt", w.title, "夏目漱石", FormatHTML); err != nil {
			t.Fatalf("Add(%s) error = %v", w.title, err)
		}
		// Keep created_at strictly increasing across rows.
		time.Sleep(2 * time.Millisecond)
	}

	records, err := c.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != len(works) {
		t.Fatalf("List() returned %d records, want %d", len(records), len(works))
	}
	// Newest first.
	for i, w := range works {
		got := records[len(records)-1-i]
		if got.Title != w.title {
			t.Errorf("List()[%d].Title = %q, want %q", len(records)-1-i, got.Title, w.title)
		}
	}
}

func TestListEmpty(t *testing.T) {
	c := openTestCatalog(t)

	records, err := c.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("List() returned %d records, want 0", len(records))
	}
}

func TestFindByHash(t *testing.T) {
	c := openTestCatalog(t)
	data := []byte("捜す本文")

	added, err := c.Add(data, "kusamakura.txt", "草枕", "夏目漱石", FormatText)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	found, err := c.FindByHash(HashSource(data))
	if err != nil {
		t.Fatalf("FindByHash() error = %v", err)
	}
	if found.ID != added.ID {
		t.Errorf("FindByHash() ID = %q, want %q", found.ID, added.ID)
	}
	if found.Title != "草枕" {
		t.Errorf("FindByHash() Title = %q, want %q", found.Title, "草枕")
	}
	if found.Source != "kusamakura.txt" {
		t.Errorf("FindByHash() Source = %q, want %q", found.Source, "kusamakura.txt")
	}
	if !found.CreatedAt.Equal(added.CreatedAt) {
		t.Errorf("FindByHash() CreatedAt = %v, want %v", found.CreatedAt, added.CreatedAt)
	}
}

func TestFindByHashNotFound(t *testing.T) {
	c := openTestCatalog(t)

	_, err := c.FindByHash(HashSource([]byte("未登録")))
	if err == nil {
		t.Fatal("expected error for unknown hash")
	}
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "aozora", "catalog.db")

	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer c.Close()

	if _, err := c.Add([]byte("本文"), "mon.txt", "門", "夏目漱石", FormatHTML); err != nil {
		t.Errorf("Add() error = %v", err)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := c.Add([]byte("永続本文"), "mon.txt", "門", "夏目漱石", FormatHTML); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer reopened.Close()

	records, err := reopened.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("List() returned %d records after reopen, want 1", len(records))
	}
	if records[0].Title != "門" {
		t.Errorf("List()[0].Title = %q, want %q", records[0].Title, "門")
	}
}
