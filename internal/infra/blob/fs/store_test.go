package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pfasscreen/internal/blob/core"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "reports"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	if s.Driver() != core.DriverFilesystem {
		t.Fatalf("driver = %s", s.Driver())
	}

	info, err := s.Put(ctx, "screenings/s-1/result.json", strings.NewReader(`{"ok":true}`), core.PutOptions{
		ContentType: "application/json",
		Metadata:    map[string]string{"overall-status": "PROCEED"},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Size != 11 || len(info.ETag) != 64 {
		t.Fatalf("unexpected info %+v", info)
	}

	got, rc, err := s.Get(ctx, "screenings/s-1/result.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != `{"ok":true}` {
		t.Fatalf("body = %q", body)
	}
	if got.ContentType != "application/json" || got.Metadata["overall-status"] != "PROCEED" || got.ETag != info.ETag {
		t.Fatalf("unexpected get info %+v", got)
	}

	head, err := s.Head(ctx, "screenings/s-1/result.json")
	if err != nil || head.Size != info.Size {
		t.Fatalf("head: %+v %v", head, err)
	}

	if _, err := os.Stat(filepath.Join(s.Root(), "screenings", "s-1", "result.json.meta")); err != nil {
		t.Fatalf("expected sidecar: %v", err)
	}
}

func TestStorePutIsCreateOnly(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	if _, err := s.Put(ctx, "a.txt", strings.NewReader("one"), core.PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	_, err := s.Put(ctx, "a.txt", strings.NewReader("two"), core.PutOptions{})
	if !errors.Is(err, core.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
}

func TestStoreMissingKeys(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	if _, err := s.Head(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("head: expected ErrNotFound, got %v", err)
	}
	if _, _, err := s.Get(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if ok, err := s.Delete(ctx, "missing"); ok || err != nil {
		t.Fatalf("delete missing: %v %v", ok, err)
	}
}

func TestStoreRejectsUnsafeKeys(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	for _, key := range []string{"", "  ", "/etc/passwd", "../escape", "a/../../b", "x.meta", "."} {
		if _, err := s.Put(ctx, key, bytes.NewReader(nil), core.PutOptions{}); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
	if _, err := s.Put(ctx, "dots..are/fine.txt", strings.NewReader("ok"), core.PutOptions{}); err != nil {
		t.Fatalf("dots inside a segment are allowed: %v", err)
	}
}

func TestStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	for _, key := range []string{"b/2.txt", "a/1.txt", "b/1.txt"} {
		if _, err := s.Put(ctx, key, strings.NewReader(key), core.PutOptions{}); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}
	all, err := s.List(ctx, "")
	if err != nil || len(all) != 3 || all[0].Key != "a/1.txt" || all[2].Key != "b/2.txt" {
		t.Fatalf("list all: %+v %v", all, err)
	}
	bs, err := s.List(ctx, "b/")
	if err != nil || len(bs) != 2 {
		t.Fatalf("list prefix: %+v %v", bs, err)
	}
	ok, err := s.Delete(ctx, "b/1.txt")
	if err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	if bs, _ := s.List(ctx, "b/"); len(bs) != 1 {
		t.Fatalf("expected one blob left, got %+v", bs)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestStorePutReadErrorLeavesNothing(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	if _, err := s.Put(ctx, "bad.txt", failingReader{}, core.PutOptions{}); err == nil {
		t.Fatalf("expected read error")
	}
	if _, err := s.Head(ctx, "bad.txt"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("failed put must not leave a blob, got %v", err)
	}
	entries, _ := os.ReadDir(s.Root())
	if len(entries) != 0 {
		t.Fatalf("temporary files left behind: %v", entries)
	}
}

func TestStorePutHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newStore(t).Put(ctx, "a.txt", strings.NewReader("x"), core.PutOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewDefaultsRoot(t *testing.T) {
	t.Chdir(t.TempDir())
	s, err := New("")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if s.Root() != "./pfasscreen-reports" {
		t.Fatalf("root = %q", s.Root())
	}
}
