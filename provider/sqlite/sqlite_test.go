package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Provider {
	t.Helper()
	p, err := Open(filepath.Join(t.TempDir(), "nested", "props.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p
}

func TestOpenCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b.db")
	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer p.Close(context.Background())

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p := openTemp(t)

	if _, ok, err := p.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	if ok, err := p.Set(ctx, "k", []byte{0, 1, 2}, 1, 0); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	b, ok, err := p.Get(ctx, "k")
	if err != nil || !ok || string(b) != "\x00\x01\x02" {
		t.Fatalf("Get: %x ok=%v err=%v", b, ok, err)
	}

	// overwrite
	if _, err := p.Set(ctx, "k", []byte("v2"), 1, 0); err != nil {
		t.Fatal(err)
	}
	if b, _, _ := p.Get(ctx, "k"); string(b) != "v2" {
		t.Fatalf("overwrite: got %q", b)
	}

	if err := p.Del(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if err := p.Del(ctx, "k"); err != nil {
		t.Fatalf("deleting a missing key: %v", err)
	}
	if _, ok, _ := p.Get(ctx, "k"); ok {
		t.Fatal("expected miss after Del")
	}
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	p := openTemp(t)

	now := time.Unix(1_700_000_000, 0)
	p.now = func() time.Time { return now }

	if _, err := p.Set(ctx, "short", []byte("x"), 1, time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Set(ctx, "forever", []byte("y"), 1, 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := p.Get(ctx, "short"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := p.Get(ctx, "short"); ok {
		t.Fatal("expected miss after expiry")
	}
	if _, ok, _ := p.Get(ctx, "forever"); !ok {
		t.Fatal("no-TTL entry must survive")
	}
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	p := openTemp(t)

	now := time.Unix(1_700_000_000, 0)
	p.now = func() time.Time { return now }

	for _, k := range []string{"a", "b"} {
		if _, err := p.Set(ctx, k, []byte(k), 1, time.Second); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := p.Set(ctx, "c", []byte("c"), 1, 0); err != nil {
		t.Fatal(err)
	}

	now = now.Add(time.Hour)
	n, err := p.Purge(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("purged %d want 2", n)
	}
}

func TestGetMany(t *testing.T) {
	ctx := context.Background()
	p := openTemp(t)

	now := time.Unix(1_700_000_000, 0)
	p.now = func() time.Time { return now }

	if _, err := p.Set(ctx, "live", []byte("1"), 1, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Set(ctx, "stale", []byte("2"), 1, time.Second); err != nil {
		t.Fatal(err)
	}
	now = now.Add(time.Minute)

	got, err := p.GetMany(ctx, []string{"live", "stale", "absent"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || string(got["live"]) != "1" {
		t.Fatalf("GetMany = %v, want only live", got)
	}

	if got, err := p.GetMany(ctx, nil); err != nil || len(got) != 0 {
		t.Fatalf("GetMany(nil) = %v, %v", got, err)
	}
}
