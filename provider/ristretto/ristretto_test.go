package ristretto

import (
	"bytes"
	"context"
	"testing"
)

func TestDefaultsAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{Metrics: true})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close(ctx)

	ok, err := p.Set(ctx, "prop:ns:Background", []byte("frame"), 0, -1)
	if err != nil || !ok {
		t.Fatalf("Set ok=%v err=%v", ok, err)
	}
	got, hit, err := p.Get(ctx, "prop:ns:Background")
	if err != nil || !hit || !bytes.Equal(got, []byte("frame")) {
		t.Fatalf("Get = %q hit=%v err=%v", got, hit, err)
	}
	if p.Metrics() == nil {
		t.Fatal("metrics enabled but nil")
	}

	if err := p.Del(ctx, "prop:ns:Background"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := p.Get(ctx, "prop:ns:Background"); hit {
		t.Fatal("hit after Del")
	}
}

func TestNegativeConfig(t *testing.T) {
	if _, err := New(Config{MaxCost: -1}); err == nil {
		t.Fatal("expected error")
	}
}
