package argb

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

type themeDoc struct {
	Background Field `json:"background" yaml:"background"`
	Border     Field `json:"border" yaml:"border"`
}

func TestFieldJSON(t *testing.T) {
	doc := themeDoc{Background: Field{Color: New(255, 10, 20, 30)}}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"background":"ARGB ( 255 / 10 / 20 / 30)","border":"Empty"}`
	if string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}

	var back themeDoc
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.Background.Get() != Color(New(255, 10, 20, 30)) || back.Border.Get() != Empty {
		t.Fatalf("back=%+v", back)
	}
}

func TestFieldYAML(t *testing.T) {
	src := "background: argb(1/2/3/4)\nborder: EMPTY\n"
	var doc themeDoc
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Background.Get() != Color(New(1, 2, 3, 4)) || doc.Border.Get() != Empty {
		t.Fatalf("doc=%+v", doc)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	var back themeDoc
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-read %q: %v", out, err)
	}
	if back != doc {
		t.Fatalf("yaml round trip: got %+v want %+v", back, doc)
	}
}

func TestFieldRejectsBadText(t *testing.T) {
	var doc themeDoc
	err := json.Unmarshal([]byte(`{"background":"ARGB ( 1 / 2 / 3 / 999)"}`), &doc)
	if !errors.Is(err, ErrChannelOutOfRange) {
		t.Fatalf("want ErrChannelOutOfRange, got %v", err)
	}
}
