package wire

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func mustDecode(t *testing.T, b []byte) Entry {
	t.Helper()
	e, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	return e
}

func TestRoundTripEmptyAndNonEmpty(t *testing.T) {
	cases := []struct {
		rev     uint64
		id      byte
		payload []byte
	}{
		{0, 1, nil},
		{42, 2, []byte("ARGB ( 255 / 10 / 20 / 30)")},
		{math.MaxUint64, 5, []byte{0, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		enc := Encode(tc.rev, tc.id, tc.payload)
		e := mustDecode(t, enc)
		if e.Rev != tc.rev {
			t.Fatalf("rev mismatch: got %d want %d", e.Rev, tc.rev)
		}
		if e.CodecID != tc.id {
			t.Fatalf("codec id mismatch: got %d want %d", e.CodecID, tc.id)
		}
		if !bytes.Equal(e.Payload, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", e.Payload, tc.payload)
		}
	}
}

func TestRejectsTrailingBytes(t *testing.T) {
	enc := Encode(7, 1, []byte("x"))
	enc = append(enc, 0xDE, 0xAD)
	if _, err := Decode(enc); err != ErrCorrupt {
		t.Fatalf("expected ErrCorrupt on trailing bytes, got %v", err)
	}
}

func TestCorruptHeadersAndLengths(t *testing.T) {
	enc := Encode(1, 1, []byte("abc"))

	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, err := Decode(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, err := Decode(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	// vlen beyond buffer
	badLen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(badLen[hdrLen-4:hdrLen], 1000)
	if _, err := Decode(badLen); err == nil {
		t.Fatalf("expected error on oversized vlen")
	}

	if _, err := Decode(enc[:hdrLen-1]); err == nil {
		t.Fatalf("expected error on truncated header")
	}
	if _, err := Decode(enc[:len(enc)-1]); err == nil {
		t.Fatalf("expected error on truncated payload")
	}
}

func TestPayloadAliasesInput(t *testing.T) {
	enc := Encode(3, 1, []byte("abc"))
	e := mustDecode(t, enc)
	enc[len(enc)-1] = 'z'
	if string(e.Payload) != "abz" {
		t.Fatalf("expected payload to alias input, got %q", e.Payload)
	}
}
