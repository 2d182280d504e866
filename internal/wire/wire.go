package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version byte = 1
	hdrLen       = 4 + 1 + 8 + 1 + 4
)

var (
	ErrCorrupt = errors.New("argb: corrupt stored property")
	magic4     = [...]byte{'A', 'R', 'G', 'B'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry is a decoded stored property.
type Entry struct {
	Rev     uint64
	CodecID byte
	Payload []byte
}

// Encode frames one stored property:
//
//	magic(4) | ver(1) | rev(u64 be) | codec(1) | vlen(u32 be) | payload(vlen)
func Encode(rev uint64, codecID byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], rev)
	buf.Write(u8[:])

	buf.WriteByte(codecID)

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode parses a frame written by Encode. Payload aliases b.
// Short input, bad magic/version, or any length mismatch is ErrCorrupt.
func Decode(b []byte) (Entry, error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version {
		return Entry{}, ErrCorrupt
	}

	off := 5

	rev := binary.BigEndian.Uint64(b[off : off+8])
	off += 8

	id := b[off]
	off++

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // trailing bytes are corruption too
		return Entry{}, ErrCorrupt
	}

	return Entry{Rev: rev, CodecID: id, Payload: b[off : off+vlen]}, nil
}
