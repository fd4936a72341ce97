// Package wire collects the fixed-length buffer reads every per-category
// data item repeats: check the remaining length against what the field
// needs, then take exactly that many bytes. Centralising it means every
// category's Decode method reports the same ErrBufferTooShort wording
// instead of each file hand-rolling its own.
package wire

import (
	"bytes"
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
)

// Take reads exactly n bytes from buf, or returns ErrBufferTooShort naming
// the field (what) that was being decoded when the buffer ran out.
func Take(buf *bytes.Buffer, n int, what string) ([]byte, error) {
	if buf.Len() < n {
		return nil, fmt.Errorf("%w: need %d bytes for %s, have %d", asterix.ErrBufferTooShort, n, what, buf.Len())
	}
	return buf.Next(n), nil
}

// TakeByte reads a single byte from buf, or returns ErrBufferTooShort naming
// the field being decoded.
func TakeByte(buf *bytes.Buffer, what string) (byte, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte for %s, have %d", asterix.ErrBufferTooShort, what, buf.Len())
	}
	b, _ := buf.ReadByte()
	return b, nil
}

// Uint16BE reassembles a big-endian 16-bit unsigned value from two bytes.
func Uint16BE(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

// Uint24BE reassembles a big-endian 24-bit unsigned value from three bytes.
func Uint24BE(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// SignExtend24 treats a 24-bit raw value as two's complement and widens it
// to a signed 32-bit int, the pattern every bearing/position item in this
// pack uses for its 3-byte fields.
func SignExtend24(raw uint32) int32 {
	v := int32(raw & 0xFFFFFF)
	if v > 0x7FFFFF {
		v -= 0x1000000
	}
	return v
}

// PutUint16BE appends a big-endian 16-bit value to buf.
func PutUint16BE(buf *bytes.Buffer, v uint16) {
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v))
}

// PutUint24BE appends a big-endian 24-bit value to buf, taking only the
// low 24 bits of v.
func PutUint24BE(buf *bytes.Buffer, v uint32) {
	buf.WriteByte(byte(v >> 16))
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v))
}
