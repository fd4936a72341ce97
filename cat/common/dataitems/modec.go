// dataitems/common/modec.go
package common

// Gillham/Gray-code lookup tables for SSR mode C decoding. These are the
// exact tables used by the reference decoder; do not re-derive them from a
// naive Gray-code formula, the mapping is not a pure reflected-binary code.
var (
	ggTable = [8]int16{0, 7, 3, 4, 1, 6, 2, 5}
	gzTable = [8]int16{7, 0, 4, 3, 6, 1, 5, 2}
	pgTable = [8]int16{modeCNotAvailable, 4, 2, 3, 0, modeCNotAvailable, 1, modeCNotAvailable}
	pzTable = [8]int16{modeCNotAvailable, 0, 2, 1, 4, modeCNotAvailable, 3, modeCNotAvailable}
)

const modeCNotAvailable = -30000

// ModeCToAltitude converts a raw 12-bit SSR mode C Gillham code to an
// altitude in 100s of feet. mc carries the Gillham bits packed the way they
// appear on the wire (C1 A1 C2 A2 C4 A4 -- B1 D1 B2 D2 B4 D4, D1 forced to
// zero). Returns false if mc is not an allowable mode C code.
func ModeCToAltitude(mc uint16) (int16, bool) {
	if mc&0xf000 != 0 {
		return 0, false
	}
	if mc&0x0001 != 0 {
		return 0, false
	}

	a := (mc & 0x0e00) >> 9
	b := (mc & 0x01c0) >> 6
	c := (mc & 0x0038) >> 3
	d := mc & 0x0007

	x := ggTable[d]
	var y int16
	if x&0x0001 != 0 {
		y = gzTable[a]
	} else {
		y = ggTable[a]
	}
	var z int16
	if y&0x0001 != 0 {
		z = gzTable[b]
	} else {
		z = ggTable[b]
	}
	var v int16
	if z&0x0001 != 0 {
		v = pzTable[c]
	} else {
		v = pgTable[c]
	}

	if v == modeCNotAvailable {
		return 0, false
	}

	alt := x*320 + y*40 + z*5 + v - 12
	return alt, true
}
