// dataitems/cat062/measured_information.go
package v120

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// MeasuredInformation implements I062/340
// All measured data related to the last report used to update the track
type MeasuredInformation struct {
	// Subfield #1: Sensor Identification
	SensorSAC *uint8 // System Area Code
	SensorSIC *uint8 // System Identification Code

	// Subfield #2: Measured Position (polar coordinates)
	MeasuredRange   *float64 // In nautical miles
	MeasuredAzimuth *float64 // In degrees (0-360)

	// Subfield #3: Measured 3-D Height
	Measured3DHeight *float64 // In feet

	// Subfield #4: Last Measured Mode C code
	LastModeC          *float64 // In flight levels (FL)
	LastModeCValidated bool     // Whether the Mode C was validated
	LastModeCGarbled   bool     // Whether the Mode C was garbled

	// Subfield #5: Last Measured Mode 3/A code
	LastMode3A          *uint16 // Octal Mode 3/A code (0000-7777)
	LastMode3AValidated bool    // Whether the Mode 3/A was validated
	LastMode3AGarbled   bool    // Whether the Mode 3/A was garbled
	LastMode3ASmoothed  bool    // Whether the Mode 3/A was derived from local tracker

	// Subfield #6: Report Type
	ReportType      *uint8 // Type of detection (bits 8-6)
	SimulatedTarget bool   // Whether this is a simulated target
	ReportFromRamp  bool   // Whether this is from a field monitor
	TestTarget      bool   // Whether this is a test target
}

// Decode parses an ASTERIX Category 062 I340 data item from the buffer
func (m *MeasuredInformation) Decode(buf *bytes.Buffer) (int, error) {
	bytesRead := 0

	fspec, err := wire.TakeByte(buf, "measured information FSPEC")
	if err != nil {
		return 0, err
	}
	bytesRead++

	// There are no extensions for I062/340
	if (fspec & 0x01) != 0 {
		return bytesRead, fmt.Errorf("unexpected FX bit set in measured information FSPEC")
	}

	// Subfield #1: Sensor Identification (if bit 8 is set)
	if (fspec & 0x80) != 0 {
		data, err := wire.Take(buf, 2, "sensor identification")
		if err != nil {
			return bytesRead, err
		}
		bytesRead += 2

		sac := data[0]
		sic := data[1]
		m.SensorSAC = &sac
		m.SensorSIC = &sic
	}

	// Subfield #2: Measured Position (if bit 7 is set)
	if (fspec & 0x40) != 0 {
		data, err := wire.Take(buf, 4, "measured position")
		if err != nil {
			return bytesRead, err
		}
		bytesRead += 4

		// LSB = 1/256 NM
		measuredRange := float64(wire.Uint16BE(data[0:2])) / 256.0
		m.MeasuredRange = &measuredRange

		// LSB = 360/2^16 degrees
		measuredAzimuth := float64(wire.Uint16BE(data[2:4])) * 360.0 / 65536.0
		m.MeasuredAzimuth = &measuredAzimuth
	}

	// Subfield #3: Measured 3-D Height (if bit 6 is set)
	if (fspec & 0x20) != 0 {
		data, err := wire.Take(buf, 2, "measured 3-D height")
		if err != nil {
			return bytesRead, err
		}
		bytesRead += 2

		// LSB = 25 feet
		height := float64(wire.Uint16BE(data)) * 25.0
		m.Measured3DHeight = &height
	}

	// Subfield #4: Last Measured Mode C code (if bit 5 is set)
	if (fspec & 0x10) != 0 {
		data, err := wire.Take(buf, 2, "last measured Mode C code")
		if err != nil {
			return bytesRead, err
		}
		bytesRead += 2

		m.LastModeCValidated = (data[0] & 0x80) == 0 // V bit (inverted: 0 = validated)
		m.LastModeCGarbled = (data[0] & 0x40) != 0   // G bit

		var modeCValue int16
		modeCBits := uint16(data[0]&0x3F)<<8 | uint16(data[1])
		if (modeCBits & 0x2000) != 0 {
			modeCValue = -int16(^modeCBits&0x3FFF + 1)
		} else {
			modeCValue = int16(modeCBits)
		}

		// LSB = 1/4 FL
		modeC := float64(modeCValue) * 0.25
		m.LastModeC = &modeC
	}

	// Subfield #5: Last Measured Mode 3/A code (if bit 4 is set)
	if (fspec & 0x08) != 0 {
		data, err := wire.Take(buf, 2, "last measured Mode 3/A code")
		if err != nil {
			return bytesRead, err
		}
		bytesRead += 2

		m.LastMode3AValidated = (data[0] & 0x80) == 0 // V bit (inverted: 0 = validated)
		m.LastMode3AGarbled = (data[0] & 0x40) != 0   // G bit
		m.LastMode3ASmoothed = (data[0] & 0x20) != 0  // L bit

		// 12 bits representing 4 octal digits (A, B, C, D)
		mode3A := uint16(data[0]&0x0F)<<8 | uint16(data[1])
		m.LastMode3A = &mode3A
	}

	// Subfield #6: Report Type (if bit 3 is set)
	if (fspec & 0x04) != 0 {
		b, err := wire.TakeByte(buf, "report type")
		if err != nil {
			return bytesRead, err
		}
		bytesRead++

		reportType := (b & 0xE0) >> 5 // Bits 8-6
		m.ReportType = &reportType
		m.SimulatedTarget = (b & 0x10) != 0 // Bit 5
		m.ReportFromRamp = (b & 0x08) != 0  // Bit 4
		m.TestTarget = (b & 0x04) != 0      // Bit 3
		// Bits 2-1 are spare
	}

	return bytesRead, nil
}

// Encode serializes the measured information into the buffer
func (m *MeasuredInformation) Encode(buf *bytes.Buffer) (int, error) {
	bytesWritten := 0

	hasSensor := m.SensorSAC != nil && m.SensorSIC != nil
	hasPosition := m.MeasuredRange != nil && m.MeasuredAzimuth != nil
	hasHeight := m.Measured3DHeight != nil
	hasModeC := m.LastModeC != nil
	hasMode3A := m.LastMode3A != nil
	hasReportType := m.ReportType != nil

	fspec := byte(0)
	if hasSensor {
		fspec |= 0x80 // Bit 8: Sensor Identification
	}
	if hasPosition {
		fspec |= 0x40 // Bit 7: Measured Position
	}
	if hasHeight {
		fspec |= 0x20 // Bit 6: Measured 3-D Height
	}
	if hasModeC {
		fspec |= 0x10 // Bit 5: Last Measured Mode C code
	}
	if hasMode3A {
		fspec |= 0x08 // Bit 4: Last Measured Mode 3/A code
	}
	if hasReportType {
		fspec |= 0x04 // Bit 3: Report Type
	}

	if err := buf.WriteByte(fspec); err != nil {
		return 0, fmt.Errorf("writing measured information FSPEC: %w", err)
	}
	bytesWritten++

	if hasSensor {
		n, err := buf.Write([]byte{*m.SensorSAC, *m.SensorSIC})
		if err != nil {
			return bytesWritten, fmt.Errorf("writing sensor identification: %w", err)
		}
		bytesWritten += n
	}

	if hasPosition {
		rangeBits := uint16(*m.MeasuredRange * 256.0)
		if *m.MeasuredRange >= 256.0 {
			rangeBits = 0xFFFF // Maximum value (256 NM)
		}

		azimuthBits := uint16(*m.MeasuredAzimuth*65536.0/360.0) & 0xFFFF

		wire.PutUint16BE(buf, rangeBits)
		wire.PutUint16BE(buf, azimuthBits)
		bytesWritten += 4
	}

	if hasHeight {
		heightBits := uint16(*m.Measured3DHeight / 25.0)
		wire.PutUint16BE(buf, heightBits)
		bytesWritten += 2
	}

	if hasModeC {
		modeCValue := int16(*m.LastModeC * 4.0)

		firstByte := byte(0)
		if !m.LastModeCValidated {
			firstByte |= 0x80 // V bit (1 = not validated)
		}
		if m.LastModeCGarbled {
			firstByte |= 0x40 // G bit
		}

		var modeCBits uint16
		if modeCValue < 0 {
			modeCBits = uint16(^(-modeCValue) + 1)
			modeCBits = (modeCBits & 0x1FFF) | 0x2000
		} else {
			modeCBits = uint16(modeCValue)
		}

		firstByte |= byte((modeCBits >> 8) & 0x3F)

		n, err := buf.Write([]byte{firstByte, byte(modeCBits)})
		if err != nil {
			return bytesWritten, fmt.Errorf("writing last measured Mode C code: %w", err)
		}
		bytesWritten += n
	}

	if hasMode3A {
		firstByte := byte(0)
		if !m.LastMode3AValidated {
			firstByte |= 0x80 // V bit (1 = not validated)
		}
		if m.LastMode3AGarbled {
			firstByte |= 0x40 // G bit
		}
		if m.LastMode3ASmoothed {
			firstByte |= 0x20 // L bit
		}

		firstByte |= byte((*m.LastMode3A >> 8) & 0x0F)

		n, err := buf.Write([]byte{firstByte, byte(*m.LastMode3A)})
		if err != nil {
			return bytesWritten, fmt.Errorf("writing last measured Mode 3/A code: %w", err)
		}
		bytesWritten += n
	}

	if hasReportType {
		reportTypeByte := byte((*m.ReportType & 0x07) << 5) // Bits 8-6: Report Type

		if m.SimulatedTarget {
			reportTypeByte |= 0x10 // Bit 5: SIM
		}
		if m.ReportFromRamp {
			reportTypeByte |= 0x08 // Bit 4: RAB
		}
		if m.TestTarget {
			reportTypeByte |= 0x04 // Bit 3: TST
		}

		if err := buf.WriteByte(reportTypeByte); err != nil {
			return bytesWritten, fmt.Errorf("writing report type: %w", err)
		}
		bytesWritten++
	}

	return bytesWritten, nil
}

// String returns a human-readable representation of the measured information
func (m *MeasuredInformation) String() string {
	parts := []string{}

	if m.SensorSAC != nil && m.SensorSIC != nil {
		parts = append(parts, fmt.Sprintf("Sensor: %d/%d", *m.SensorSAC, *m.SensorSIC))
	}

	if m.MeasuredRange != nil && m.MeasuredAzimuth != nil {
		parts = append(parts, fmt.Sprintf("Pos: %.2f NM / %.2f°", *m.MeasuredRange, *m.MeasuredAzimuth))
	}

	if m.Measured3DHeight != nil {
		parts = append(parts, fmt.Sprintf("Height: %.0f ft", *m.Measured3DHeight))
	}

	if m.LastModeC != nil {
		validStr := ""
		if !m.LastModeCValidated {
			validStr = "[not validated]"
		}
		if m.LastModeCGarbled {
			validStr += "[garbled]"
		}
		parts = append(parts, fmt.Sprintf("Mode C: FL %.2f %s", *m.LastModeC, validStr))
	}

	if m.LastMode3A != nil {
		a := (*m.LastMode3A >> 9) & 0x7
		b := (*m.LastMode3A >> 6) & 0x7
		c := (*m.LastMode3A >> 3) & 0x7
		d := *m.LastMode3A & 0x7

		validStr := ""
		if !m.LastMode3AValidated {
			validStr = "[not validated]"
		}
		if m.LastMode3AGarbled {
			validStr += "[garbled]"
		}
		if m.LastMode3ASmoothed {
			validStr += "[smoothed]"
		}

		parts = append(parts, fmt.Sprintf("Mode 3/A: %o%o%o%o %s", a, b, c, d, validStr))
	}

	if m.ReportType != nil {
		reportTypes := []string{
			"No detection",
			"Single PSR",
			"Single SSR",
			"SSR+PSR",
			"Mode S All-Call",
			"Mode S Roll-Call",
			"Mode S All-Call+PSR",
			"Mode S Roll-Call+PSR",
		}

		typeStr := "Unknown"
		if int(*m.ReportType) < len(reportTypes) {
			typeStr = reportTypes[*m.ReportType]
		}

		flags := ""
		if m.SimulatedTarget {
			flags += "[simulated]"
		}
		if m.ReportFromRamp {
			flags += "[field monitor]"
		}
		if m.TestTarget {
			flags += "[test]"
		}

		parts = append(parts, fmt.Sprintf("Type: %s %s", typeStr, flags))
	}

	if len(parts) == 0 {
		return "MeasuredInformation[empty]"
	}

	return fmt.Sprintf("MeasuredInformation[%s]", strings.Join(parts, ", "))
}

// Validate performs validation on the measured information
func (m *MeasuredInformation) Validate() error {
	if m.MeasuredRange != nil && (*m.MeasuredRange < 0 || *m.MeasuredRange > 256) {
		return fmt.Errorf("measured range out of range [0,256]: %.2f NM", *m.MeasuredRange)
	}

	if m.MeasuredAzimuth != nil && (*m.MeasuredAzimuth < 0 || *m.MeasuredAzimuth >= 360) {
		return fmt.Errorf("measured azimuth out of range [0,360): %.2f°", *m.MeasuredAzimuth)
	}

	if m.LastModeC != nil && (*m.LastModeC < -12 || *m.LastModeC > 1270) {
		return fmt.Errorf("Mode C flight level out of range [-12,1270]: %.2f", *m.LastModeC)
	}

	if m.LastMode3A != nil && *m.LastMode3A > 0x0FFF {
		return fmt.Errorf("Mode 3/A code exceeds 12-bit limit: %04X", *m.LastMode3A)
	}

	if m.ReportType != nil && *m.ReportType > 7 {
		return fmt.Errorf("report type out of range [0,7]: %d", *m.ReportType)
	}

	return nil
}
