// dataitems/cat062/estimated_accuracies.go
package v120

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// EstimatedAccuracies implements I062/500
// Contains the estimated accuracy for various parameters of the track
type EstimatedAccuracies struct {
	// Subfield #1: Estimated Accuracy Of Track Position (Cartesian)
	// Standard deviation in meters
	PositionAccuracyX *float64 // X component accuracy
	PositionAccuracyY *float64 // Y component accuracy

	// Subfield #2: XY Covariance Component
	// XY covariance component in two's complement form
	Covariance *float64

	// Subfield #3: Estimated Accuracy Of Track Position (WGS-84)
	// Standard deviation in degrees
	PositionAccuracyLat *float64 // Latitude component accuracy
	PositionAccuracyLon *float64 // Longitude component accuracy

	// Subfield #4: Estimated Accuracy Of Calculated Track Geometric Altitude
	// Standard deviation in feet
	GeometricAltitudeAccuracy *float64

	// Subfield #5: Estimated Accuracy Of Calculated Track Barometric Altitude
	// Standard deviation in flight levels
	BarometricAltitudeAccuracy *float64

	// Subfield #6: Estimated Accuracy Of Track Velocity (Cartesian)
	// Standard deviation in meters per second
	VelocityAccuracyX *float64 // X component accuracy
	VelocityAccuracyY *float64 // Y component accuracy

	// Subfield #7: Estimated Accuracy Of Acceleration (Cartesian)
	// Standard deviation in meters per second squared
	AccelerationAccuracyX *float64 // X component accuracy
	AccelerationAccuracyY *float64 // Y component accuracy

	// Subfield #8: Estimated Accuracy Of Rate Of Climb/Descent
	// Standard deviation in feet per minute
	RateOfClimbAccuracy *float64
}

// Decode parses an ASTERIX Category 062 I500 data item from the buffer
func (e *EstimatedAccuracies) Decode(buf *bytes.Buffer) (int, error) {
	bytesRead := 0

	fspec1, err := wire.TakeByte(buf, "estimated accuracies FSPEC")
	if err != nil {
		return 0, err
	}
	bytesRead++

	hasSecondFSPEC := (fspec1 & 0x01) != 0
	var fspec2 byte
	if hasSecondFSPEC {
		fspec2, err = wire.TakeByte(buf, "estimated accuracies second FSPEC")
		if err != nil {
			return bytesRead, err
		}
		bytesRead++

		if (fspec2 & 0x01) != 0 {
			return bytesRead, fmt.Errorf("unexpected extension in second FSPEC byte")
		}
	}

	// Subfield #1: Estimated Accuracy Of Track Position (Cartesian)
	if (fspec1 & 0x80) != 0 {
		data, err := wire.Take(buf, 4, "position accuracy")
		if err != nil {
			return bytesRead, err
		}
		bytesRead += 4

		xAcc := float64(wire.Uint16BE(data[0:2])) * 0.5 // LSB = 0.5m
		e.PositionAccuracyX = &xAcc

		yAcc := float64(wire.Uint16BE(data[2:4])) * 0.5 // LSB = 0.5m
		e.PositionAccuracyY = &yAcc
	}

	// Subfield #2: XY Covariance
	if (fspec1 & 0x40) != 0 {
		data, err := wire.Take(buf, 2, "XY covariance")
		if err != nil {
			return bytesRead, err
		}
		bytesRead += 2

		covBits := wire.Uint16BE(data)
		var covValue int16
		if (covBits & 0x8000) != 0 {
			covValue = -int16(^covBits + 1)
		} else {
			covValue = int16(covBits)
		}

		cov := float64(covValue) * 0.5 // LSB = 0.5m
		e.Covariance = &cov
	}

	// Subfield #3: Estimated Accuracy Of Track Position (WGS-84)
	if (fspec1 & 0x20) != 0 {
		data, err := wire.Take(buf, 4, "WGS-84 position accuracy")
		if err != nil {
			return bytesRead, err
		}
		bytesRead += 4

		latAcc := float64(wire.Uint16BE(data[0:2])) * 180.0 / float64(1<<25) // LSB = 180/2^25 degrees
		e.PositionAccuracyLat = &latAcc

		lonAcc := float64(wire.Uint16BE(data[2:4])) * 180.0 / float64(1<<25) // LSB = 180/2^25 degrees
		e.PositionAccuracyLon = &lonAcc
	}

	// Subfield #4: Estimated Accuracy Of Calculated Track Geometric Altitude
	if (fspec1 & 0x10) != 0 {
		b, err := wire.TakeByte(buf, "geometric altitude accuracy")
		if err != nil {
			return bytesRead, err
		}
		bytesRead++

		altAcc := float64(b) * 6.25 // LSB = 6.25 feet
		e.GeometricAltitudeAccuracy = &altAcc
	}

	// Subfield #5: Estimated Accuracy Of Calculated Track Barometric Altitude
	if (fspec1 & 0x08) != 0 {
		b, err := wire.TakeByte(buf, "barometric altitude accuracy")
		if err != nil {
			return bytesRead, err
		}
		bytesRead++

		altAcc := float64(b) * 0.25 // LSB = 1/4 FL
		e.BarometricAltitudeAccuracy = &altAcc
	}

	// Subfield #6: Estimated Accuracy Of Track Velocity (Cartesian)
	if (fspec1 & 0x04) != 0 {
		data, err := wire.Take(buf, 2, "velocity accuracy")
		if err != nil {
			return bytesRead, err
		}
		bytesRead += 2

		xAcc := float64(data[0]) * 0.25 // LSB = 0.25m/s
		e.VelocityAccuracyX = &xAcc

		yAcc := float64(data[1]) * 0.25 // LSB = 0.25m/s
		e.VelocityAccuracyY = &yAcc
	}

	// Subfield #7: Estimated Accuracy Of Acceleration (Cartesian)
	if (fspec1 & 0x02) != 0 {
		data, err := wire.Take(buf, 2, "acceleration accuracy")
		if err != nil {
			return bytesRead, err
		}
		bytesRead += 2

		xAcc := float64(data[0]) * 0.25 // LSB = 0.25m/s²
		e.AccelerationAccuracyX = &xAcc

		yAcc := float64(data[1]) * 0.25 // LSB = 0.25m/s²
		e.AccelerationAccuracyY = &yAcc
	}

	// The second FSPEC byte contains one subfield
	if hasSecondFSPEC {
		// Subfield #8: Estimated Accuracy Of Rate Of Climb/Descent
		if (fspec2 & 0x80) != 0 {
			b, err := wire.TakeByte(buf, "rate of climb accuracy")
			if err != nil {
				return bytesRead, err
			}
			bytesRead++

			rocAcc := float64(b) * 6.25 // LSB = 6.25 feet/minute
			e.RateOfClimbAccuracy = &rocAcc
		}
	}

	return bytesRead, nil
}

// Encode serializes the estimated accuracies into the buffer
func (e *EstimatedAccuracies) Encode(buf *bytes.Buffer) (int, error) {
	bytesWritten := 0

	hasPosition := e.PositionAccuracyX != nil && e.PositionAccuracyY != nil
	hasCovariance := e.Covariance != nil
	hasWGS84Position := e.PositionAccuracyLat != nil && e.PositionAccuracyLon != nil
	hasGeoAltitude := e.GeometricAltitudeAccuracy != nil
	hasBaroAltitude := e.BarometricAltitudeAccuracy != nil
	hasVelocity := e.VelocityAccuracyX != nil && e.VelocityAccuracyY != nil
	hasAcceleration := e.AccelerationAccuracyX != nil && e.AccelerationAccuracyY != nil
	hasRateOfClimb := e.RateOfClimbAccuracy != nil

	needSecondByte := hasRateOfClimb

	fspec1 := byte(0)
	if hasPosition {
		fspec1 |= 0x80 // Bit 8: Position Accuracy
	}
	if hasCovariance {
		fspec1 |= 0x40 // Bit 7: Covariance
	}
	if hasWGS84Position {
		fspec1 |= 0x20 // Bit 6: WGS84 Position Accuracy
	}
	if hasGeoAltitude {
		fspec1 |= 0x10 // Bit 5: Geometric Altitude Accuracy
	}
	if hasBaroAltitude {
		fspec1 |= 0x08 // Bit 4: Barometric Altitude Accuracy
	}
	if hasVelocity {
		fspec1 |= 0x04 // Bit 3: Velocity Accuracy
	}
	if hasAcceleration {
		fspec1 |= 0x02 // Bit 2: Acceleration Accuracy
	}
	if needSecondByte {
		fspec1 |= 0x01 // Bit 1: FX
	}

	if err := buf.WriteByte(fspec1); err != nil {
		return 0, fmt.Errorf("writing first FSPEC byte: %w", err)
	}
	bytesWritten++

	if needSecondByte {
		fspec2 := byte(0)
		if hasRateOfClimb {
			fspec2 |= 0x80 // Bit 8: Rate of Climb Accuracy
		}

		if err := buf.WriteByte(fspec2); err != nil {
			return bytesWritten, fmt.Errorf("writing second FSPEC byte: %w", err)
		}
		bytesWritten++
	}

	// Subfield #1: Estimated Accuracy Of Track Position (Cartesian)
	if hasPosition {
		xAccBits := uint16(*e.PositionAccuracyX / 0.5)
		yAccBits := uint16(*e.PositionAccuracyY / 0.5)

		wire.PutUint16BE(buf, xAccBits)
		wire.PutUint16BE(buf, yAccBits)
		bytesWritten += 4
	}

	// Subfield #2: XY Covariance
	if hasCovariance {
		var covBits uint16
		covValue := int16(*e.Covariance / 0.5)
		if covValue < 0 {
			covBits = uint16(^(-covValue) + 1)
		} else {
			covBits = uint16(covValue)
		}

		wire.PutUint16BE(buf, covBits)
		bytesWritten += 2
	}

	// Subfield #3: Estimated Accuracy Of Track Position (WGS-84)
	if hasWGS84Position {
		latAccBits := uint16(*e.PositionAccuracyLat * float64(1<<25) / 180.0)
		lonAccBits := uint16(*e.PositionAccuracyLon * float64(1<<25) / 180.0)

		wire.PutUint16BE(buf, latAccBits)
		wire.PutUint16BE(buf, lonAccBits)
		bytesWritten += 4
	}

	// Subfield #4: Estimated Accuracy Of Calculated Track Geometric Altitude
	if hasGeoAltitude {
		altAccBits := uint8(*e.GeometricAltitudeAccuracy / 6.25)

		if err := buf.WriteByte(altAccBits); err != nil {
			return bytesWritten, fmt.Errorf("writing geometric altitude accuracy: %w", err)
		}
		bytesWritten++
	}

	// Subfield #5: Estimated Accuracy Of Calculated Track Barometric Altitude
	if hasBaroAltitude {
		altAccBits := uint8(*e.BarometricAltitudeAccuracy / 0.25)

		if err := buf.WriteByte(altAccBits); err != nil {
			return bytesWritten, fmt.Errorf("writing barometric altitude accuracy: %w", err)
		}
		bytesWritten++
	}

	// Subfield #6: Estimated Accuracy Of Track Velocity (Cartesian)
	if hasVelocity {
		xAccBits := uint8(*e.VelocityAccuracyX / 0.25)
		yAccBits := uint8(*e.VelocityAccuracyY / 0.25)

		n, err := buf.Write([]byte{xAccBits, yAccBits})
		if err != nil {
			return bytesWritten, fmt.Errorf("writing velocity accuracy: %w", err)
		}
		bytesWritten += n
	}

	// Subfield #7: Estimated Accuracy Of Acceleration (Cartesian)
	if hasAcceleration {
		xAccBits := uint8(*e.AccelerationAccuracyX / 0.25)
		yAccBits := uint8(*e.AccelerationAccuracyY / 0.25)

		n, err := buf.Write([]byte{xAccBits, yAccBits})
		if err != nil {
			return bytesWritten, fmt.Errorf("writing acceleration accuracy: %w", err)
		}
		bytesWritten += n
	}

	// Subfield #8: Estimated Accuracy Of Rate Of Climb/Descent
	if hasRateOfClimb {
		rocAccBits := uint8(*e.RateOfClimbAccuracy / 6.25)

		if err := buf.WriteByte(rocAccBits); err != nil {
			return bytesWritten, fmt.Errorf("writing rate of climb accuracy: %w", err)
		}
		bytesWritten++
	}

	return bytesWritten, nil
}

// String returns a human-readable representation of the estimated accuracies
func (e *EstimatedAccuracies) String() string {
	parts := []string{}

	if e.PositionAccuracyX != nil && e.PositionAccuracyY != nil {
		parts = append(parts, fmt.Sprintf("PosXY: %.1fm/%.1fm", *e.PositionAccuracyX, *e.PositionAccuracyY))
	}

	if e.Covariance != nil {
		parts = append(parts, fmt.Sprintf("Cov: %.1fm", *e.Covariance))
	}

	if e.PositionAccuracyLat != nil && e.PositionAccuracyLon != nil {
		latMeter := *e.PositionAccuracyLat * 111000
		lonMeter := *e.PositionAccuracyLon * 111000
		parts = append(parts, fmt.Sprintf("PosLatLon: %.1fm/%.1fm", latMeter, lonMeter))
	}

	if e.GeometricAltitudeAccuracy != nil {
		parts = append(parts, fmt.Sprintf("GeoAlt: %.1fft", *e.GeometricAltitudeAccuracy))
	}

	if e.BarometricAltitudeAccuracy != nil {
		parts = append(parts, fmt.Sprintf("BaroAlt: FL%.2f", *e.BarometricAltitudeAccuracy))
	}

	if e.VelocityAccuracyX != nil && e.VelocityAccuracyY != nil {
		parts = append(parts, fmt.Sprintf("Vel: %.2fm/s", max(*e.VelocityAccuracyX, *e.VelocityAccuracyY)))
	}

	if e.AccelerationAccuracyX != nil && e.AccelerationAccuracyY != nil {
		parts = append(parts, fmt.Sprintf("Acc: %.2fm/s²", max(*e.AccelerationAccuracyX, *e.AccelerationAccuracyY)))
	}

	if e.RateOfClimbAccuracy != nil {
		parts = append(parts, fmt.Sprintf("ROC: %.1fft/min", *e.RateOfClimbAccuracy))
	}

	if len(parts) == 0 {
		return "EstimatedAccuracies[empty]"
	}

	return fmt.Sprintf("EstimatedAccuracies[%s]", strings.Join(parts, ", "))
}

// Validate performs validation on the estimated accuracies
func (e *EstimatedAccuracies) Validate() error {
	if e.PositionAccuracyX != nil && *e.PositionAccuracyX < 0 {
		return fmt.Errorf("position accuracy X cannot be negative: %.2f", *e.PositionAccuracyX)
	}

	if e.PositionAccuracyY != nil && *e.PositionAccuracyY < 0 {
		return fmt.Errorf("position accuracy Y cannot be negative: %.2f", *e.PositionAccuracyY)
	}

	if e.PositionAccuracyLat != nil && *e.PositionAccuracyLat < 0 {
		return fmt.Errorf("position accuracy latitude cannot be negative: %.8f", *e.PositionAccuracyLat)
	}

	if e.PositionAccuracyLon != nil && *e.PositionAccuracyLon < 0 {
		return fmt.Errorf("position accuracy longitude cannot be negative: %.8f", *e.PositionAccuracyLon)
	}

	if e.GeometricAltitudeAccuracy != nil && *e.GeometricAltitudeAccuracy < 0 {
		return fmt.Errorf("geometric altitude accuracy cannot be negative: %.2f", *e.GeometricAltitudeAccuracy)
	}

	if e.BarometricAltitudeAccuracy != nil && *e.BarometricAltitudeAccuracy < 0 {
		return fmt.Errorf("barometric altitude accuracy cannot be negative: %.2f", *e.BarometricAltitudeAccuracy)
	}

	if e.VelocityAccuracyX != nil && *e.VelocityAccuracyX < 0 {
		return fmt.Errorf("velocity accuracy X cannot be negative: %.2f", *e.VelocityAccuracyX)
	}

	if e.VelocityAccuracyY != nil && *e.VelocityAccuracyY < 0 {
		return fmt.Errorf("velocity accuracy Y cannot be negative: %.2f", *e.VelocityAccuracyY)
	}

	if e.AccelerationAccuracyX != nil && *e.AccelerationAccuracyX < 0 {
		return fmt.Errorf("acceleration accuracy X cannot be negative: %.2f", *e.AccelerationAccuracyX)
	}

	if e.AccelerationAccuracyY != nil && *e.AccelerationAccuracyY < 0 {
		return fmt.Errorf("acceleration accuracy Y cannot be negative: %.2f", *e.AccelerationAccuracyY)
	}

	if e.RateOfClimbAccuracy != nil && *e.RateOfClimbAccuracy < 0 {
		return fmt.Errorf("rate of climb accuracy cannot be negative: %.2f", *e.RateOfClimbAccuracy)
	}

	return nil
}

// max returns the maximum of two float64 values
func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
