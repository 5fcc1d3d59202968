// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hts221

import (
	"encoding/binary"

	"periph.io/x/conn/v3/i2c"
)

// Fixed-point scaling of the factory calibration values. The calibrated
// temperature points are stored as °C×8, the humidity points as %RH×2.
const (
	temperatureScale = 8.0
	humidityScale    = 2.0
)

// calibrationLine is the line through the two factory reference points of one
// quantity. The interpolation runs in float32 so that code and value deltas
// in the thousands cannot overflow or truncate.
type calibrationLine struct {
	x0, y0 float32
	x1, y1 float32
	scale  float32
}

// newCalibrationLine validates the reference points. Two points with the same
// raw code describe no line and would otherwise divide by zero.
func newCalibrationLine(x0, y0, x1, y1 int16, scale float32, quantity string) (calibrationLine, error) {
	if x0 == x1 {
		return calibrationLine{}, &InvalidCalibrationError{Quantity: quantity}
	}
	return calibrationLine{
		x0: float32(x0), y0: float32(y0),
		x1: float32(x1), y1: float32(y1),
		scale: scale,
	}, nil
}

// interpolate maps a raw sensor code onto the calibration line and removes
// the fixed-point scaling. Codes outside [x0,x1] follow the same line.
func (l calibrationLine) interpolate(code int16) float32 {
	c := float32(code)
	return (l.y0 + (c-l.x0)*(l.y1-l.y0)/(l.x1-l.x0)) / l.scale
}

// calibration holds the interpolation state derived from the factory
// calibration block. It is computed once during Init and never changes.
type calibration struct {
	temperature calibrationLine
	humidity    calibrationLine
}

func (c *calibration) calibratedTemperature(code int16) Temperature[Celsius] {
	return NewTemperature[Celsius](c.temperature.interpolate(code))
}

func (c *calibration) calibratedHumidity(code int16) float32 {
	return c.humidity.interpolate(code)
}

// readCalibration fetches the factory calibration block (0x30..0x3F) in a
// single auto-increment transaction and derives the interpolation lines.
func readCalibration(d *i2c.Dev) (*calibration, error) {
	var buf [16]byte
	if err := d.Tx([]byte{regCalibration | regAutoIncrement}, buf[:]); err != nil {
		return nil, err
	}
	return decodeCalibration(buf)
}

// decodeCalibration unpacks the raw calibration block. Offsets are relative
// to register 0x30:
//
//	0x00 H0_rH_x2      0x01 H1_rH_x2
//	0x02 T0_degC_x8    0x03 T1_degC_x8   0x05 T1/T0 msb (2 bits each)
//	0x06 H0_T0_OUT     0x0A H1_T0_OUT
//	0x0C T0_OUT        0x0E T1_OUT
//
// The 16-bit raw codes are little-endian; the calibrated temperature points
// are 10 bits wide with their two top bits packed into the msb register.
func decodeCalibration(buf [16]byte) (*calibration, error) {
	h0rH := int16(buf[0x00])
	h1rH := int16(buf[0x01])
	t0degC := int16(buf[0x02]) | int16(buf[0x05]&0b0011)<<8
	t1degC := int16(buf[0x03]) | int16(buf[0x05]&0b1100)<<6
	h0Out := int16(binary.LittleEndian.Uint16(buf[0x06:0x08]))
	h1Out := int16(binary.LittleEndian.Uint16(buf[0x0A:0x0C]))
	t0Out := int16(binary.LittleEndian.Uint16(buf[0x0C:0x0E]))
	t1Out := int16(binary.LittleEndian.Uint16(buf[0x0E:0x10]))

	temperature, err := newCalibrationLine(t0Out, t0degC, t1Out, t1degC, temperatureScale, "temperature")
	if err != nil {
		return nil, err
	}
	humidity, err := newCalibrationLine(h0Out, h0rH, h1Out, h1rH, humidityScale, "humidity")
	if err != nil {
		return nil, err
	}
	return &calibration{temperature: temperature, humidity: humidity}, nil
}
