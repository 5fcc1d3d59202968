// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hts221

import (
	"encoding/binary"

	"periph.io/x/conn/v3/i2c"
)

// Register addresses. Multi-byte registers are read with the auto-increment
// bit set on the index byte so the device advances the address itself.
const (
	regWhoAmI         byte = 0x0F
	regCtrl1          byte = 0x20
	regCtrl2          byte = 0x21
	regCtrl3          byte = 0x22
	regStatus         byte = 0x27
	regHumidityOut    byte = 0x28
	regTemperatureOut byte = 0x2A
	regCalibration    byte = 0x30

	regAutoIncrement byte = 0x80

	// Fixed content of the WHO_AM_I register.
	whoAmIValue byte = 0xBC
)

// DataRate selects the output data rate programmed into CTRL_REG1.
type DataRate byte

const (
	// RateOneShot is the device's one-shot mode. The driver runs the device
	// in continuous conversion, so a zero DataRate selects RateOneHertz
	// instead.
	RateOneShot DataRate = iota
	// RateOneHertz samples once per second.
	RateOneHertz
	// RateSevenHertz samples 7 times per second.
	RateSevenHertz
	// RateTwelveHalfHertz samples 12.5 times per second.
	RateTwelveHalfHertz
)

const (
	ctrl1PowerActive     byte = 1 << 7
	ctrl1DataRateShift        = 4
	ctrl1DataRateMask    byte = 0b0111 << ctrl1DataRateShift
	ctrl1BlockDataUpdate byte = 1 << 2

	ctrl2Boot    byte = 1 << 7
	ctrl2Heater  byte = 1 << 1
	ctrl2OneShot byte = 1 << 0

	ctrl3DataReadyActiveLow byte = 1 << 7
	ctrl3DataReadyEnable    byte = 1 << 2

	statusTemperatureAvailable byte = 1 << 0
	statusHumidityAvailable    byte = 1 << 1
)

// readRegister issues a combined write-then-read transaction for a single
// byte register.
func readRegister(d *i2c.Dev, reg byte) (byte, error) {
	var buf [1]byte
	if err := d.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func writeRegister(d *i2c.Dev, reg, value byte) error {
	return d.Tx([]byte{reg, value}, nil)
}

// readSample returns the signed 16-bit little-endian content of one of the
// output registers (regHumidityOut or regTemperatureOut).
func readSample(d *i2c.Dev, reg byte) (int16, error) {
	var buf [2]byte
	if err := d.Tx([]byte{reg | regAutoIncrement}, buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(buf[:])), nil
}

func readWhoAmI(d *i2c.Dev) (byte, error) {
	return readRegister(d, regWhoAmI)
}

// ctrl1 is the decoded view of CTRL_REG1.
type ctrl1 struct {
	powerActive     bool
	dataRate        DataRate
	blockDataUpdate bool
}

func decodeCtrl1(b byte) ctrl1 {
	return ctrl1{
		powerActive:     b&ctrl1PowerActive != 0,
		dataRate:        DataRate((b & ctrl1DataRateMask) >> ctrl1DataRateShift),
		blockDataUpdate: b&ctrl1BlockDataUpdate != 0,
	}
}

func (c ctrl1) encode() byte {
	var b byte
	if c.powerActive {
		b |= ctrl1PowerActive
	}
	b |= byte(c.dataRate) << ctrl1DataRateShift & ctrl1DataRateMask
	if c.blockDataUpdate {
		b |= ctrl1BlockDataUpdate
	}
	return b
}

func readCtrl1(d *i2c.Dev) (ctrl1, error) {
	b, err := readRegister(d, regCtrl1)
	return decodeCtrl1(b), err
}

func writeCtrl1(d *i2c.Dev, c ctrl1) error {
	return writeRegister(d, regCtrl1, c.encode())
}

// modifyCtrl1 is the only mutation path for CTRL_REG1: it reads the current
// value, lets the closure adjust the decoded view and writes it back.
func modifyCtrl1(d *i2c.Dev, f func(*ctrl1)) error {
	c, err := readCtrl1(d)
	if err != nil {
		return err
	}
	f(&c)
	return writeCtrl1(d, c)
}

// ctrl2 is the decoded view of CTRL_REG2.
type ctrl2 struct {
	boot    bool
	heater  bool
	oneShot bool
}

func decodeCtrl2(b byte) ctrl2 {
	return ctrl2{
		boot:    b&ctrl2Boot != 0,
		heater:  b&ctrl2Heater != 0,
		oneShot: b&ctrl2OneShot != 0,
	}
}

func (c ctrl2) encode() byte {
	var b byte
	if c.boot {
		b |= ctrl2Boot
	}
	if c.heater {
		b |= ctrl2Heater
	}
	if c.oneShot {
		b |= ctrl2OneShot
	}
	return b
}

func readCtrl2(d *i2c.Dev) (ctrl2, error) {
	b, err := readRegister(d, regCtrl2)
	return decodeCtrl2(b), err
}

func writeCtrl2(d *i2c.Dev, c ctrl2) error {
	return writeRegister(d, regCtrl2, c.encode())
}

func modifyCtrl2(d *i2c.Dev, f func(*ctrl2)) error {
	c, err := readCtrl2(d)
	if err != nil {
		return err
	}
	f(&c)
	return writeCtrl2(d, c)
}

// ctrl3 is the decoded view of CTRL_REG3, the data-ready pin configuration.
type ctrl3 struct {
	dataReadyEnable    bool
	dataReadyActiveLow bool
}

func decodeCtrl3(b byte) ctrl3 {
	return ctrl3{
		dataReadyEnable:    b&ctrl3DataReadyEnable != 0,
		dataReadyActiveLow: b&ctrl3DataReadyActiveLow != 0,
	}
}

func (c ctrl3) encode() byte {
	var b byte
	if c.dataReadyEnable {
		b |= ctrl3DataReadyEnable
	}
	if c.dataReadyActiveLow {
		b |= ctrl3DataReadyActiveLow
	}
	return b
}

func readCtrl3(d *i2c.Dev) (ctrl3, error) {
	b, err := readRegister(d, regCtrl3)
	return decodeCtrl3(b), err
}

func writeCtrl3(d *i2c.Dev, c ctrl3) error {
	return writeRegister(d, regCtrl3, c.encode())
}

func modifyCtrl3(d *i2c.Dev, f func(*ctrl3)) error {
	c, err := readCtrl3(d)
	if err != nil {
		return err
	}
	f(&c)
	return writeCtrl3(d, c)
}

// status is the decoded view of the read-only STATUS register.
type status struct {
	temperatureAvailable bool
	humidityAvailable    bool
}

func decodeStatus(b byte) status {
	return status{
		temperatureAvailable: b&statusTemperatureAvailable != 0,
		humidityAvailable:    b&statusHumidityAvailable != 0,
	}
}

func (s status) anyAvailable() bool {
	return s.temperatureAvailable || s.humidityAvailable
}

func readStatus(d *i2c.Dev) (status, error) {
	b, err := readRegister(d, regStatus)
	return decodeStatus(b), err
}
