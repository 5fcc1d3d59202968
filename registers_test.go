// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hts221

import (
	"testing"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestCtrl1RoundTrip(t *testing.T) {
	for _, power := range []bool{false, true} {
		for _, bdu := range []bool{false, true} {
			for rate := DataRate(0); rate < 8; rate++ {
				v := ctrl1{powerActive: power, dataRate: rate, blockDataUpdate: bdu}
				if got := decodeCtrl1(v.encode()); got != v {
					t.Errorf("decode(encode(%+v)) = %+v", v, got)
				}
			}
		}
	}
	// Every byte with the reserved bits zero must survive a decode/encode
	// round trip unchanged.
	const used = ctrl1PowerActive | ctrl1DataRateMask | ctrl1BlockDataUpdate
	for b := 0; b < 256; b++ {
		if byte(b)&^used != 0 {
			continue
		}
		if got := decodeCtrl1(byte(b)).encode(); got != byte(b) {
			t.Errorf("encode(decode(%#02x)) = %#02x", b, got)
		}
	}
	if got := decodeCtrl1(0xFF).encode(); got != used {
		t.Errorf("reserved bits not cleared on encode: %#02x", got)
	}
}

func TestCtrl2RoundTrip(t *testing.T) {
	for _, boot := range []bool{false, true} {
		for _, heater := range []bool{false, true} {
			for _, oneShot := range []bool{false, true} {
				v := ctrl2{boot: boot, heater: heater, oneShot: oneShot}
				if got := decodeCtrl2(v.encode()); got != v {
					t.Errorf("decode(encode(%+v)) = %+v", v, got)
				}
			}
		}
	}
	const used = ctrl2Boot | ctrl2Heater | ctrl2OneShot
	for b := 0; b < 256; b++ {
		if byte(b)&^used != 0 {
			continue
		}
		if got := decodeCtrl2(byte(b)).encode(); got != byte(b) {
			t.Errorf("encode(decode(%#02x)) = %#02x", b, got)
		}
	}
}

func TestCtrl3RoundTrip(t *testing.T) {
	for _, enable := range []bool{false, true} {
		for _, activeLow := range []bool{false, true} {
			v := ctrl3{dataReadyEnable: enable, dataReadyActiveLow: activeLow}
			if got := decodeCtrl3(v.encode()); got != v {
				t.Errorf("decode(encode(%+v)) = %+v", v, got)
			}
		}
	}
	const used = ctrl3DataReadyEnable | ctrl3DataReadyActiveLow
	for b := 0; b < 256; b++ {
		if byte(b)&^used != 0 {
			continue
		}
		if got := decodeCtrl3(byte(b)).encode(); got != byte(b) {
			t.Errorf("encode(decode(%#02x)) = %#02x", b, got)
		}
	}
}

func TestStatusDecode(t *testing.T) {
	var tests = []struct {
		b    byte
		want status
		any  bool
	}{
		{0x00, status{}, false},
		{0x01, status{temperatureAvailable: true}, true},
		{0x02, status{humidityAvailable: true}, true},
		{0x03, status{temperatureAvailable: true, humidityAvailable: true}, true},
		// Reserved bits are ignored.
		{0xFC, status{}, false},
	}
	for _, test := range tests {
		got := decodeStatus(test.b)
		if got != test.want {
			t.Errorf("decodeStatus(%#02x) = %+v, want %+v", test.b, got, test.want)
		}
		if got.anyAvailable() != test.any {
			t.Errorf("decodeStatus(%#02x).anyAvailable() = %t", test.b, !test.any)
		}
	}
}

func TestReadSample(t *testing.T) {
	bus := i2ctest.Playback{
		Ops: []i2ctest.IO{
			// Auto-increment read of TEMP_OUT_L/TEMP_OUT_H, little-endian.
			{Addr: DefaultAddress, W: []byte{regTemperatureOut | regAutoIncrement}, R: []byte{0x34, 0x12}},
			{Addr: DefaultAddress, W: []byte{regHumidityOut | regAutoIncrement}, R: []byte{0xFF, 0xFF}},
		},
	}
	d := &i2c.Dev{Bus: &bus, Addr: DefaultAddress}
	if got, err := readSample(d, regTemperatureOut); err != nil || got != 0x1234 {
		t.Fatalf("readSample = %d, %v, want 0x1234", got, err)
	}
	if got, err := readSample(d, regHumidityOut); err != nil || got != -1 {
		t.Fatalf("readSample = %d, %v, want -1", got, err)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestModifyCtrl2(t *testing.T) {
	bus := i2ctest.Playback{
		Ops: []i2ctest.IO{
			// modify reads the current value, applies the closure and
			// writes back; bits outside the closure's interest survive.
			{Addr: DefaultAddress, W: []byte{regCtrl2}, R: []byte{ctrl2Boot | ctrl2OneShot}},
			{Addr: DefaultAddress, W: []byte{regCtrl2, ctrl2Boot | ctrl2Heater | ctrl2OneShot}},
		},
	}
	d := &i2c.Dev{Bus: &bus, Addr: DefaultAddress}
	if err := modifyCtrl2(d, func(c *ctrl2) {
		c.heater = true
	}); err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}
