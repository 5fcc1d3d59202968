// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hts221

import "fmt"

// Transport failures are returned to the caller exactly as the underlying
// i2c.Bus produced them; the driver neither wraps nor inspects them. The
// types below cover the failures the driver itself detects.

// NotCalibratedError is returned by Read and Sense when the device has not
// been initialized. The session stays usable; call Init first.
type NotCalibratedError struct{}

func (e *NotCalibratedError) Error() string {
	return "hts221: not calibrated, Init must succeed before reading"
}

// InvalidSensorError is returned by Init when the WHO_AM_I register does not
// carry the HTS221 identity. The device is absent, at another address, or a
// different chip.
type InvalidSensorError struct {
	// WhoAmI is the identity value the device reported.
	WhoAmI byte
}

func (e *InvalidSensorError) Error() string {
	return fmt.Sprintf("hts221: unexpected device identity 0x%02X, want 0x%02X", e.WhoAmI, whoAmIValue)
}

// InvalidCalibrationError is returned by Init when the factory calibration
// block holds two reference points with the same raw code for a quantity.
// Such a pair defines no line and calibrated values would be NaN.
type InvalidCalibrationError struct {
	// Quantity names the affected measurement, "temperature" or "humidity".
	Quantity string
}

func (e *InvalidCalibrationError) Error() string {
	return fmt.Sprintf("hts221: invalid %s calibration data, reference points share a raw code", e.Quantity)
}

// NotSettlingError is returned by Init when the device keeps reporting stale
// samples past Opts.DrainCycleLimit drain cycles.
type NotSettlingError struct {
	// Cycles is the number of stale sample pairs that were drained.
	Cycles int
}

func (e *NotSettlingError) Error() string {
	return fmt.Sprintf("hts221: device not settling after draining %d stale samples", e.Cycles)
}
