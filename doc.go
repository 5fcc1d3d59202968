// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hts221 controls an ST HTS221 humidity and temperature sensor over
// I²C.
//
// The HTS221 ships with a factory-programmed two-point calibration for each
// measured quantity. The driver reads the calibration block once during Init
// and converts the raw sensor codes of every subsequent read into calibrated
// physical values. Temperatures are returned as scale-tagged values (see
// Temperature) so that Celsius and Fahrenheit readings cannot be mixed up at
// compile time; hts221.Dev also implements physic.SenseEnv for use with the
// periph unit types.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/hts221.pdf
package hts221
