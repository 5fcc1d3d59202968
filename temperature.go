// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hts221

import "fmt"

// TemperatureScale is the constraint satisfied by the scale marker types.
// The symbol method is unexported, so the set of scales is closed: Celsius,
// Fahrenheit and Kelvin.
type TemperatureScale interface {
	symbol() string
}

// Celsius marks a temperature on the Celsius scale, the sensor's native
// calibrated unit.
type Celsius struct{}

func (Celsius) symbol() string { return "°C" }

// Fahrenheit marks a temperature on the Fahrenheit scale.
type Fahrenheit struct{}

func (Fahrenheit) symbol() string { return "°F" }

// Kelvin marks a temperature on the Kelvin scale. The scale is declared for
// completeness; the driver defines no conversion to it.
type Kelvin struct{}

func (Kelvin) symbol() string { return "°K" }

// Temperature is a temperature value tagged with its scale. The tag is a
// type parameter and occupies no storage, so a Temperature[Celsius] cannot
// be confused with a Temperature[Fahrenheit] yet costs exactly one float32.
type Temperature[S TemperatureScale] struct {
	value float32
}

// NewTemperature wraps a bare value in the given scale.
func NewTemperature[S TemperatureScale](value float32) Temperature[S] {
	return Temperature[S]{value: value}
}

// Float32 returns the bare value without its scale.
func (t Temperature[S]) Float32() float32 {
	return t.value
}

// Add returns the sum of two temperatures on the same scale.
func (t Temperature[S]) Add(o Temperature[S]) Temperature[S] {
	return Temperature[S]{value: t.value + o.value}
}

// Sub returns the difference of two temperatures on the same scale.
func (t Temperature[S]) Sub(o Temperature[S]) Temperature[S] {
	return Temperature[S]{value: t.value - o.value}
}

// Offset shifts the temperature by a bare delta, staying on the same scale.
func (t Temperature[S]) Offset(delta float32) Temperature[S] {
	return Temperature[S]{value: t.value + delta}
}

// Div divides the temperature by a bare value. The result is dimensionless;
// dividing does not preserve the scale tag.
func (t Temperature[S]) Div(by float32) float32 {
	return t.value / by
}

func (t Temperature[S]) String() string {
	var s S
	return fmt.Sprintf("%g%s", t.value, s.symbol())
}

// ToFahrenheit converts a Celsius temperature to Fahrenheit.
func ToFahrenheit(t Temperature[Celsius]) Temperature[Fahrenheit] {
	return Temperature[Fahrenheit]{value: t.value*9.0/5.0 + 32.0}
}

// SensorAcquisition is one point-in-time reading: a scale-tagged temperature
// and the relative humidity in %RH.
type SensorAcquisition[S TemperatureScale] struct {
	Temperature      Temperature[S]
	RelativeHumidity float32
}

func (a SensorAcquisition[S]) String() string {
	return fmt.Sprintf("%s %g%%RH", a.Temperature, a.RelativeHumidity)
}
