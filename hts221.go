// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hts221

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DefaultAddress is the fixed 7-bit I²C address of the HTS221.
const DefaultAddress uint16 = 0x5F

// Opts holds the configuration options for the device.
type Opts struct {
	// Address is the 7-bit I²C address. Leave 0 for the default 0x5F; the
	// HTS221 is not address-configurable, so this only matters behind an
	// address translator.
	Address uint16
	// DataRate is the continuous conversion rate programmed during Init.
	// Leave 0 to use the default of 1 Hz.
	DataRate DataRate
	// DrainCycleLimit caps how many stale sample pairs Init discards while
	// waiting for the status register to clear. Leave 0 to use the default
	// of 32. A device that still reports stale data past the limit fails
	// Init with NotSettlingError.
	DrainCycleLimit int
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	Address:         DefaultAddress,
	DataRate:        RateOneHertz,
	DrainCycleLimit: 32,
}

// Dev is a handle to one HTS221. It owns the bus device exclusively and
// carries the calibration state computed by Init.
type Dev struct {
	opts        Opts
	d           *i2c.Dev
	mu          sync.Mutex
	stop        chan struct{}
	wg          sync.WaitGroup
	calibration *calibration
}

// NewI2C returns an object that communicates over I²C to an HTS221 sensor.
// The Opts can be nil. No bus traffic happens until Init is called.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.Address == 0 {
		o.Address = DefaultAddress
	}
	if o.Address > 0x7F {
		return nil, errors.New("hts221: address must fit in 7 bits")
	}
	if o.DataRate == RateOneShot {
		o.DataRate = RateOneHertz
	}
	if o.DataRate > RateTwelveHalfHertz {
		return nil, fmt.Errorf("hts221: invalid data rate %d", o.DataRate)
	}
	if o.DrainCycleLimit <= 0 {
		o.DrainCycleLimit = DefaultOpts.DrainCycleLimit
	}
	return &Dev{opts: o, d: &i2c.Dev{Bus: b, Addr: o.Address}}, nil
}

// Init brings the device into continuous conversion and loads the factory
// calibration. It must succeed once before Read or Sense.
//
// The sequence is: verify WHO_AM_I, reboot the register content via
// CTRL_REG2, program power/data rate/block-data-update into CTRL_REG1,
// enable the data-ready signal via CTRL_REG3, drain stale samples until the
// status register clears and finally read the calibration block. On any
// failure the calibration stays unset and Init can be retried.
func (d *Dev) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	who, err := readWhoAmI(d.d)
	if err != nil {
		return err
	}
	if who != whoAmIValue {
		return &InvalidSensorError{WhoAmI: who}
	}

	if err := modifyCtrl2(d.d, func(c *ctrl2) {
		c.boot = true
	}); err != nil {
		return err
	}

	if err := modifyCtrl1(d.d, func(c *ctrl1) {
		c.powerActive = true
		c.dataRate = d.opts.DataRate
		c.blockDataUpdate = true
	}); err != nil {
		return err
	}

	if err := modifyCtrl3(d.d, func(c *ctrl3) {
		c.dataReadyEnable = true
	}); err != nil {
		return err
	}

	if err := d.drain(); err != nil {
		return err
	}

	cal, err := readCalibration(d.d)
	if err != nil {
		return err
	}
	d.calibration = cal
	return nil
}

// drain discards buffered samples until the status register reports that
// neither output holds unread data, so the first Read returns a fresh
// conversion instead of whatever was left in the output registers.
func (d *Dev) drain() error {
	for cycles := 0; ; cycles++ {
		st, err := readStatus(d.d)
		if err != nil {
			return err
		}
		if !st.anyAvailable() {
			return nil
		}
		if cycles >= d.opts.DrainCycleLimit {
			return &NotSettlingError{Cycles: cycles}
		}
		if _, err := readSample(d.d, regHumidityOut); err != nil {
			return err
		}
		if _, err := readSample(d.d, regTemperatureOut); err != nil {
			return err
		}
	}
}

// Read returns one calibrated measurement. It fails with NotCalibratedError
// without touching the bus if Init has not succeeded.
func (d *Dev) Read() (SensorAcquisition[Celsius], error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.read()
}

func (d *Dev) read() (SensorAcquisition[Celsius], error) {
	if d.calibration == nil {
		return SensorAcquisition[Celsius]{}, &NotCalibratedError{}
	}
	tCode, err := readSample(d.d, regTemperatureOut)
	if err != nil {
		return SensorAcquisition[Celsius]{}, err
	}
	hCode, err := readSample(d.d, regHumidityOut)
	if err != nil {
		return SensorAcquisition[Celsius]{}, err
	}
	return SensorAcquisition[Celsius]{
		Temperature:      d.calibration.calibratedTemperature(tCode),
		RelativeHumidity: d.calibration.calibratedHumidity(hCode),
	}, nil
}

// Sense implements physic.SenseEnv. It returns the current temperature and
// humidity; the pressure is always 0 since the HTS221 does not measure
// pressure. The device must have been initialized with Init.
func (d *Dev) Sense(e *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	acq, err := d.read()
	if err != nil {
		return err
	}
	e.Temperature = physic.Temperature(float64(acq.Temperature.Float32())*float64(physic.Kelvin)) + physic.ZeroCelsius
	e.Humidity = physic.RelativeHumidity(float64(acq.RelativeHumidity) * float64(physic.PercentRH))
	return nil
}

// SenseContinuous implements physic.SenseEnv. It returns a channel that
// receives a measurement every interval. It is the caller's responsibility
// to call Halt when done.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if interval <= 0 {
		return nil, errors.New("hts221: interval must be positive")
	}
	if d.calibration == nil {
		return nil, &NotCalibratedError{}
	}
	if d.stop != nil {
		return nil, errors.New("hts221: continuous sensing already running")
	}

	sensing := make(chan physic.Env)
	d.stop = make(chan struct{})
	stop := d.stop
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer close(sensing)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				var e physic.Env
				if err := d.Sense(&e); err == nil {
					select {
					case sensing <- e:
					case <-stop:
						return
					}
				}
			}
		}
	}()
	return sensing, nil
}

// Precision implements physic.SenseEnv with the datasheet resolution of the
// sensor outputs.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = 16 * physic.MilliKelvin
	e.Humidity = 4 * physic.MilliRH
	e.Pressure = 0
}

// Heater switches the built-in heating element used to recover the humidity
// sensing film after condensation.
func (d *Dev) Heater(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return modifyCtrl2(d.d, func(c *ctrl2) {
		c.heater = on
	})
}

// Halt stops the HTS221 from acquiring measurements as initiated by
// SenseContinuous and powers the device down when it was initialized.
// Implements conn.Resource. Run Init again to resume conversions.
func (d *Dev) Halt() error {
	d.mu.Lock()
	stop := d.stop
	d.stop = nil
	d.mu.Unlock()
	if stop != nil {
		close(stop)
		d.wg.Wait()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.calibration == nil {
		return nil
	}
	return modifyCtrl1(d.d, func(c *ctrl1) {
		c.powerActive = false
	})
}

func (d *Dev) String() string {
	return fmt.Sprintf("hts221: %s", d.d.String())
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
