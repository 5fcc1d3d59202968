// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// hts221 reads temperature and humidity from an HTS221 sensor, once or
// continuously.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/GermanBionicSystems/hts221"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func printEnv(e physic.Env, fahrenheit bool) {
	if fahrenheit {
		fmt.Printf("%.1f°F %9s\n", e.Temperature.Fahrenheit(), e.Humidity)
	} else {
		fmt.Printf("%8s %9s\n", e.Temperature, e.Humidity)
	}
}

func mainImpl() error {
	busName := flag.String("bus", "", "I²C bus to use (default: the first available)")
	every := flag.Duration("every", 0, "read continuously at this interval instead of once")
	fahrenheit := flag.Bool("f", false, "print the temperature in °F")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *every < 0 {
		return errors.New("-every must be positive")
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer b.Close()

	d, err := hts221.NewI2C(b, nil)
	if err != nil {
		return err
	}
	if err := d.Init(); err != nil {
		return err
	}

	if *every == 0 {
		e := physic.Env{}
		if err := d.Sense(&e); err != nil {
			return err
		}
		printEnv(e, *fahrenheit)
		return nil
	}

	c, err := d.SenseContinuous(*every)
	if err != nil {
		return err
	}
	defer d.Halt()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	for {
		select {
		case e := <-c:
			printEnv(e, *fahrenheit)
		case <-sig:
			return nil
		}
	}
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "hts221: %s.\n", err)
		os.Exit(1)
	}
}
