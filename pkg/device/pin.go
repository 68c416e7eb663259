// Package device adapts binary outputs (an LED, a relay, a radio key line)
// to the morse.Device interface. The caller brings the pin; this package
// only does the keying and the timing.
package device

import (
	"time"

	"github.com/gucio32/morsekey/pkg/morse"
)

// Pin is the hardware boundary: one digital output that can be driven high
// or low. Platform code (GPIO driver, firmata bridge, sysfs writer) supplies
// the implementation.
type Pin interface {
	Set(high bool) error
}

// PinDevice keys a Pin with Morse timing. It implements morse.Device.
type PinDevice struct {
	pin   Pin
	unit  time.Duration
	sleep func(time.Duration)
}

var _ morse.Device = (*PinDevice)(nil)

// NewPinDevice returns a device keying pin with the given unit duration.
func NewPinDevice(pin Pin, unit time.Duration) *PinDevice {
	return &PinDevice{
		pin:   pin,
		unit:  unit,
		sleep: time.Sleep,
	}
}

// On drives the pin high for units time units, then low again.
func (d *PinDevice) On(units uint) error {
	if err := d.pin.Set(true); err != nil {
		return err
	}

	d.sleep(time.Duration(units) * d.unit)

	return d.pin.Set(false)
}

// Off holds the pin low for units time units.
func (d *PinDevice) Off(units uint) error {
	d.sleep(time.Duration(units) * d.unit)
	return nil
}
