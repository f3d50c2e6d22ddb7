package panel

import (
	"errors"
	"fmt"

	"paneltrack/internal/pkg/errs"
	"paneltrack/internal/pkg/guard"
)

// ErrMeasurementsAreNotConstructed indicates that Measurements were not
// created via NewMeasurements.
var ErrMeasurementsAreNotConstructed = errs.NewValueIsRequiredError(
	"measurements must be created via NewMeasurements constructor")

// Measurements holds the electrical measurements captured at the flash
// test: peak power in watts, open-circuit voltage in volts and
// short-circuit current in amperes. All three are required and positive.
type Measurements struct { //nolint:recvcheck //using for validation
	powerWatts   float64
	voltageVolts float64
	currentAmps  float64

	guard guard.ConstructorGuard
}

// NewMeasurements creates validated electrical measurements.
func NewMeasurements(powerWatts, voltageVolts, currentAmps float64) (Measurements, error) {
	m := Measurements{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setPower(powerWatts),
		m.setVoltage(voltageVolts),
		m.setCurrent(currentAmps),
	); err != nil {
		return Measurements{}, err
	}

	return m, nil
}

// Validate checks that the Measurements were created through NewMeasurements.
func (m Measurements) Validate() error {
	return m.guard.Validate(ErrMeasurementsAreNotConstructed)
}

// PowerWatts returns the measured peak power in watts.
func (m Measurements) PowerWatts() float64 {
	return m.powerWatts
}

// VoltageVolts returns the measured open-circuit voltage in volts.
func (m Measurements) VoltageVolts() float64 {
	return m.voltageVolts
}

// CurrentAmps returns the measured short-circuit current in amperes.
func (m Measurements) CurrentAmps() float64 {
	return m.currentAmps
}

func (m *Measurements) setPower(w float64) error {
	if w <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("power",
			fmt.Errorf("%g is not greater than 0", w))
	}
	m.powerWatts = w
	return nil
}

func (m *Measurements) setVoltage(v float64) error {
	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("voltage",
			fmt.Errorf("%g is not greater than 0", v))
	}
	m.voltageVolts = v
	return nil
}

func (m *Measurements) setCurrent(a float64) error {
	if a <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("current",
			fmt.Errorf("%g is not greater than 0", a))
	}
	m.currentAmps = a
	return nil
}
