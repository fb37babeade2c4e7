package seir

import (
	"errors"
	"fmt"
)

// Validation failures, checked in this order by Run. Each one names the
// field the user has to correct; callers distinguish them with errors.Is.
var (
	// ErrInvalidPopulation reports a total population ≤ 0.
	ErrInvalidPopulation = errors.New("total population must be greater than 0")

	// ErrInvalidDuration reports a simulation duration ≤ 0 days.
	ErrInvalidDuration = errors.New("simulation duration must be greater than 0 days")

	// ErrInvalidDiseaseTiming reports an incubation or infectious period ≤ 0 days.
	ErrInvalidDiseaseTiming = errors.New("incubation and infectious periods must be greater than 0 days")

	// ErrInconsistentInitialState reports initial infectious+exposed+recovered
	// exceeding the total population, which would start with negative susceptibles.
	ErrInconsistentInitialState = errors.New("initial infectious, exposed and recovered exceed the total population")
)

// SimulationError wraps an unexpected computational fault raised while
// integrating. Validation failures never produce one; it exists so a fault
// reaches the caller as a diagnosable error instead of a panic.
type SimulationError struct {
	Cause error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulation failed: %v", e.Cause)
}

func (e *SimulationError) Unwrap() error {
	return e.Cause
}

// recoveredError normalizes a recovered panic value into an error.
func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
