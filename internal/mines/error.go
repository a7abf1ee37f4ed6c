package mines

import (
	"errors"
	"fmt"
)

var ErrOutOfBounds = errors.New("cell out of bounds")

type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

// [OutOfBoundsError] implements [error]
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is outside the %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

type ConfigurationError struct {
	Params GameParams
	Reason string
}

// [ConfigurationError] implements [error]
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid game params %s: %s", e.Params, e.Reason)
}
