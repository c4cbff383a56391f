package calculator

import (
	"fmt"

	"stocker/internal/customerrors"
)

// CalculateChangePct returns the percentage change from prevClose to last.
// A zero baseline is rejected rather than producing NaN or Inf.
func CalculateChangePct(last, prevClose float64) (float64, error) {
	if prevClose == 0 {
		return 0, fmt.Errorf("%w: cannot calculate %% change", customerrors.ErrDivisionByZero)
	}
	return (last - prevClose) / prevClose * 100, nil
}
