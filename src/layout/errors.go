package layout

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty          = errors.New("no categories or series")
	ErrLengthMismatch = errors.New("series length mismatch")
	ErrNonPositive    = errors.New("value must be positive on a log axis")
	ErrNotFinite      = errors.New("value is not finite")
	ErrBarWidth       = errors.New("bar width must be positive")
	ErrColor          = errors.New("no color for series")
)

// ConstructionError reports an input that cannot be laid out. Series and Index
// are -1 when the problem is not tied to a particular series or value.
type ConstructionError struct {
	Chart  string
	Series int
	Index  int
	Err    error
}

func (e *ConstructionError) Error() string {
	switch {
	case e.Series >= 0 && e.Index >= 0:
		return fmt.Sprintf("chart %q: series %d value %d: %v", e.Chart, e.Series, e.Index, e.Err)
	case e.Series >= 0:
		return fmt.Sprintf("chart %q: series %d: %v", e.Chart, e.Series, e.Err)
	default:
		return fmt.Sprintf("chart %q: %v", e.Chart, e.Err)
	}
}

func (e *ConstructionError) Unwrap() error { return e.Err }

func constructionErr(chart string, series, index int, err error) error {
	return &ConstructionError{Chart: chart, Series: series, Index: index, Err: err}
}
