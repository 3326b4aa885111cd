package datasource

import (
	"errors"
	"fmt"
)

// ErrMisuse is wrapped by every panic the adapter raises. Misuse is a
// programming error: an adapter without a source, a cell of the wrong kind
// for its container, or sizing switched on without a Sizer.
var ErrMisuse = errors.New("datasource: misuse")

func misuse(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrMisuse, fmt.Sprintf(format, args...)))
}
