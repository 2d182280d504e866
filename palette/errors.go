package palette

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvider  = errors.New("palette: provider is required")
	ErrNoNamespace = errors.New("palette: namespace is required")
)

type InvalidateError struct {
	Name    string
	BumpErr error
	DelErr  error
}

func (e *InvalidateError) Error() string {
	switch {
	case e.BumpErr != nil && e.DelErr != nil:
		return fmt.Sprintf("palette: invalidate %q: revision bump and delete failed: bump=%v; delete=%v",
			e.Name, e.BumpErr, e.DelErr)
	case e.BumpErr != nil:
		return fmt.Sprintf("palette: invalidate %q: revision bump failed: %v", e.Name, e.BumpErr)
	case e.DelErr != nil:
		return fmt.Sprintf("palette: invalidate %q: delete failed: %v", e.Name, e.DelErr)
	default:
		return fmt.Sprintf("palette: invalidate %q: unknown error", e.Name)
	}
}

func (e *InvalidateError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.BumpErr != nil {
		errs = append(errs, e.BumpErr)
	}
	if e.DelErr != nil {
		errs = append(errs, e.DelErr)
	}
	return errs
}

// ErrConflict is returned by SetWithRev when the property's revision moved
// after the caller's snapshot. Re-read, re-apply the edit and retry.
var ErrConflict = errors.New("palette: property changed since snapshot")
