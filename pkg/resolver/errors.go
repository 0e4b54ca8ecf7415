/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package resolver

import (
	"fmt"
)

// ResolutionError reports a partial whose source could not be read.
type ResolutionError struct {
	Name    string
	Locator string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("error on resolve partial %s (%s): %s",
		e.Name, e.Locator, e.Err.Error())
}

func (e *ResolutionError) Cause() error  { return e.Err }
func (e *ResolutionError) Unwrap() error { return e.Err }
