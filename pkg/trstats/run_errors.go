// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package trstats

import (
	"errors"
	"fmt"
)

// ErrShutdown holds any errors that may
// have occurred during shutdown of trstats
type ErrShutdown struct {
	errArchive   error
	errTelemetry error
}

// HasError returns true if any of the errors are set
func (e ErrShutdown) HasError() bool {
	return e.errArchive != nil || e.errTelemetry != nil
}

// Error joins the set errors
func (e ErrShutdown) Error() string {
	if !e.HasError() {
		return ""
	}
	return fmt.Sprint(errors.Join(e.errArchive, e.errTelemetry))
}
