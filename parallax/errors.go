// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/errors.go
// Summary: Sentinel errors returned by construction and block builds.

package parallax

import (
	"errors"
	"fmt"
)

var (
	// ErrSelectorNotFound is returned when an element selector matches nothing.
	ErrSelectorNotFound = errors.New("parallax: selector matches no element")
	// ErrWrapperNotFound is returned when a wrapper selector matches nothing.
	ErrWrapperNotFound = errors.New("parallax: wrapper selector matches no element")
)

func selectorError(sentinel error, selector string) error {
	return fmt.Errorf("%w: [%s]", sentinel, selector)
}
