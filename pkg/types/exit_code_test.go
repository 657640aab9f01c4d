// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCodeValidate(t *testing.T) {
	t.Parallel()

	for _, c := range []ExitCode{ExitSuccess, ExitNotFound, ExitMisconfigured, 255} {
		if err := c.Validate(); err != nil {
			t.Errorf("ExitCode(%d).Validate() = %v, want nil", c, err)
		}
	}

	for _, c := range []ExitCode{-1, 256} {
		err := c.Validate()
		if !errors.Is(err, ErrInvalidExitCode) {
			t.Errorf("ExitCode(%d).Validate() = %v, want ErrInvalidExitCode", c, err)
		}
		var ie *InvalidExitCodeError
		if !errors.As(err, &ie) || ie.Value != c {
			t.Errorf("ExitCode(%d): error should carry the value, got %v", c, err)
		}
	}
}

func TestExitCodeMeaning(t *testing.T) {
	t.Parallel()

	if !ExitSuccess.IsSuccess() {
		t.Error("ExitSuccess.IsSuccess() = false")
	}
	if ExitNotFound.IsSuccess() || ExitMisconfigured.IsSuccess() {
		t.Error("failure codes must not report success")
	}
	if ExitNotFound == ExitMisconfigured {
		t.Error("not-found and misconfigured exit codes must differ")
	}
	if got := ExitMisconfigured.String(); got != "2" {
		t.Errorf("ExitMisconfigured.String() = %q, want %q", got, "2")
	}
}
