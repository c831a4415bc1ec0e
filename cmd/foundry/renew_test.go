// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"foundry-cli/internal/provision"
)

func TestRenewWorkflows(t *testing.T) {
	t.Parallel()

	if _, ok := renewWorkflows[provision.KindVirtualenv]; !ok {
		t.Error("virtualenv has no test workflow")
	}
	if _, ok := renewWorkflows[provision.KindAnaconda]; !ok {
		t.Error("anaconda has no test workflow")
	}
	if _, ok := renewWorkflows["ghost"]; ok {
		t.Error("unknown species should have no test workflow")
	}
}
