// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"
)

func TestConfirmAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "both yes", input: "y\ny\n", want: true},
		{name: "capital yes", input: "Yes\nY\n", want: true},
		{name: "first no", input: "n\n", want: false},
		{name: "second no", input: "y\nn\n", want: false},
		{name: "empty answer", input: "\n\n", want: false},
		{name: "eof", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := confirmAll(strings.NewReader(tt.input), "okay to nuke everything", "confirm")
			if got != tt.want {
				t.Errorf("confirmAll(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNukeDirs_KeepConnections(t *testing.T) {
	t.Parallel()

	for _, dir := range nukeDirs {
		if dir == "connections" {
			t.Error("nuke must never delete the connections directory")
		}
	}
}
