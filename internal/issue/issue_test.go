// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

// identityRender bypasses glamour so assertions see the raw markdown.
func identityRender(t *testing.T) {
	t.Helper()
	orig := render
	render = func(in string) (string, error) { return in, nil }
	t.Cleanup(func() { render = orig })
}

func TestById(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{FirstRunId, UnknownSpeciesId, MissingToolId, MissingInstallerId, CommandFailedId} {
		issue := ById(id)
		if issue == nil {
			t.Fatalf("ById(%d) = nil", id)
		}
		if issue.Id() != id {
			t.Errorf("Id() = %d, want %d", issue.Id(), id)
		}
		if issue.MarkdownMsg() == "" {
			t.Errorf("issue %d has an empty body", id)
		}
	}
}

func TestRender_SubstitutesDetails(t *testing.T) {
	identityRender(t)

	out, err := ById(CommandFailedId).Render("logs/log-virtualenv")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "logs/log-virtualenv") {
		t.Errorf("rendered issue does not contain the log path:\n%s", out)
	}
}

func TestRender_FirstRunListsSpecies(t *testing.T) {
	identityRender(t)

	kinds := BulletList([]string{"virtualenv", "anaconda"})
	out, err := ById(FirstRunId).Render(kinds)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, kind := range []string{"virtualenv", "anaconda"} {
		if !strings.Contains(out, "- "+kind) {
			t.Errorf("first-run issue does not list %s:\n%s", kind, out)
		}
	}
}

func TestBulletList(t *testing.T) {
	t.Parallel()

	got := BulletList([]string{"a", "b"})
	if got != "- a\n- b\n" {
		t.Errorf("BulletList = %q", got)
	}
}
