// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	FirstRunId Id = iota + 1
	UnknownSpeciesId
	MissingToolId
	MissingInstallerId
	CommandFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue body for the terminal. The detail pairs are
// substituted into the message via %s verbs in declaration order.
func (i *Issue) Render(details ...any) (string, error) {
	body := string(i.mdMsg)
	if len(details) > 0 {
		body = fmt.Sprintf(body, details...)
	}
	return render(body)
}

var (
	render = func(in string) (string, error) { return glamour.Render(in, "auto") }

	firstRunIssue = &Issue{
		id: FirstRunId,
		mdMsg: `
# Welcome to the factory!

It looks like this is your first time. Before the factory can run anything it
needs an isolated environment, and you have to choose which kind. Even if your
machine already has every package imaginable, the factory still provisions its
own environment so the dependency set is exactly right.

Recommendations:

- **virtualenv** if most of your required packages are already installed
- **virtualenv_sandbox** if your system packages have dependency conflicts
- **anaconda** if you want the full scientific stack

## Before continuing

~~~
$ foundry set species <name>
~~~

Available species:

%s`,
	}

	unknownSpeciesIssue = &Issue{
		id: UnknownSpeciesId,
		mdMsg: `
# Unknown species

The configured species %s is not in the registry.

## Things you can try

~~~
$ foundry set species <name>
~~~

Available species:

%s`,
	}

	missingToolIssue = &Issue{
		id: MissingToolId,
		mdMsg: `
# Missing system tool

Creating the environment needs %s, which was not found on your PATH.

## Things you can try

- Install it with your system package manager and re-run setup
- Or switch species: %s`,
	}

	missingInstallerIssue = &Issue{
		id: MissingInstallerId,
		mdMsg: `
# Missing installer

This species installs from a downloaded installer archive, and none was
found%s.

## Things you can try

- Download the installer, then point the factory at it:
~~~
$ foundry set installer <path>
~~~`,
	}

	commandFailedIssue = &Issue{
		id: CommandFailedId,
		mdMsg: `
# Provisioning command failed

A provisioning command exited with a non-zero status. The environment record
was left untouched, so re-running setup will retry from where it stopped.

## Where to look

The command log:

~~~
%s
~~~`,
	}

	issues = map[Id]*Issue{
		FirstRunId:         firstRunIssue,
		UnknownSpeciesId:   unknownSpeciesIssue,
		MissingToolId:      missingToolIssue,
		MissingInstallerId: missingInstallerIssue,
		CommandFailedId:    commandFailedIssue,
	}
)

// ById returns the issue registered under id, or nil.
func ById(id Id) *Issue {
	return issues[id]
}

// BulletList formats items as a markdown bullet list for substitution into
// issue bodies.
func BulletList[T ~string](items []T) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(string(item))
		sb.WriteString("\n")
	}
	return sb.String()
}
