// SPDX-License-Identifier: MPL-2.0

package main

import cmd "foundry-cli/cmd/foundry"

func main() {
	cmd.Execute()
}
