// SPDX-License-Identifier: MIT

// Command barray replays the array scenarios, checks the array laws and
// prints array windows. Run `barray --help` for the subcommands.
package main

import "github.com/katalvlaran/lvarray/internal/cli"

func main() {
	cli.Execute()
}
