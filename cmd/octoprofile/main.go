// main is the entry point for the octoprofile CLI.
package main

import (
	"github.com/octoprofile/octoprofile/cmd"
	"github.com/octoprofile/octoprofile/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
