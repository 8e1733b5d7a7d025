// Package main is the entry point for the svgflat CLI.
package main

import "svgflat.dev/pkg/svgflat/cmd"

func main() {
	cmd.Execute()
}
