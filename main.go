// Package main is the entry point for the gotracer CLI.
package main

import "gotracer.dev/pkg/gotracer/cmd"

func main() {
	cmd.Execute()
}
