// Package main provides the keycell CLI.
package main

import "github.com/mesh-intelligence/keycell/internal/cli"

func main() {
	cli.Execute()
}
