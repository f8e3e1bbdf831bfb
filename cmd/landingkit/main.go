// Package main is the entry point for landingkit.
package main

import "github.com/pandeptwidyaop/landing-kit/internal/cli"

func main() {
	cli.Execute()
}
