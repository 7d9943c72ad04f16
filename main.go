package main

import "github.com/gqlbridge/gqlbridge/cli"

// VERSION is overridden at build time via -ldflags.
var VERSION = "dev"

func main() {
	cli.Main(VERSION)
}
