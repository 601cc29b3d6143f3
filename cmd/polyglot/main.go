package main

import "github.com/emiliopalmerini/polyglot/internal/cli"

func main() {
	cli.Execute()
}
