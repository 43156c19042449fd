package main

import "github.com/mcoot/moonlight21/internal/cli"

func main() {
	cli.Execute()
}
