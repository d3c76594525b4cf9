package main

import "github.com/mydehq/annictl/internal/cli"

func main() {
	cli.Execute()
}
