package main

import "github.com/AbhishekDinesan/hedgehog/internal/cli"

func main() {
	cli.Execute()
}
