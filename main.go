package main

import "lspretty/internal/cli"

func main() {
	cli.Execute()
}
