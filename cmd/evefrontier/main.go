package main

import "github.com/frontierlabs/evefrontier/internal/adapters/cli"

func main() {
	cli.Execute()
}
