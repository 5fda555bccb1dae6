package main

import "gridctl/internal/cli"

func main() {
	cli.Execute()
}
