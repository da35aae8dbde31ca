package main

import "topogen/internal/cli"

func main() {
	cli.Execute()
}
