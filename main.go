package main

import "quest-chronicles/internal/cli"

func main() {
	cli.Execute()
}
