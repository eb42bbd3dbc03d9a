package main

import "github.com/aalvaropc/solidbots/internal/cli"

func main() {
	cli.Execute()
}
