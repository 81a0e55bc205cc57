package main

import "github.com/aalvaropc/cfgjs/internal/cli"

func main() {
	cli.Execute()
}
