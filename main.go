package main

import (
	"l2lo/cli"
)

func main() {
	cli.Start()
}
