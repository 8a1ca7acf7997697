package main

import (
	"spl-tool/cli"
)

func main() {
	cli.Start()
}
