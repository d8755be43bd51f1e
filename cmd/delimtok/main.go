package main

import (
	"github.com/delimtok/delimtok/internal/cli"
)

func main() {
	cli.Execute()
}
