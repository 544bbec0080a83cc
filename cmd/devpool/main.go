package main

import (
	"github.com/tansive/devpool/internal/cli"
)

func main() {
	cli.Execute()
}
