package main

import (
	"github.com/mihailDamchevski/TABLA-BAKI/internal/cli"
)

func main() {
	cli.Execute()
}
