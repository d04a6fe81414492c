package main

import (
	"github.com/jaiidees/riser-gacha/internal/cli"
)

func main() {
	cli.Execute()
}
