package main

import (
	"github.com/pfrederiksen/mmrda-holidays/internal/cli"
)

func main() {
	cli.Execute()
}
