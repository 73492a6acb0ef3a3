package main

import (
	"github.com/AzielCF/az-photofeed/cmd"
)

func main() {
	cmd.Execute()
}
