package main

import "github.com/pediametrics/growthchart-cli/cmd"

func main() {
	cmd.Execute()
}
