package main

import (
	_ "time/tzdata" // --tz works on hosts without a zoneinfo database

	"github.com/diarijajan/diari/cmd"
)

func main() {
	cmd.Execute()
}
