package main

import (
	"github.com/ValentinKolb/etcdc/cmd"
)

func main() {
	cmd.Execute()
}
