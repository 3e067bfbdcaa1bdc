package main

import (
	"github.com/samber/lo"
	"github.com/tubefetch/tubefetch/cmd"
	"github.com/tubefetch/tubefetch/config"
	"github.com/tubefetch/tubefetch/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
