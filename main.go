// Package main is the entry point for livegrid.
package main

import (
	"github.com/livegrid/livegrid/cmd"
	"github.com/livegrid/livegrid/config"
	"github.com/livegrid/livegrid/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
