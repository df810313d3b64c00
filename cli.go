//go:build cli
// +build cli

package main

import (
	_ "github.com/DuJao22/Comercio-pro/custom"

	"github.com/DuJao22/Comercio-pro/cmd"
	"github.com/DuJao22/Comercio-pro/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
