package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "comercio",
	Short: "Comercio-pro management CLI",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		fig := figure.NewFigure("Comercio-pro", "", true)
		fig.Print()
	},
}

// Execute runs the CLI after applying registered commands.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
