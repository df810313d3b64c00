package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DuJao22/Comercio-pro/config"
	productService "github.com/DuJao22/Comercio-pro/service/product"
)

var (
	importFile  string
	importStore uint
	importActor uint
	importBatch int
)

var importCmd = &cobra.Command{
	Use:   "products:import",
	Short: "Import products from a CSV file",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		res, err := productService.ImportProducts(db, f, productService.ImportOptions{
			StoreID:   importStore,
			ActorID:   importActor,
			BatchSize: importBatch,
		})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}

		fmt.Printf(`
=== Import Report ===
CSV rows:  %d
Created:   %d
Skipped:   %d
=====================
`, res.Rows, res.Created, res.Skipped)
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().UintVar(&importStore, "store", 1, "Default store ID for rows without store_id")
	importCmd.Flags().UintVar(&importActor, "user", 1, "User ID recorded on initial stock movements")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 100, "Batch size for DB inserts")
	rootCmd.AddCommand(importCmd)
}
