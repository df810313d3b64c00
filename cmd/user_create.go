package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DuJao22/Comercio-pro/config"
	"github.com/DuJao22/Comercio-pro/core/auth"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

var (
	userName     string
	userEmail    string
	userPassword string
	userRole     string
	userStore    uint
)

var userCreateCmd = &cobra.Command{
	Use:   "users:create",
	Short: "Create an operator account",
	Run: func(cmd *cobra.Command, args []string) {
		if userRole != entity.RoleAdmin && userRole != entity.RoleSuperadmin {
			fmt.Printf("Invalid role %q (want admin or superadmin)\n", userRole)
			os.Exit(1)
		}
		if userRole == entity.RoleAdmin && userStore == 0 {
			fmt.Println("Admins need --store")
			os.Exit(1)
		}

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		hash, err := auth.HashPassword(userPassword)
		if err != nil {
			fmt.Printf("Password hash failed: %v\n", err)
			os.Exit(1)
		}

		u := entity.User{
			Name:     userName,
			Email:    userEmail,
			Password: hash,
			Role:     userRole,
		}
		if userStore != 0 {
			u.StoreID = &userStore
		}
		if err := db.Create(&u).Error; err != nil {
			fmt.Printf("Create failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created user #%d (%s)\n", u.ID, u.Email)
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userName, "name", "", "Display name (required)")
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "Login email (required)")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "Plain password (required)")
	userCreateCmd.Flags().StringVar(&userRole, "role", entity.RoleAdmin, "Role: admin or superadmin")
	userCreateCmd.Flags().UintVar(&userStore, "store", 0, "Store ID (required for admins)")
	userCreateCmd.MarkFlagRequired("name")
	userCreateCmd.MarkFlagRequired("email")
	userCreateCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(userCreateCmd)
}
