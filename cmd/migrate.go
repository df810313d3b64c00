package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/config"
	"github.com/DuJao22/Comercio-pro/core/auth"
	"github.com/DuJao22/Comercio-pro/migrations"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

var migrateSeed bool

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		if db.Dialector.Name() == "mysql" {
			err = migrateMySQL(db)
		} else {
			err = db.AutoMigrate(entity.All()...)
		}
		if err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Schema is up to date.")

		if migrateSeed {
			if err := seed(db); err != nil {
				fmt.Printf("Seed failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Seed data created.")
		}
	},
}

func migrateMySQL(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	drv, err := migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "mysql", drv)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// seed creates the default store and the two bootstrap accounts. Safe to
// run more than once: existing rows are left alone.
func seed(db *gorm.DB) error {
	store := entity.Store{Name: "Loja Matriz", Location: "Centro"}
	if err := db.Where(entity.Store{Name: store.Name}).FirstOrCreate(&store).Error; err != nil {
		return err
	}

	users := []struct {
		name, email, password, role string
		storeID                     *uint
	}{
		{"Super Admin", "admin@sistema.com", "admin123", entity.RoleSuperadmin, nil},
		{"Gerente Loja 1", "gerente@loja1.com", "loja123", entity.RoleAdmin, &store.ID},
	}
	for _, u := range users {
		var count int64
		if err := db.Model(&entity.User{}).Where("email = ?", u.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return err
		}
		if err := db.Create(&entity.User{
			Name:     u.name,
			Email:    u.email,
			Password: hash,
			Role:     u.role,
			StoreID:  u.storeID,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateSeed, "seed", false, "Insert the default store and bootstrap accounts")
	rootCmd.AddCommand(migrateCmd)
}
