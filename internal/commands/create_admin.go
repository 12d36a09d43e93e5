// Package commands implements the CLI subcommands.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"langart/internal/auth"
	"langart/internal/config"
	"langart/internal/db"
	"langart/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RunCreateAdmin creates an admin account, or resets its password when the
// username already exists. Intended for recovery when the seeded credentials
// are lost.
func RunCreateAdmin(args []string) {
	fs := flag.NewFlagSet("create-admin", flag.ExitOnError)
	username := fs.String("username", "admin", "admin username")
	password := fs.String("password", "", "admin password (min 6 characters)")
	fs.Usage = func() {
		fmt.Println("Usage: langart create-admin --username <name> --password <password>")
		fmt.Println()
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if len(*password) < auth.MinPasswordLength {
		fmt.Printf("Password must be at least %d characters\n", auth.MinPasswordLength)
		os.Exit(1)
	}

	configManager, err := config.NewManager()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	database, err := db.NewDB(configManager)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logrus.Errorf("Error closing database connection: %v", err)
		}
	}()

	if err := database.AutoMigrate(&models.User{}); err != nil {
		logrus.Fatalf("Database auto-migration failed: %v", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		logrus.Fatalf("Failed to hash password: %v", err)
	}

	var user models.User
	err = database.Where("username = ?", *username).First(&user).Error
	switch {
	case err == nil:
		if err := database.Model(&user).Update("password_hash", hash).Error; err != nil {
			logrus.Fatalf("Failed to update admin password: %v", err)
		}
		fmt.Printf("Password updated for admin user %q\n", *username)
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Username: *username, PasswordHash: hash}
		if err := database.Create(&user).Error; err != nil {
			logrus.Fatalf("Failed to create admin user: %v", err)
		}
		fmt.Printf("Created admin user %q\n", *username)
	default:
		logrus.Fatalf("Failed to look up admin user: %v", err)
	}
}
