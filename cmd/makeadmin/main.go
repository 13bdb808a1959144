// Command makeadmin promotes an existing account to the admin role.
//
//	makeadmin [--config config.yml] user@example.com
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/dsofts/core/internal/config"
	"github.com/dsofts/core/internal/database"
	"github.com/dsofts/core/internal/models"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "path to the config file")
	flag.Parse()

	email := flag.Arg(0)
	if email == "" {
		fmt.Fprintln(os.Stderr, "usage: makeadmin [--config path] <email>")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, "database error:", err)
		os.Exit(1)
	}

	var user models.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Fprintf(os.Stderr, "no user with email %s\n", email)
		} else {
			fmt.Fprintln(os.Stderr, "lookup error:", err)
		}
		os.Exit(1)
	}

	if user.Role == models.RoleAdmin {
		fmt.Printf("%s is already an admin\n", email)
		return
	}

	if err := db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
		fmt.Fprintln(os.Stderr, "update error:", err)
		os.Exit(1)
	}
	fmt.Printf("%s (%s) is now an admin\n", user.Name, email)
}
