// Command seed populates a fresh database with demo accounts, portfolio
// projects and services.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dsofts/core/internal/config"
	"github.com/dsofts/core/internal/database"
	"github.com/dsofts/core/internal/models"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, "database error:", err)
		os.Exit(1)
	}

	if err := seedUsers(db); err != nil {
		fmt.Fprintln(os.Stderr, "seed users:", err)
		os.Exit(1)
	}
	if err := seedPortfolio(db); err != nil {
		fmt.Fprintln(os.Stderr, "seed portfolio:", err)
		os.Exit(1)
	}
	if err := seedServices(db); err != nil {
		fmt.Fprintln(os.Stderr, "seed services:", err)
		os.Exit(1)
	}
	fmt.Println("database seeded")
}

func seedUsers(db *gorm.DB) error {
	users := []struct {
		name, email, password string
		role                  models.Role
	}{
		{"Admin", "admin@dsofts.com", "admin123", models.RoleAdmin},
		{"Demo User", "user@dsofts.com", "user123", models.RoleUser},
	}
	for _, u := range users {
		var count int64
		if err := db.Model(&models.UserModel{}).Where("email = ?", u.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), 10)
		if err != nil {
			return err
		}
		if err := db.Create(&models.UserModel{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
		}).Error; err != nil {
			return err
		}
		fmt.Printf("created %s account %s\n", u.role, u.email)
	}
	return nil
}

func seedPortfolio(db *gorm.DB) error {
	completed := func(daysAgo int) *time.Time {
		t := time.Now().AddDate(0, 0, -daysAgo)
		return &t
	}
	projects := []models.PortfolioProjectModel{
		{
			Title:            "E-Commerce Platform",
			Slug:             "e-commerce-platform",
			ShortDescription: "Full-featured online store with payments and inventory",
			FullDescription:  "A complete e-commerce solution with product catalog, cart, checkout and an admin dashboard for orders and inventory.",
			TechStack:        models.StringArray{"React", "Node.js", "MySQL", "Stripe"},
			ClientName:       "RetailCo",
			ClientRating:     4.8,
			WebsiteURL:       "https://shop.example.com",
			CompletedAt:      completed(120),
			IsFeatured:       true,
		},
		{
			Title:            "Clinic Booking System",
			Slug:             "clinic-booking-system",
			ShortDescription: "Appointment scheduling for a multi-branch clinic",
			FullDescription:  "Patient-facing booking with doctor availability, reminders and a staff calendar.",
			TechStack:        models.StringArray{"Vue", "Go", "PostgreSQL"},
			ClientName:       "HealthPlus",
			ClientRating:     4.5,
			CompletedAt:      completed(60),
			IsFeatured:       true,
		},
		{
			Title:            "Logistics Dashboard",
			Slug:             "logistics-dashboard",
			ShortDescription: "Real-time fleet tracking and delivery analytics",
			FullDescription:  "Live map of vehicle positions with delivery KPIs and route history.",
			TechStack:        models.StringArray{"React", "Go", "Redis"},
			ClientName:       "MoveFast Ltd",
			ClientRating:     5,
			CompletedAt:      completed(30),
		},
	}
	for _, p := range projects {
		var count int64
		if err := db.Model(&models.PortfolioProjectModel{}).Where("slug = ?", p.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
		fmt.Println("created project", p.Slug)
	}
	return nil
}

func seedServices(db *gorm.DB) error {
	items := []models.ServiceModel{
		{
			Title:         "Web Development",
			Description:   "Custom websites and web applications built with modern frameworks.",
			StartingPrice: 1500,
			Features:      models.StringArray{"Responsive design", "SEO friendly", "CMS integration"},
			IsPopular:     true,
		},
		{
			Title:         "Mobile App Development",
			Description:   "Cross-platform mobile apps for iOS and Android.",
			StartingPrice: 3000,
			Features:      models.StringArray{"iOS and Android", "Push notifications", "Offline support"},
		},
		{
			Title:         "Cloud & DevOps",
			Description:   "Infrastructure setup, CI/CD pipelines and cloud migrations.",
			StartingPrice: 2000,
			Features:      models.StringArray{"AWS and GCP", "Automated deployments", "Monitoring"},
		},
	}
	for _, s := range items {
		var count int64
		if err := db.Model(&models.ServiceModel{}).Where("title = ?", s.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			return err
		}
		fmt.Println("created service", s.Title)
	}
	return nil
}
