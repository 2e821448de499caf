package main

import (
	"bufio"   // Reading prompts from stdin
	"fmt"     // Prompt output
	"os"      // Stdin handle
	"strings" // Input trimming

	"complaint_system/internal/config" // Custom package for configuration
	"complaint_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// prompt reads one trimmed line from stdin
func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// Main entry point for creating the initial admin user
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Database Source Name (DSN) for MySQL connection
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	username := prompt(reader, "Admin username: ")
	email := prompt(reader, "Admin email: ")
	password := prompt(reader, "Admin password: ")

	// Hash the password before storing
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash password: %v", err)
	}

	admin := domain.User{
		Username: username,
		Email:    strings.ToLower(email),
		Password: string(hash),
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		logrus.Fatalf("failed to create admin user: %v", err)
	}
	logrus.Info("Admin user created successfully.")
}
