package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"biketours-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "biketours_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase is the explicit, idempotent bootstrap step: the default
// manager/admin accounts and the bike status labels. Safe to re-run on every
// boot.
func SeedDatabase() {
	// ---------------- Staff accounts ----------------
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		admin := models.User{
			Username: envOrDefault("ADMIN_USERNAME", "admin"),
			Email:    envOrDefault("ADMIN_EMAIL", "admin@biketours.local"),
			Password: envOrDefault("ADMIN_PASSWORD", "admin123"),
			Role:     models.RoleAdmin,
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Printf("warning: failed to create default admin: %v", err)
		} else {
			log.Println("Default admin seeded")
		}
	}

	var managerCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleManager).Count(&managerCount)
	if managerCount == 0 {
		manager := models.User{
			Username: envOrDefault("MANAGER_USERNAME", "manager"),
			Email:    envOrDefault("MANAGER_EMAIL", "manager@biketours.local"),
			Password: envOrDefault("MANAGER_PASSWORD", "manager123"),
			Role:     models.RoleManager,
		}
		if err := DB.Create(&manager).Error; err != nil {
			log.Printf("warning: failed to create default manager: %v", err)
		} else {
			log.Println("Default manager seeded")
		}
	}

	// ---------------- Bike statuses ----------------
	statuses := []string{
		models.BikeStatusAvailable,
		models.BikeStatusRented,
		models.BikeStatusMaintenance,
		models.BikeStatusBroken,
	}
	for _, name := range statuses {
		var count int64
		DB.Model(&models.BikeStatus{}).Where("status_name = ?", name).Count(&count)
		if count > 0 {
			continue
		}
		if err := DB.Create(&models.BikeStatus{StatusName: name}).Error; err != nil {
			log.Printf("warning: failed to seed bike status %s: %v", name, err)
		}
	}
	log.Println("Bike statuses ensured")
}

// Migrate applies the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.BikeStatus{},
		&models.Bike{},
		&models.Tour{},
		&models.Guide{},
		&models.GuideTour{},
		&models.Slot{},
		&models.Booking{},
		&models.Rental{},
		&models.Review{},
		&models.Payment{},
	)
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
