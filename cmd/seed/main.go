package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/Voltline-Commerce/voltline-backend/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and seeds the catalog plus an admin account.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VOLTLINE STORE - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.User{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
		&models.ActionLog{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	categories := seedCategories()
	brands := seedBrands()
	seedProducts(categories, brands)
	seedAdmin()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding Complete!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse products at GET /api/v1/store/products")
	fmt.Println("3. Sign in as the admin at POST /api/v1/auth/signin")
	fmt.Println("4. View analytics at GET /api/v1/admin/analytics/overview")
	fmt.Println()
}

func seedCategories() map[string]models.Category {
	names := []string{"Networking", "Audio", "Computing", "Smart Home", "Accessories"}

	result := make(map[string]models.Category, len(names))
	for _, name := range names {
		var category models.Category
		err := config.StoreGorm.Where("name = ?", name).First(&category).Error
		if err == gorm.ErrRecordNotFound {
			category = models.Category{Name: name}
			if err := config.StoreGorm.Create(&category).Error; err != nil {
				log.Fatalf("Failed to create category %q: %v", name, err)
			}
		} else if err != nil {
			log.Fatalf("Database error: %v", err)
		}
		result[name] = category
	}
	log.Printf("✓ Seeded %d categories", len(result))
	return result
}

func seedBrands() map[string]models.Brand {
	names := []string{"Voltline", "NetGrid", "SoundCore", "ByteWorks"}

	result := make(map[string]models.Brand, len(names))
	for _, name := range names {
		var brand models.Brand
		err := config.StoreGorm.Where("name = ?", name).First(&brand).Error
		if err == gorm.ErrRecordNotFound {
			brand = models.Brand{Name: name}
			if err := config.StoreGorm.Create(&brand).Error; err != nil {
				log.Fatalf("Failed to create brand %q: %v", name, err)
			}
		} else if err != nil {
			log.Fatalf("Database error: %v", err)
		}
		result[name] = brand
	}
	log.Printf("✓ Seeded %d brands", len(result))
	return result
}

func float64Ptr(v float64) *float64 { return &v }

func seedProducts(categories map[string]models.Category, brands map[string]models.Brand) {
	type seedProduct struct {
		Name          string
		Slug          string
		Description   string
		Price         float64
		ComparePrice  *float64
		StockQuantity int
		Available     bool
		Category      string
		Brand         string
		Images        models.ImageList
		Features      models.FeatureList
	}

	products := []seedProduct{
		{
			Name:          "Wireless Router AC1200",
			Slug:          "wireless-router-ac1200",
			Description:   "Dual-band wireless router with gigabit ethernet and parental controls.",
			Price:         1500,
			ComparePrice:  float64Ptr(2000),
			StockQuantity: 24,
			Available:     true,
			Category:      "Networking",
			Brand:         "NetGrid",
			Images:        models.ImageList{{URL: "https://cdn.voltline.example/products/router-ac1200.jpg"}},
			Features:      models.FeatureList{"Dual-band 2.4/5GHz", "4x Gigabit LAN", "WPA3"},
		},
		{
			Name:          "Router Pro X6",
			Slug:          "router-pro-x6",
			Description:   "Tri-band WiFi 6 router for large homes and heavy streaming.",
			Price:         3000,
			StockQuantity: 3,
			Available:     true,
			Category:      "Networking",
			Brand:         "NetGrid",
			Images:        models.ImageList{{URL: "https://cdn.voltline.example/products/router-pro-x6.jpg"}},
			Features:      models.FeatureList{"WiFi 6", "Tri-band", "OFDMA"},
		},
		{
			Name:          "Mesh Node Duo",
			Slug:          "mesh-node-duo",
			Description:   "Two-pack mesh extender nodes, pairs with any NetGrid router.",
			Price:         2200,
			StockQuantity: 0,
			Available:     true,
			Category:      "Networking",
			Brand:         "NetGrid",
		},
		{
			Name:          "Studio Headphones SC-40",
			Slug:          "studio-headphones-sc-40",
			Description:   "Closed-back over-ear headphones with 40mm drivers.",
			Price:         4500,
			ComparePrice:  float64Ptr(5500),
			StockQuantity: 12,
			Available:     true,
			Category:      "Audio",
			Brand:         "SoundCore",
			Features:      models.FeatureList{"40mm drivers", "Detachable cable"},
		},
		{
			Name:          "Bluetooth Speaker Mini",
			Slug:          "bluetooth-speaker-mini",
			Description:   "Pocket-sized speaker with 12 hour battery life.",
			Price:         1200,
			StockQuantity: 40,
			Available:     true,
			Category:      "Audio",
			Brand:         "SoundCore",
		},
		{
			Name:          "Mechanical Keyboard BW-87",
			Slug:          "mechanical-keyboard-bw-87",
			Description:   "Tenkeyless mechanical keyboard with hot-swappable switches.",
			Price:         6800,
			StockQuantity: 8,
			Available:     true,
			Category:      "Computing",
			Brand:         "ByteWorks",
			Features:      models.FeatureList{"Hot-swappable", "PBT keycaps", "USB-C"},
		},
		{
			Name:          "Smart Plug Trio",
			Slug:          "smart-plug-trio",
			Description:   "Three WiFi smart plugs with energy monitoring.",
			Price:         1800,
			ComparePrice:  float64Ptr(2400),
			StockQuantity: 2,
			Available:     true,
			Category:      "Smart Home",
			Brand:         "Voltline",
		},
		{
			Name:          "USB-C Charging Cable 2m",
			Slug:          "usb-c-charging-cable-2m",
			Description:   "Braided 100W USB-C to USB-C cable.",
			Price:         450,
			StockQuantity: 120,
			Available:     true,
			Category:      "Accessories",
			Brand:         "Voltline",
		},
	}

	created := 0
	for _, sp := range products {
		var existing models.Product
		err := config.StoreGorm.Where("slug = ?", sp.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Database error: %v", err)
		}

		category := categories[sp.Category]
		brand := brands[sp.Brand]
		product := models.Product{
			Name:          sp.Name,
			Slug:          sp.Slug,
			Description:   sp.Description,
			Price:         sp.Price,
			ComparePrice:  sp.ComparePrice,
			StockQuantity: sp.StockQuantity,
			Available:     sp.Available,
			Images:        sp.Images,
			Features:      sp.Features,
			CategoryID:    &category.ID,
			BrandID:       &brand.ID,
		}
		if err := config.StoreGorm.Create(&product).Error; err != nil {
			log.Fatalf("Failed to create product %q: %v", sp.Name, err)
		}
		created++
	}
	log.Printf("✓ Seeded %d products (%d new)", len(products), created)
}

func seedAdmin() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping admin account")
		return
	}
	if len(password) < 8 {
		log.Fatal("❌ SEED_ADMIN_PASSWORD must be at least 8 characters")
	}

	var existing models.User
	if err := config.StoreGorm.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("✓ Admin '%s' already exists, skipping", email)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	passwordHash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		ID:            uuid.Must(uuid.NewV7()),
		Email:         email,
		Name:          "Store Admin",
		PasswordHash:  &passwordHash,
		Provider:      "email",
		Role:          "admin",
		Status:        "active",
		EmailVerified: true,
	}
	if err := config.StoreGorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("✓ Admin account created: %s", email)
}
