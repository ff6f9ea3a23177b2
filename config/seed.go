package config

import (
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harper-lane/storefront-api/models"
)

type seedProduct struct {
	category  string
	name      string
	slug      string
	desc      string
	price     string
	compareAt string
	image     string
	stock     int
	featured  bool
}

// SeedDatabase loads the demo catalog and an admin account. Inserts are
// idempotent on their unique keys so repeated runs are safe.
func SeedDatabase(db *gorm.DB) error {
	log.Println("Seeding database...")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@luxecart.com"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "User",
		Role:         "admin",
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics", Description: "Cutting-edge gadgets and tech accessories", ImageURL: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=600"},
		{Name: "Clothing", Slug: "clothing", Description: "Premium fashion and apparel", ImageURL: "https://images.unsplash.com/photo-1445205170230-053b83016050?w=600"},
		{Name: "Home & Garden", Slug: "home-garden", Description: "Elegant home decor", ImageURL: "https://images.unsplash.com/photo-1556228578-0d85b1a4d571?w=600"},
		{Name: "Sports", Slug: "sports", Description: "Fitness equipment", ImageURL: "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=600"},
		{Name: "Books", Slug: "books", Description: "Literature and educational", ImageURL: "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=600"},
	}
	for i := range categories {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&categories[i]).Error; err != nil {
			return err
		}
	}

	var existing []models.Category
	if err := db.Find(&existing).Error; err != nil {
		return err
	}
	catBySlug := make(map[string]models.Category, len(existing))
	for _, c := range existing {
		catBySlug[c.Slug] = c
	}

	products := []seedProduct{
		{"electronics", "Wireless Noise-Cancelling Headphones", "wireless-noise-cancelling-headphones", "Premium headphones with 30-hour battery life", "299.99", "349.99", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800", 45, true},
		{"electronics", "Smart Watch Pro", "smart-watch-pro", "Advanced fitness tracking", "399.99", "", "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800", 32, true},
		{"electronics", "Ultra-Wide Gaming Monitor", "ultra-wide-gaming-monitor", "34\" curved display, 144Hz", "599.99", "699.99", "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=800", 18, false},
		{"electronics", "Mechanical Keyboard RGB", "mechanical-keyboard-rgb", "Premium mechanical switches", "159.99", "", "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=800", 67, false},
		{"clothing", "Premium Leather Jacket", "premium-leather-jacket", "Genuine leather", "449.99", "549.99", "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800", 25, true},
		{"clothing", "Designer Sneakers", "designer-sneakers", "Limited edition", "189.99", "", "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=800", 0, false},
		{"clothing", "Cashmere Sweater", "cashmere-sweater", "100% pure cashmere", "229.99", "", "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=800", 41, false},
		{"home-garden", "Smart LED Floor Lamp", "smart-led-floor-lamp", "App-controlled lighting", "149.99", "199.99", "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800", 54, true},
		{"home-garden", "Minimalist Wall Clock", "minimalist-wall-clock", "Silent movement", "59.99", "", "https://images.unsplash.com/photo-1563861826100-9cb868fdbe1c?w=800", 89, false},
		{"home-garden", "Luxury Throw Blanket", "luxury-throw-blanket", "Ultra-soft microfiber", "79.99", "", "https://images.unsplash.com/photo-1584100936595-c0654b55a2e2?w=800", 73, false},
		{"sports", "Yoga Mat Premium", "yoga-mat-premium", "Extra-thick, non-slip", "49.99", "", "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=800", 96, false},
		{"sports", "Adjustable Dumbbells Set", "adjustable-dumbbells-set", "5-52.5 lbs range", "329.99", "399.99", "https://images.unsplash.com/photo-1532029837206-abbe2b7620e3?w=800", 22, false},
		{"sports", "Running Shoes Elite", "running-shoes-elite", "Lightweight and responsive", "139.99", "", "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800", 58, false},
		{"books", "The Art of Programming", "the-art-of-programming", "Software development guide", "44.99", "", "https://images.unsplash.com/photo-1532012197267-da84d127e765?w=800", 112, false},
		{"books", "Mindfulness for Modern Life", "mindfulness-for-modern-life", "Practical mindfulness guide", "24.99", "", "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=800", 87, false},
	}
	for _, sp := range products {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return err
		}
		p := models.Product{
			Name:        sp.name,
			Slug:        sp.slug,
			Description: sp.desc,
			Price:       price,
			ImageURL:    sp.image,
			Stock:       sp.stock,
			Featured:    sp.featured,
		}
		if cat, ok := catBySlug[sp.category]; ok {
			id := cat.ID
			p.CategoryID = &id
		}
		if sp.compareAt != "" {
			compare, err := decimal.NewFromString(sp.compareAt)
			if err != nil {
				return err
			}
			p.CompareAtPrice = decimal.NewNullDecimal(compare)
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&p).Error; err != nil {
			return err
		}
	}

	log.Println("Database seeded successfully")
	return nil
}
