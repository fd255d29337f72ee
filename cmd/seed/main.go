package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/upload"
	"hotelbooking/internal/pkg/pricing"
	"hotelbooking/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := db.AutoMigrate(&upload.Upload{}); err != nil {
		log.Fatal("AutoMigrate uploads failed:", err)
	}

	// Cleanup old data (safe order for foreign keys)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM email_outbox")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM listings")
	db.Exec("DELETE FROM submissions")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	submissions := repository.NewSubmissionRepository(db)
	approvals := repository.NewApprovalRepository(db)
	bookings := repository.NewBookingRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@hotelbooking.kz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
	}
	must(users.Create(ctx, admin))
	log.Println("Admin created: admin@hotelbooking.kz / admin123")

	guests := make([]*domain.User, 0, 3)
	for i, email := range []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
		guest := &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleGuest,
			Name:         fmt.Sprintf("Guest %d", i+1),
			Phone:        fmt.Sprintf("+7 777 123 45%02d", i+67),
		}
		must(users.Create(ctx, guest))
		guests = append(guests, guest)
	}

	owners := make([]*domain.User, 0, 2)
	for i, email := range []string{"aidar@harborview.kz", "gulnaz@steppeinn.kz"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		owner := &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleHotelOwner,
			Name:         fmt.Sprintf("Owner %d", i+1),
		}
		must(users.Create(ctx, owner))
		owners = append(owners, owner)
	}

	// ================== HOTELS ==================
	log.Println("Creating hotel submissions...")

	hotels := []struct {
		name     string
		category domain.HotelCategory
		country  string
		price    float64
		approve  bool
	}{
		{"Harbor View", domain.CategoryLuxury, "Kazakhstan", 180, true},
		{"Steppe Inn", domain.CategoryMedium, "Kazakhstan", 75, true},
		{"Altai Lodge", domain.CategoryBudget, "Kazakhstan", 35, true},
		{"Caspian Pearl", domain.CategoryLuxury, "Kazakhstan", 220, false},
	}

	var published []*domain.Submission
	for i, h := range hotels {
		sub := &domain.Submission{
			SubmitterID:  owners[i%len(owners)].ID,
			Name:         h.name,
			Description:  "Comfortable rooms, breakfast included.",
			Category:     h.category,
			Address:      fmt.Sprintf("%d Abay Ave", i+10),
			Country:      h.country,
			NightlyPrice: h.price,
			MaxCapacity:  domain.DefaultMaxCapacity,
			ImageIDs:     []string{uuid.NewString()},
		}
		must(submissions.Create(ctx, sub))

		if h.approve {
			approved, err := approvals.Approve(ctx, sub.ID)
			must(err)
			published = append(published, approved)
		}
	}
	log.Printf("Created %d submissions, %d published", len(hotels), len(published))

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	now := time.Now()
	for i, sub := range published {
		checkIn := now.AddDate(0, 0, 7*(i+1))
		checkOut := checkIn.AddDate(0, 0, 3)
		nights := pricing.Nights(checkIn, checkOut)
		partySize := 2

		b := &domain.Booking{
			Reference:  uuid.NewString(),
			ListingID:  sub.ID,
			RenterID:   guests[i%len(guests)].ID,
			PartySize:  partySize,
			Nights:     nights,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			MonthLabel: checkIn.Month().String(),
			TotalPrice: pricing.Total(hotels[i].price, partySize, nights),
			Status:     domain.BookingPending,
		}
		must(bookings.Create(ctx, b))
	}

	log.Println("Seed complete.")
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
