// Command seed inserts the demo users and appointment services into the
// database. Safe to re-run: existing demo rows are left alone.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	authadapters "salon_backend/internal/feature/auth/adapters"
	authentity "salon_backend/internal/feature/auth/domain/entity"
	authusecase "salon_backend/internal/feature/auth/usecase"
	bookingadapters "salon_backend/internal/feature/booking/adapters"
	bookingentity "salon_backend/internal/feature/booking/domain/entity"
	bookingusecase "salon_backend/internal/feature/booking/usecase"
	infradb "salon_backend/internal/platform/db"
)

func main() {
	_ = godotenv.Load()

	db := infradb.OpenDB()
	userRepo := authadapters.NewUserPostgres(db)
	serviceRepo := bookingadapters.NewServicePostgres(db)

	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash demo password:", err)
	}

	users := []authentity.User{
		{Email: "admin@demo.com", Password: string(hashed), Name: "Admin User"},
		{Email: "user@demo.com", Password: string(hashed), Name: "Demo User"},
	}
	for i := range users {
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			if errors.Is(err, authusecase.ErrEmailTaken) {
				log.Printf("user %s already seeded, skipping", users[i].Email)
				continue
			}
			log.Fatal("failed to seed user:", err)
		}
	}

	// The demo set is small enough to dedupe by scanning the full list
	existing, err := serviceRepo.FindAll(ctx, bookingusecase.ListFilter{})
	if err != nil {
		log.Fatal("failed to list existing services:", err)
	}

	desc := func(s string) *string { return &s }
	minutes := func(n int) *int { return &n }

	services := []bookingentity.AppointmentService{
		{Name: "Web Development", Description: desc("Professional web development services"), Price: 5000, ShowTime: minutes(60), Order: 1, IsPublic: true},
		{Name: "Mobile App Development", Description: desc("iOS and Android development"), Price: 8000, ShowTime: minutes(90), Order: 2, IsPublic: true},
		{Name: "Consulting", Description: desc("One-hour technical consulting session"), Price: 1500, ShowTime: minutes(60), Order: 3, IsPublic: true},
	}
	for i := range services {
		if containsName(existing, services[i].Name) {
			log.Printf("service %q already seeded, skipping", services[i].Name)
			continue
		}
		if err := serviceRepo.Create(ctx, &services[i]); err != nil {
			log.Fatal("failed to seed service:", err)
		}
	}

	log.Println("seed ok")
}

func containsName(services []bookingentity.AppointmentService, name string) bool {
	for i := range services {
		if services[i].Name == name {
			return true
		}
	}
	return false
}
