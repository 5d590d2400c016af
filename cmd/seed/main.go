package main

import (
	"os"

	"golang.org/x/crypto/bcrypt"

	"beautysalon/internal/database"
	"beautysalon/internal/pkg/logger"
	"beautysalon/internal/repository"
)

// Dev-only seeding: schema plus a few masters, services and a demo user.
func main() {
	log := logger.Init(logger.Options{Pretty: true})

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "salon.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM user_cards")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM masters")
	db.Exec("DELETE FROM users")

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	db.Exec(
		"INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"demo@salon.local", string(hash), "Demo Client",
	)

	masters := []struct {
		name, specialization string
	}{
		{"Anna Petrova", "Hair stylist"},
		{"Maria Ivanova", "Nail artist"},
		{"Elena Sokolova", "Makeup artist"},
		{"Olga Smirnova", "Massage therapist"},
	}
	for _, m := range masters {
		db.Exec(
			"INSERT INTO masters (name, specialization, rating) VALUES (?, ?, 0)",
			m.name, m.specialization,
		)
	}

	services := []struct {
		name     string
		price    float64
		duration int
	}{
		{"Haircut", 35, 45},
		{"Coloring", 80, 120},
		{"Manicure", 30, 60},
		{"Makeup", 50, 60},
		{"Massage", 60, 60},
	}
	for _, s := range services {
		db.Exec(
			"INSERT INTO services (name, price, duration_minutes) VALUES (?, ?, ?)",
			s.name, s.price, s.duration,
		)
	}

	log.Info().Msg("seed complete")
}
