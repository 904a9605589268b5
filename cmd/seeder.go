package cmd

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with parks and sample accounts for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{
				"budget_items", "budgets", "emergency_requests", "extra_funds_requests",
				"fund_requests", "payments", "services", "tours", "donations", "login_logs",
				"visitors", "park_staff", "finance_officers", "government_officers", "auditors", "admins",
			} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedParks(db)

		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		accounts := []struct {
			Table     string
			Role      string
			Email     string
			FirstName string
			LastName  string
			ParkName  string
		}{
			{"admins", "admin", "admin@parkconserve.org", "Ada", "Okafor", ""},
			{"park_staff", "parkstaff", "staff@parkconserve.org", "Samuel", "Mensah", "Cross River National Park"},
			{"finance_officers", "finance", "finance@parkconserve.org", "Ngozi", "Adeyemi", "Yankari National Park"},
			{"government_officers", "government", "gov@parkconserve.org", "Ibrahim", "Bello", ""},
			{"auditors", "auditor", "auditor@parkconserve.org", "Chiamaka", "Eze", "Yankari National Park"},
			{"visitors", "visitor", "visitor@mail.com", "Tunde", "Falade", ""},
		}

		for _, a := range accounts {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM "+a.Table+" WHERE email = $1", a.Email).Scan(&exists); err == nil {
				continue
			}

			if a.ParkName != "" {
				_, err = db.Exec(
					"INSERT INTO "+a.Table+" (first_name, last_name, email, password_hash, role, park_name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, now(), now())",
					a.FirstName, a.LastName, a.Email, string(hash), a.Role, a.ParkName)
			} else {
				_, err = db.Exec(
					"INSERT INTO "+a.Table+" (first_name, last_name, email, password_hash, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, now(), now())",
					a.FirstName, a.LastName, a.Email, string(hash), a.Role)
			}
			if err != nil {
				log.Fatalf("failed to seed %s account %s: %v", a.Role, a.Email, err)
			}
			fmt.Printf("Seeded %s account: %s\n", a.Role, a.Email)
		}

		fmt.Println("Seeding complete; all sample accounts use password \"password\"")
	},
}

func seedParks(db *sqlx.DB) {
	parks := []struct {
		Name     string
		Location string
	}{
		{"Cross River National Park", "Cross River State"},
		{"Yankari National Park", "Bauchi State"},
		{"Kainji Lake National Park", "Niger State"},
		{"Gashaka Gumti National Park", "Taraba State"},
		{"Old Oyo National Park", "Oyo State"},
		{"Chad Basin National Park", "Borno State"},
		{"Kamuku National Park", "Kaduna State"},
	}

	for _, p := range parks {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM parks WHERE name = $1", p.Name).Scan(&exists); err == nil {
			continue
		}
		if _, err := db.Exec(
			"INSERT INTO parks (name, location, created_at) VALUES ($1, $2, now())", p.Name, p.Location); err != nil {
			log.Fatalf("failed to seed park %s: %v", p.Name, err)
		}
		fmt.Printf("Seeded park: %s\n", p.Name)
	}
}
