package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/taskboard-api/config"
)

// Demo data for local development: five users and a handful of tasks in
// each workflow state.

type seedUser struct {
	first, last, email string
}

type seedTask struct {
	description string
	status      string
	userIdx     int
}

var seedUsers = []seedUser{
	{"Alice", "Johnson", "alice.johnson@example.com"},
	{"Bob", "Smith", "bob.smith@example.com"},
	{"Charlie", "Brown", "charlie.brown@example.com"},
	{"Diana", "Prince", "diana.prince@example.com"},
	{"Eve", "Martinez", "eve.martinez@example.com"},
}

var seedTasks = []seedTask{
	{"Complete project documentation", "TODO", 0},
	{"Review pull requests", "DOING", 0},
	{"Deploy to staging", "DONE", 0},
	{"Write unit tests", "TODO", 1},
	{"Fix login bug", "DOING", 1},
	{"Update dependencies", "TODO", 2},
	{"Refactor database layer", "DONE", 2},
	{"Design new dashboard", "DOING", 3},
	{"Prepare sprint demo", "TODO", 4},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var existing int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&existing); err != nil {
		log.Fatalf("failed to count users: %v", err)
	}
	if existing > 0 {
		fmt.Printf("database already has %d users, skipping seed\n", existing)
		return
	}

	userIDs := make([]int64, len(seedUsers))
	for i, u := range seedUsers {
		if err := db.QueryRow(`
			INSERT INTO users (first_name, last_name, email)
			VALUES ($1, $2, $3)
			RETURNING id
		`, u.first, u.last, u.email).Scan(&userIDs[i]); err != nil {
			log.Fatalf("failed to seed user %s %s: %v", u.first, u.last, err)
		}
	}
	fmt.Printf("created %d users\n", len(userIDs))

	for _, t := range seedTasks {
		if _, err := db.Exec(`
			INSERT INTO tasks (description, status, user_id)
			VALUES ($1, $2, $3)
		`, t.description, t.status, userIDs[t.userIdx]); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.description, err)
		}
	}
	fmt.Printf("created %d tasks\n", len(seedTasks))
}
