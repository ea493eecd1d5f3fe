// Command generate_demo creates a demo database with a sample reading log.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/lecturas-app/lecturas/internal/database"
	"github.com/lecturas-app/lecturas/internal/database/books"
	"github.com/lecturas-app/lecturas/internal/database/profile"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	repo := books.NewRepository(db)
	for _, input := range sampleBooks() {
		id, err := repo.Create(input)
		if err != nil {
			log.Printf("Failed to save book %s: %v", input.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s (id %d)", input.Title, input.Author, id)
	}

	setDemoProfile(db)

	log.Println("Demo database generated successfully!")
}

func setDemoProfile(db *database.Database) {
	repo := profile.NewRepository(db)
	p, err := repo.Get()
	if err != nil {
		log.Printf("Failed to load profile: %v", err)
		return
	}

	p.Name = "Lector de Demo"
	p.Email = "demo@example.com"
	p.Preferences = map[string]string{"theme": "light", "language": "es"}
	if err := repo.Update(p); err != nil {
		log.Printf("Failed to update profile: %v", err)
	}
}

func sampleBooks() []books.BookInput {
	intPtr := func(v int) *int { return &v }
	floatPtr := func(v float64) *float64 { return &v }

	return []books.BookInput{
		{
			Title:     "Cien años de soledad",
			Author:    "Gabriel García Márquez",
			Genre:     "Novela",
			Subgenre:  "Realismo Mágico",
			YearRead:  intPtr(2022),
			ReadDate:  "2022-03-18",
			Rating:    floatPtr(5),
			Pages:     intPtr(471),
			Publisher: "Sudamericana",
			Comment:   "Relectura pendiente del árbol genealógico de los Buendía.",
		},
		{
			Title:    "Ficciones",
			Author:   "Jorge Luis Borges",
			Genre:    "Cuento",
			YearRead: intPtr(2022),
			ReadDate: "2022-07-02",
			Rating:   floatPtr(5),
			Pages:    intPtr(203),
		},
		{
			Title:    "Pedro Páramo",
			Author:   "Juan Rulfo",
			Genre:    "Novela",
			YearRead: intPtr(2023),
			ReadDate: "2023-01-25",
			Rating:   floatPtr(4.5),
			Pages:    intPtr(124),
			Comment:  "Comala en una sentada.",
		},
		{
			Title:    "El laberinto de la soledad",
			Author:   "Octavio Paz",
			Genre:    "Ensayo",
			YearRead: intPtr(2023),
			ReadDate: "2023-05-11",
			Rating:   floatPtr(4),
			Pages:    intPtr(191),
		},
		{
			Title:     "La casa de los espíritus",
			Author:    "Isabel Allende",
			Genre:     "Novela",
			Subgenre:  "Realismo Mágico",
			YearRead:  intPtr(2023),
			ReadDate:  "2023-10-30",
			Rating:    floatPtr(4),
			Pages:     intPtr(433),
			Publisher: "Plaza & Janés",
		},
		{
			Title:    "Veinte poemas de amor y una canción desesperada",
			Author:   "Pablo Neruda",
			Genre:    "Poesía",
			YearRead: intPtr(2024),
			ReadDate: "2024-02-14",
			Rating:   floatPtr(3.5),
			Pages:    intPtr(86),
		},
		{
			Title:    "Nuestra parte de noche",
			Author:   "Mariana Enriquez",
			Genre:    "Terror",
			YearRead: intPtr(2024),
			ReadDate: "2024-08-09",
			Rating:   floatPtr(4.5),
			Pages:    intPtr(668),
			Comment:  "Mejor de noche, con la casa en silencio.",
		},
		{
			Title:    "El túnel",
			Author:   "Ernesto Sabato",
			Genre:    "Novela",
			YearRead: intPtr(2025),
			ReadDate: "2025-01-19",
			Rating:   floatPtr(4),
			Pages:    intPtr(158),
		},
	}
}
