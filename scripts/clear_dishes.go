package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Dev helper: wipe every dish and its membership rows, keeping ingredients
// and master data. Run with: go run scripts/clear_dishes.go
func main() {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "data/menudb.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	for _, table := range []string{"dish_genre_relations", "dish_ingredient_relations", "dishes"} {
		result := db.Exec("DELETE FROM " + table)
		if result.Error != nil {
			log.Fatalf("Failed to clear %s: %v", table, result.Error)
		}
		fmt.Printf("Cleared %d rows from %s\n", result.RowsAffected, table)
	}

	fmt.Println("Done! Dish data cleared.")
}
