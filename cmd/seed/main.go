package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"bukutamu/internal/infra"
	"bukutamu/internal/models/db_models"
	"bukutamu/internal/repositories"
)

// Seeds the recipient directory with the initial office hosts so the visitor
// form has someone to offer on a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	if err := infra.MigrateSchemas(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	repo := repositories.NewRecipientRepository(db)
	ctx := context.Background()

	seeds := []db_models.Recipient{
		{Name: "pak-budi", Position: "Kepala Divisi", Whatsapp: "6281234567890", IsActive: true},
		{Name: "ibu-siti", Position: "HRD", Whatsapp: "6281234567891", IsActive: true},
		{Name: "resepsionis", Position: "Resepsionis", Whatsapp: "6281234567892", IsActive: true},
	}

	for i := range seeds {
		existing, err := repo.FindActiveByName(ctx, seeds[i].Name)
		if err != nil {
			log.Fatalf("seed lookup failed: %v", err)
		}
		if existing != nil {
			log.Printf("recipient %s already present, skipping", seeds[i].Name)
			continue
		}
		if err := repo.Insert(ctx, &seeds[i]); err != nil {
			log.Fatalf("seed insert failed: %v", err)
		}
		log.Printf("created recipient %s (%s)", seeds[i].Name, seeds[i].Position)
	}
}
