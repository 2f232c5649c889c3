package migration

import (
	"foodbridge-backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&entities.User{},
		&entities.OrgDetails{},
		&entities.Restaurant{},
		&entities.Product{},
		&entities.Review{},
		&entities.FoodRequest{},
		&entities.Donation{},
		&entities.FoodBucket{},
		&entities.FoodBucketItem{},
		&entities.Payment{},
		&entities.ProcessedEvent{},
	}
}

func Migrate(db *gorm.DB) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			log.Errorf("Error migrating %T: %v", model, err)
			return err
		}
	}

	log.Info("Database migration complete")
	return nil
}
