package postgres

import (
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or alters every table the repositories use.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
