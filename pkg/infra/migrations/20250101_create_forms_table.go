package migrations

import (
	"github.com/NeuralTrust/FormGuard/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250101_create_forms_table",
		Name: "Create user_defined_forms table",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE TABLE IF NOT EXISTS user_defined_forms (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title       VARCHAR(255) NOT NULL DEFAULT '',
					url_segment VARCHAR(255) NOT NULL,
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT uq_user_defined_forms_url_segment UNIQUE (url_segment)
				);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS user_defined_forms;`).Error
		},
	})
}
