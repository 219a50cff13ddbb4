package migrations

import (
	"github.com/NeuralTrust/FormGuard/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250103_create_submissions_tables",
		Name: "Create submitted_forms and submitted_form_fields tables",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS submitted_forms (
					id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					form_id    UUID NOT NULL REFERENCES user_defined_forms(id) ON DELETE CASCADE,
					session_id VARCHAR(64),
					unverified TEXT[],
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_submitted_forms_form_id
				ON submitted_forms (form_id);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE TABLE IF NOT EXISTS submitted_form_fields (
					id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					submitted_form_id UUID NOT NULL REFERENCES submitted_forms(id) ON DELETE CASCADE,
					name              VARCHAR(255) NOT NULL,
					title             VARCHAR(255),
					value             TEXT
				);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP TABLE IF EXISTS submitted_form_fields;`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP TABLE IF EXISTS submitted_forms;`).Error
		},
	})
}
