package migrations

import (
	"github.com/NeuralTrust/FormGuard/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250102_create_recaptcha_v3_fields_table",
		Name: "Create editable_recaptcha_v3_fields and editable_custom_rules tables",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS editable_recaptcha_v3_fields (
					id                   UUID PRIMARY KEY,
					form_id              UUID NOT NULL REFERENCES user_defined_forms(id) ON DELETE CASCADE,
					name                 VARCHAR(255) NOT NULL,
					title                VARCHAR(255),
					required             BOOLEAN NOT NULL DEFAULT FALSE,
					placeholder          VARCHAR(255),
					sort                 INTEGER NOT NULL DEFAULT 0,
					extra_class          TEXT,
					default_value        TEXT,
					right_title          VARCHAR(255),
					custom_error_message VARCHAR(255),
					score                INTEGER NOT NULL DEFAULT 70,
					action               VARCHAR(255) NOT NULL DEFAULT 'submit',
					created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_editable_recaptcha_v3_fields_form_id
				ON editable_recaptcha_v3_fields (form_id);
			`).Error; err != nil {
				return err
			}

			// parent_id is not a foreign key: rules may belong to any field table
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS editable_custom_rules (
					id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					parent_id          UUID NOT NULL,
					condition_field_id UUID,
					condition_option   VARCHAR(64),
					field_value        TEXT,
					created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_editable_custom_rules_parent_id
				ON editable_custom_rules (parent_id);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP TABLE IF EXISTS editable_custom_rules;`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP TABLE IF EXISTS editable_recaptcha_v3_fields;`).Error
		},
	})
}
