package transaction

import (
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGORM wraps an existing *sql.DB (for example a sqlmock connection) in a postgres gorm
// handle with the settings the application uses.
func OpenGORM(db *sql.DB) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
}
