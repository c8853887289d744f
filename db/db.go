package db

import (
	"wedding-admin/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		dialector = mysql.Open(config.MYSQL_DSN)
	} else {
		dialector = sqlite.Open(config.SQLITE_FILE)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		// Unique constraint violations must come back as gorm.ErrDuplicatedKey
		// so CSV import can count duplicates instead of failing the batch
		TranslateError: true,
	})
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
