package models

import (
	"wedding-admin/db"
)

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Wedding{})
	db.Instance.AutoMigrate(&Guest{})
	db.Instance.AutoMigrate(&InvitationTemplate{})
	db.Instance.AutoMigrate(&MessageTemplate{})
}
