package models

import (
	"wedding-admin/db"
	"wedding-admin/utils"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Name      string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
	Role      Role   `gorm:"type:varchar(20);default:'ADMIN'"`
}

const saltSize = 60

func UserCreate(name, email, plainTextPassword string, role Role) (u User, err error) {
	u.Name = name
	u.Email = email
	u.Role = role
	u.SetPassword(plainTextPassword)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(email, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "email = ?", email)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// HasRole reports whether the user satisfies the required role.
// SUPER_ADMIN satisfies every requirement.
func (u *User) HasRole(required Role) bool {
	if u.IsSuperAdmin() {
		return true
	}
	return u.Role == required
}

// CanAccessWedding is the single ownership predicate used at every boundary:
// the owning admin or any SUPER_ADMIN.
func CanAccessWedding(u *User, w *Wedding) bool {
	return u.IsSuperAdmin() || w.AdminID == u.ID
}
