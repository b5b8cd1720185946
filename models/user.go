package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleUser      Role = "user"
	RoleAuthority Role = "authority"
	RoleAdmin     Role = "admin"
)

// Privileged reports whether the role may perform administrative
// operations (review all reports, sync stations, add readings).
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleAuthority
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);default:user" json:"role"`
}

func (User) TableName() string {
	return "auth.users"
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}
