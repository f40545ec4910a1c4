package models

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleTrader Role = "trader"
	RoleAdmin  Role = "admin"
)

func (r Role) ToString() string {
	return string(r)
}

type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsSuperuser  bool      `db:"is_superuser" json:"is_superuser"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
