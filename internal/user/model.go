package user

import "time"

type User struct {
	ID        string `gorm:"primaryKey"` // UUID venant du service d'authentification
	CreatedAt time.Time
	Username  string
	Email     string
}
