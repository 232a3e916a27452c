package models

import "time"

// Role — роль пользователя в маркетплейсе.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// User — профиль аутентифицированного пользователя.
// HTTP-слой им не владеет: профиль запрашивается по требованию (/auth/me/)
// и кэшируется стором auth.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatorProfile — профиль создателя школы (преподавателя-владельца).
type CreatorProfile struct {
	UserID      int64  `json:"user_id"`
	SchoolName  string `json:"school_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
	ReferralKey string `json:"referral_key"`
}
