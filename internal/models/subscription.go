package models

import "time"

// Plan — тарифный план подписки школы.
type Plan struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Price       string `json:"price"`
	MaxCourses  int    `json:"max_courses"`
	MaxStudents int    `json:"max_students"`
	// MaxStorageMB — квота файлового хранилища в мегабайтах.
	MaxStorageMB int64 `json:"max_storage_mb"`
}

// SubscriptionStatus — состояние подписки.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription — текущая подписка школы на тариф.
type Subscription struct {
	ID        int64              `json:"id"`
	Plan      Plan               `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	StartedAt time.Time          `json:"started_at"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// Usage — фактическое потребление квот тарифа.
type Usage struct {
	Courses       int   `json:"courses"`
	Students      int   `json:"students"`
	StorageUsedMB int64 `json:"storage_used_mb"`
}
