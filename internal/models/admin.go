package models

import "time"

// AdminStats — сводные показатели платформы для админ-панели.
type AdminStats struct {
	Teachers            int    `json:"teachers"`
	Students            int    `json:"students"`
	Courses             int    `json:"courses"`
	ActiveSubscriptions int    `json:"active_subscriptions"`
	PendingPayments     int    `json:"pending_payments"`
	Revenue             string `json:"revenue"`
}

// TeacherSummary — строка списка преподавателей в админке.
type TeacherSummary struct {
	ID           int64              `json:"id"`
	Email        string             `json:"email"`
	SchoolName   string             `json:"school_name"`
	Subdomain    string             `json:"subdomain"`
	PlanSlug     string             `json:"plan_slug"`
	Status       SubscriptionStatus `json:"status"`
	RegisteredAt time.Time          `json:"registered_at"`
}

// Notification — уведомление админу (новый платёж, истекающая подписка).
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
