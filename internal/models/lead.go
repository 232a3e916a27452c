package models

import "time"

// LeadStatus — стадия обработки лида.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadEnrolled  LeadStatus = "enrolled"
	LeadRejected  LeadStatus = "rejected"
)

// Lead — заявка, пришедшая из Telegram-бота.
// Бот — внешний коллаборатор: здесь лиды только читаются и переводятся
// между статусами.
type Lead struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	TelegramUsername string     `json:"telegram_username"`
	CourseID         int64      `json:"course_id"`
	Status           LeadStatus `json:"status"`
	Comment          string     `json:"comment"`
	CreatedAt        time.Time  `json:"created_at"`
}
