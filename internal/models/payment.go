package models

import "time"

// PaymentStatus — состояние платежа, проходящего ручную модерацию.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

// ManualPayment — платёж за подписку, подтверждаемый скриншотом перевода.
// Скриншот загружается multipart'ом; обратно приходит только URL.
type ManualPayment struct {
	ID            int64         `json:"id"`
	TeacherID     int64         `json:"teacher_id"`
	PlanID        int64         `json:"plan_id"`
	Amount        string        `json:"amount"`
	ScreenshotURL string        `json:"screenshot_url"`
	Status        PaymentStatus `json:"status"`
	Comment       string        `json:"comment"`
	CreatedAt     time.Time     `json:"created_at"`
}

// CoursePaymentInfo — реквизиты для оплаты курса студентом.
type CoursePaymentInfo struct {
	CourseID   int64  `json:"course_id"`
	Price      string `json:"price"`
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
}

// Purchase — покупка курса студентом.
type Purchase struct {
	ID           int64         `json:"id"`
	CourseID     int64         `json:"course_id"`
	StudentName  string        `json:"student_name"`
	StudentPhone string        `json:"student_phone"`
	Amount       string        `json:"amount"`
	Status       PaymentStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}
