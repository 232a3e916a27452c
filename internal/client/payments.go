package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// SubmitManualPayment отправляет платёж за подписку со скриншотом
// перевода (multipart).
func (c *Client) SubmitManualPayment(ctx context.Context, planID int64, amount, screenshotName string, screenshot io.Reader) (*models.ManualPayment, error) {
	fields := map[string]string{
		"plan_id": strconv.FormatInt(planID, 10),
		"amount":  amount,
	}

	var out models.ManualPayment
	if err := c.upload(ctx, http.MethodPost, "/payments/manual/", fields, "screenshot", screenshotName, screenshot, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ManualPayments возвращает платежи текущего преподавателя.
func (c *Client) ManualPayments(ctx context.Context) ([]models.ManualPayment, error) {
	var out []models.ManualPayment
	if err := c.list(ctx, "/payments/manual/", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CoursePaymentInput — данные покупки курса студентом.
type CoursePaymentInput struct {
	StudentName  string `json:"student_name"`
	StudentPhone string `json:"student_phone"`
	Amount       string `json:"amount"`
}

// CoursePaymentInfo возвращает реквизиты для оплаты курса.
func (c *Client) CoursePaymentInfo(ctx context.Context, courseID int64) (*models.CoursePaymentInfo, error) {
	var out models.CoursePaymentInfo
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/courses/%d/payment/", courseID), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// SubmitCoursePayment фиксирует покупку курса студентом.
func (c *Client) SubmitCoursePayment(ctx context.Context, courseID int64, in CoursePaymentInput) (*models.Purchase, error) {
	var out models.Purchase
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/payment/", courseID), in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Purchases возвращает покупки курсов школы.
func (c *Client) Purchases(ctx context.Context) ([]models.Purchase, error) {
	var out []models.Purchase
	if err := c.list(ctx, "/purchases/", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}
