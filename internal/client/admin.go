package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// AdminStats возвращает сводку платформы.
func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats/", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// AdminTeachers возвращает список преподавателей платформы.
func (c *Client) AdminTeachers(ctx context.Context) ([]models.TeacherSummary, error) {
	var out []models.TeacherSummary
	if err := c.list(ctx, "/admin/teachers/", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// AdminPayments возвращает платежи на модерации.
func (c *Client) AdminPayments(ctx context.Context) ([]models.ManualPayment, error) {
	var out []models.ManualPayment
	if err := c.list(ctx, "/admin/payments/", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ApprovePayment подтверждает платёж.
func (c *Client) ApprovePayment(ctx context.Context, id int64) (*models.ManualPayment, error) {
	var out models.ManualPayment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/payments/%d/approve/", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// RejectPayment отклоняет платёж с комментарием для преподавателя.
func (c *Client) RejectPayment(ctx context.Context, id int64, comment string) (*models.ManualPayment, error) {
	in := map[string]string{"comment": comment}

	var out models.ManualPayment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/payments/%d/reject/", id), in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// AdminSubscriptions возвращает подписки всех школ.
func (c *Client) AdminSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	var out []models.Subscription
	if err := c.list(ctx, "/admin/subscriptions/", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Notifications возвращает уведомления админа.
func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.list(ctx, "/admin/notifications/", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// MarkNotificationRead помечает уведомление прочитанным.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/notifications/%d/read/", id), nil, nil)
}
