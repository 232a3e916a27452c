package client

import (
	"context"
	"net/http"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// Plans возвращает доступные тарифные планы.
func (c *Client) Plans(ctx context.Context) ([]models.Plan, error) {
	var out []models.Plan
	if err := c.list(ctx, "/subscriptions/plans/", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CurrentSubscription возвращает текущую подписку школы.
func (c *Client) CurrentSubscription(ctx context.Context) (*models.Subscription, error) {
	var out models.Subscription
	if err := c.do(ctx, http.MethodGet, "/subscriptions/current/", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// SubscriptionUsage возвращает потребление квот тарифа.
func (c *Client) SubscriptionUsage(ctx context.Context) (*models.Usage, error) {
	var out models.Usage
	if err := c.do(ctx, http.MethodGet, "/subscriptions/usage/", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ChangePlan переводит школу на другой тариф.
func (c *Client) ChangePlan(ctx context.Context, planID int64) (*models.Subscription, error) {
	in := map[string]int64{"plan_id": planID}

	var out models.Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions/change/", in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
