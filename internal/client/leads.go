package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// Leads возвращает заявки из Telegram-бота. status != "" фильтрует по стадии.
func (c *Client) Leads(ctx context.Context, status models.LeadStatus) ([]models.Lead, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {string(status)}}
	}

	var out []models.Lead
	if err := c.list(ctx, "/leads/", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// UpdateLeadStatus переводит заявку в новую стадию обработки.
func (c *Client) UpdateLeadStatus(ctx context.Context, id int64, status models.LeadStatus, comment string) (*models.Lead, error) {
	in := map[string]string{"status": string(status)}
	if comment != "" {
		in["comment"] = comment
	}

	var out models.Lead
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/leads/%d/", id), in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
