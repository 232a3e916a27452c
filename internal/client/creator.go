package client

import (
	"context"
	"net/http"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// ProfileInput — изменяемые поля профиля создателя школы.
type ProfileInput struct {
	SchoolName *string `json:"school_name,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}

// Profile возвращает профиль создателя школы.
func (c *Client) Profile(ctx context.Context) (*models.CreatorProfile, error) {
	var out models.CreatorProfile
	if err := c.do(ctx, http.MethodGet, "/creator/profile/", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateProfile частично обновляет профиль создателя.
func (c *Client) UpdateProfile(ctx context.Context, in ProfileInput) (*models.CreatorProfile, error) {
	var out models.CreatorProfile
	if err := c.do(ctx, http.MethodPatch, "/creator/profile/", in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ReferralKey выпускает (или перевыпускает) реферальный ключ создателя.
func (c *Client) ReferralKey(ctx context.Context) (string, error) {
	var out struct {
		ReferralKey string `json:"referral_key"`
	}
	if err := c.do(ctx, http.MethodPost, "/creator/referral-key/", nil, &out); err != nil {
		return "", err
	}

	return out.ReferralKey, nil
}

// TenantInfo возвращает школу текущего пользователя.
func (c *Client) TenantInfo(ctx context.Context) (*models.Tenant, error) {
	var out models.Tenant
	if err := c.do(ctx, http.MethodGet, "/tenants/me/", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateTenant регистрирует новую школу на поддомене.
func (c *Client) CreateTenant(ctx context.Context, subdomain, name string) (*models.Tenant, error) {
	in := map[string]string{"subdomain": subdomain, "name": name}

	var out models.Tenant
	if err := c.do(ctx, http.MethodPost, "/tenants/", in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
