package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// Courses возвращает курсы текущей школы.
func (c *Client) Courses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := c.list(ctx, "/courses/", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Course возвращает один курс.
func (c *Client) Course(ctx context.Context, id int64) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/courses/%d/", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateCourse создаёт курс.
func (c *Client) CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, http.MethodPost, "/courses/", in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateCourse частично обновляет курс: nil-поля входа не отправляются.
func (c *Client) UpdateCourse(ctx context.Context, id int64, in models.CourseInput) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/courses/%d/", id), in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteCourse удаляет курс.
func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d/", id), nil, nil)
}

// PublishCourse делает курс видимым студентам.
func (c *Client) PublishCourse(ctx context.Context, id int64) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/publish/", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UnpublishCourse снимает курс с публикации.
func (c *Client) UnpublishCourse(ctx context.Context, id int64) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/unpublish/", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
