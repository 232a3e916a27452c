package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// Lessons возвращает уроки курса в порядке следования.
func (c *Client) Lessons(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	var out []models.Lesson
	if err := c.list(ctx, fmt.Sprintf("/courses/%d/lessons/", courseID), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Lesson возвращает один урок.
func (c *Client) Lesson(ctx context.Context, id int64) (*models.Lesson, error) {
	var out models.Lesson
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/lessons/%d/", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateLesson создаёт урок в курсе.
func (c *Client) CreateLesson(ctx context.Context, courseID int64, in models.LessonInput) (*models.Lesson, error) {
	var out models.Lesson
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/lessons/", courseID), in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateLesson частично обновляет урок.
func (c *Client) UpdateLesson(ctx context.Context, id int64, in models.LessonInput) (*models.Lesson, error) {
	var out models.Lesson
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/lessons/%d/", id), in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteLesson удаляет урок.
func (c *Client) DeleteLesson(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/lessons/%d/", id), nil, nil)
}

// UploadMaterial загружает файл-вложение урока (multipart).
func (c *Client) UploadMaterial(ctx context.Context, lessonID int64, name string, file io.Reader) (*models.Material, error) {
	var out models.Material

	path := fmt.Sprintf("/lessons/%d/materials/", lessonID)
	fields := map[string]string{"name": name}

	if err := c.upload(ctx, http.MethodPost, path, fields, "file", name, file, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteMaterial удаляет вложение урока.
func (c *Client) DeleteMaterial(ctx context.Context, materialID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/materials/%d/", materialID), nil, nil)
}
