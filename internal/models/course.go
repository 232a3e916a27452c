package models

import "time"

// Course — курс в школе преподавателя.
//
// Price приходит от бэкенда строкой (десятичное значение в сумах),
// чтобы не терять точность на float.
type Course struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	CoverURL     string    `json:"cover_url"`
	IsPublished  bool      `json:"is_published"`
	StudentCount int       `json:"student_count"`
	LessonCount  int       `json:"lesson_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CourseInput — поля создания/изменения курса.
// Указатели: nil-поле не отправляется (частичное обновление).
type CourseInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
}
