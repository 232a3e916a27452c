package models

import "time"

// Lesson — урок внутри курса.
type Lesson struct {
	ID        int64      `json:"id"`
	CourseID  int64      `json:"course_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Order     int        `json:"order"`
	VideoURL  string     `json:"video_url"`
	Materials []Material `json:"materials"`
	CreatedAt time.Time  `json:"created_at"`
}

// LessonInput — поля создания/изменения урока.
type LessonInput struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Order    *int    `json:"order,omitempty"`
	VideoURL *string `json:"video_url,omitempty"`
}

// Material — файл-вложение урока (конспект, презентация и т.п.).
// Сам файл живёт во внешнем хранилище; здесь только ссылка.
type Material struct {
	ID       int64  `json:"id"`
	LessonID int64  `json:"lesson_id"`
	Name     string `json:"name"`
	FileURL  string `json:"file_url"`
	Size     int64  `json:"size"`
}
