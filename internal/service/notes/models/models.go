package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// SaveNoteRequest запрос на сохранение заметки дня
type SaveNoteRequest struct {
	Content string `json:"content"`
}

// NoteResponse ответ с заметкой дня
// Для даты без сохраненной заметки возвращается пустой content
type NoteResponse struct {
	Date    string `json:"date"` // "2024-06-05"
	Content string `json:"content"`

	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainNote конвертирует domain модель в DTO
func FromDomainNote(n *domain.DailyNote) *NoteResponse {
	if n == nil {
		return nil
	}

	updatedAt := n.UpdatedAt
	return &NoteResponse{
		Date:      n.Date.Format(domain.DateFormat),
		Content:   n.Content,
		UpdatedAt: &updatedAt,
	}
}

// EmptyNote возвращает DTO пустой заметки для даты
func EmptyNote(date time.Time) *NoteResponse {
	return &NoteResponse{
		Date:    date.Format(domain.DateFormat),
		Content: "",
	}
}
