package notes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	noteRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/note"
	"github.com/m04kA/SMC-CalendarService/internal/service/notes/models"
)

// Service сервис для работы с ежедневными заметками администратора
type Service struct {
	noteRepo NoteRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса заметок
func NewService(noteRepo NoteRepository, logger Logger) *Service {
	return &Service{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// Get получает заметку на дату
// Отсутствие заметки - не ошибка: возвращается пустое содержимое
func (s *Service) Get(ctx context.Context, date time.Time) (*models.NoteResponse, error) {
	s.logger.Info("GetNote: date=%s", date.Format(domain.DateFormat))

	note, err := s.noteRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, noteRepo.ErrNoteNotFound) {
			return models.EmptyNote(date), nil
		}
		s.logger.Error("GetNote: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNote(note), nil
}

// Save сохраняет заметку на дату (upsert: повторное сохранение полностью
// заменяет содержимое, истории изменений нет)
func (s *Service) Save(ctx context.Context, date time.Time, req *models.SaveNoteRequest) error {
	s.logger.Info("SaveNote: date=%s, content_len=%d", date.Format(domain.DateFormat), len(req.Content))

	if len(req.Content) > domain.MaxNoteLength {
		s.logger.Warn("SaveNote: content too long for date=%s", date.Format(domain.DateFormat))
		return fmt.Errorf("%w: note content is too long", ErrInvalidInput)
	}

	if err := s.noteRepo.Upsert(ctx, date, req.Content); err != nil {
		s.logger.Error("SaveNote: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveNote: successfully saved note for date=%s", date.Format(domain.DateFormat))
	return nil
}
