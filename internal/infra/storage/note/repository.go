package note

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с ежедневными заметками
// На одну дату существует не более одной заметки (уникальный ключ по date)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заметок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает заметку на указанную дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.DailyNote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"date",
		"content",
		"created_at",
		"updated_at",
	).
		From("daily_notes").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var note domain.DailyNote
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&note.Date,
		&note.Content,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan note: %v", ErrScanRow, err)
	}

	note.CreatedAt = createdAt.Time
	note.UpdatedAt = updatedAt.Time

	return &note, nil
}

// Upsert сохраняет заметку на дату: создает запись при первом сохранении,
// при повторном полностью заменяет содержимое (без версионирования)
func (r *Repository) Upsert(ctx context.Context, date time.Time, content string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("daily_notes").
		Columns("date", "content").
		Values(date, content).
		Suffix("ON CONFLICT (date) DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
