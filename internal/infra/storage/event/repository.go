package event

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с событиями календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое событие и присваивает ему идентификатор
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Бронирование клиента выполняется в транзакции вместе с проверкой доступности
// слота, чтобы два одновременных бронирования не записали один и тот же слот.
func (r *Repository) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Идентификатор генерируем на стороне сервиса: для вызывающего кода
	// он непрозрачен, как и раньше
	event.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("calendar_events").
		Columns(
			"id",
			"title",
			"type",
			"date",
			"start_time",
			"end_time",
			"duration_minutes",
			"location",
			"description",
			"invitees",
			"color",
		).
		Values(
			event.ID,
			event.Title,
			event.Type,
			event.Date,
			event.StartTime,
			event.EndTime,
			event.DurationMinutes,
			event.Location,
			event.Description,
			pq.Array(event.Invitees),
			event.Color,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// GetByID получает событие по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectEvents().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events, err := r.scanEvents(rows)
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, ErrEventNotFound
	}

	return events[0], nil
}

// GetByDate получает все события на конкретную дату, отсортированные по времени начала
// Внутри транзакции добавляет FOR UPDATE: проверка доступности слота и запись
// бронирования должны видеть согласованный список событий дня
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectEvents().
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// GetByDateRange получает события за период, границы включительно
func (r *Repository) GetByDateRange(ctx context.Context, filter domain.EventsFilter) ([]*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectEvents().
		Where(squirrel.GtOrEq{"date": filter.StartDate}).
		Where(squirrel.LtOrEq{"date": filter.EndDate}).
		OrderBy("date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// Update частично обновляет событие, nil-поля не трогаются
func (r *Repository) Update(ctx context.Context, id string, update domain.EventUpdate) error {
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("calendar_events").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Title != nil {
		updateBuilder = updateBuilder.Set("title", *update.Title)
	}
	if update.Type != nil {
		// Цвет производен от типа, меняем вместе
		updateBuilder = updateBuilder.
			Set("type", *update.Type).
			Set("color", update.Type.Color())
	}
	if update.Date != nil {
		updateBuilder = updateBuilder.Set("date", *update.Date)
	}
	if update.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *update.StartTime)
	}
	if update.EndTime != nil {
		updateBuilder = updateBuilder.Set("end_time", *update.EndTime)
	}
	if update.DurationMinutes != nil {
		updateBuilder = updateBuilder.Set("duration_minutes", *update.DurationMinutes)
	}
	if update.Location != nil {
		updateBuilder = updateBuilder.Set("location", *update.Location)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
	}
	if update.Invitees != nil {
		updateBuilder = updateBuilder.Set("invitees", pq.Array(update.Invitees))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete удаляет событие
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func selectEvents() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"title",
		"type",
		"date",
		"start_time",
		"end_time",
		"duration_minutes",
		"location",
		"description",
		"invitees",
		"color",
		"created_at",
		"updated_at",
	).From("calendar_events")
}

// scanEvents сканирует результаты запроса в слайс событий
func (r *Repository) scanEvents(rows *sql.Rows) ([]*domain.CalendarEvent, error) {
	events := make([]*domain.CalendarEvent, 0)

	for rows.Next() {
		var event domain.CalendarEvent
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Type,
			&event.Date,
			&event.StartTime,
			&event.EndTime,
			&event.DurationMinutes,
			&event.Location,
			&event.Description,
			pq.Array(&event.Invitees),
			&event.Color,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanEvents - scan row: %v", ErrScanRow, err)
		}

		event.CreatedAt = createdAt.Time
		event.UpdatedAt = updatedAt.Time

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEvents - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}
