package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/jgm-source/cliente-davi-gomez/infrastructure/database/postgres"
	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
)

const eventsTable = "events"

// EventRepository lê o log de eventos gravado pelo receptor de webhooks.
// Somente leitura: nenhuma escrita nessa tabela parte desta aplicação.
type EventRepository interface {
	// CountSuccessfulByType conta os eventos enviados com sucesso de um tipo
	// a partir de um instante (inclusive)
	CountSuccessfulByType(ctx context.Context, accountID string, eventType domain.EventType, since time.Time) (int, error)

	// ListRecent retorna os eventos mais recentes da conta, do mais novo
	// para o mais antigo
	ListRecent(ctx context.Context, accountID string, limit int) ([]*domain.Event, error)
}

type eventRepository struct {
	conn postgres.Queryer
}

func NewEventRepository(conn postgres.Queryer) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

func (r *eventRepository) CountSuccessfulByType(ctx context.Context, accountID string, eventType domain.EventType, since time.Time) (int, error) {
	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(eventsTable).
		Where(squirrel.Eq{
			"user_id":    accountID,
			"event_type": eventType,
			"status":     domain.EventStatusSuccess,
		}).
		Where(squirrel.GtOrEq{"created_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query de contagem de eventos")
	}

	var count int
	if err := r.conn.QueryRow(ctx, countSQL, countArgs...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "erro ao contar eventos")
	}

	return count, nil
}

func (r *eventRepository) ListRecent(ctx context.Context, accountID string, limit int) ([]*domain.Event, error) {
	// Desempate por id: eventos com o mesmo created_at saem na ordem de
	// inserção, do mais novo para o mais antigo
	eventsSQL, eventsArgs, err := squirrel.
		Select("id, user_id, event_type, status, event_name, created_at").
		From(eventsTable).
		Where(squirrel.Eq{"user_id": accountID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de eventos recentes")
	}

	rows, err := r.conn.Query(ctx, eventsSQL, eventsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Event{}, nil
		}
		return nil, errors.Wrap(err, "erro ao consultar eventos recentes")
	}
	defer rows.Close()

	events := make([]*domain.Event, 0, limit)

	for rows.Next() {
		event := &domain.Event{}
		if err := rows.Scan(
			&event.ID,
			&event.AccountID,
			&event.EventType,
			&event.Status,
			&event.EventName,
			&event.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar evento")
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar sobre os eventos")
	}

	return events, nil
}
