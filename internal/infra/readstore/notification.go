package readstore

import (
	"context"

	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/usecase/queries"
)

type NotificationReadQueries interface {
	ListNotificationJobsByTopic(ctx context.Context, db pgq.DBTX, topic string) ([]pgq.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      pgq.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db pgq.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) ListByTopic(ctx context.Context, topic string) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.ListNotificationJobsByTopic(ctx, s.db, topic)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}

	result := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		result[i] = toNotificationJobViewFromRow(row)
	}

	return result, nil
}

func toNotificationJobViewFromRow(row pgq.NotificationJobs) *queries.NotificationJobView {
	view := &queries.NotificationJobView{
		ID:        row.ID,
		Kind:      row.Kind,
		Topic:     row.Topic,
		Payload:   row.Payload,
		RunAt:     row.RunAt.Time,
		Attempts:  row.Attempts,
		Status:    row.Status,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}

	if row.LastError.Valid {
		view.LastError = &row.LastError.String
	}

	return view
}
