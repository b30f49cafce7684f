package pgq

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
	Status  string
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt, arg.Status)
	return err
}

const listNotificationJobsByTopic = `SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM notification_jobs
WHERE topic = $1
ORDER BY created_at`

func (q *Queries) ListNotificationJobsByTopic(ctx context.Context, db DBTX, topic string) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, listNotificationJobsByTopic, topic)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []NotificationJobs
	for rows.Next() {
		var j NotificationJobs
		if err := rows.Scan(
			&j.ID,
			&j.Kind,
			&j.Topic,
			&j.Payload,
			&j.RunAt,
			&j.Attempts,
			&j.Status,
			&j.LastError,
			&j.CreatedAt,
			&j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	return items, rows.Err()
}
