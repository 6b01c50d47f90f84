package repository

import (
	"context"

	"adminconsole/internal/model"
)

const activityLogsPath = "/api/audit-logs"

type ActivityLogRepository interface {
	List(ctx context.Context) ([]model.ActivityLog, error)
}

type activityLogRepository struct {
	client *Client
}

func NewActivityLogRepository(client *Client) ActivityLogRepository {
	return &activityLogRepository{client: client}
}

// List walks every page of the server's activity log
func (r *activityLogRepository) List(ctx context.Context) ([]model.ActivityLog, error) {
	return listAll[model.ActivityLog](ctx, r.client, activityLogsPath, "logs")
}
