package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/pkg/errors"

	"adminconsole/internal/model"
	"adminconsole/internal/repository"
	"adminconsole/pkg/pagination"
)

type ActivityLogService interface {
	// GetActivityLogs returns one page of the server activity log, newest first, and the total row count.
	GetActivityLogs(ctx context.Context, page, limit int) ([]model.ActivityLog, int, error)
}

type activityLogService struct {
	repo repository.ActivityLogRepository
}

func NewActivityLogService(repo repository.ActivityLogRepository) ActivityLogService {
	return &activityLogService{repo: repo}
}

func (s *activityLogService) GetActivityLogs(ctx context.Context, page, limit int) ([]model.ActivityLog, int, error) {
	logs, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list activity logs")
	}

	slices.SortStableFunc(logs, func(a, b model.ActivityLog) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})
	for i := range logs {
		if logs[i].User == "" {
			logs[i].User = model.SystemActor
		}
	}

	start, end := pagination.Bounds(page, limit, len(logs))
	return logs[start:end], len(logs), nil
}
