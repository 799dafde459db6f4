package db

import (
	"context"
	"math"

	"github.com/JMURv/courseguard/internal/dto"
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) CreateSecurityEvent(ctx context.Context, e *md.SecurityEvent) (uint64, error) {
	const op = "events.CreateSecurityEvent.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uint64
	err := r.conn.QueryRowxContext(
		ctx, eventCreateQ,
		e.UserID, e.SessionID, e.VideoID, e.EventType, e.Details, e.Severity,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) ListSecurityEvents(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedEventResponse, error) {
	const op = "events.ListSecurityEvents.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildEventListQuery(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.GetContext(ctx, &count, q.countQ, q.countArgs...); err != nil {
		zap.L().Error("failed to count events", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	res := make([]*md.SecurityEvent, 0, size)
	if err = r.conn.SelectContext(ctx, &res, q.dataQ, q.dataArgs...); err != nil {
		zap.L().Error("failed to list events", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	totalPages := int(math.Ceil(float64(count) / float64(size)))
	return &dto.PaginatedEventResponse{
		Data:        res,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}
