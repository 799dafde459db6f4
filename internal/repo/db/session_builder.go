package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type listQuery struct {
	countQ    string
	countArgs []any
	dataQ     string
	dataArgs  []any
}

func buildSessionListQuery(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (listQuery, error) {
	const op = "sessions.buildSessionListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().From("sessions s").PlaceholderFormat(sq.Dollar)

	if userID, ok := filters["user_id"]; ok {
		query = query.Where(sq.Eq{"s.user_id": userID})
	}

	if isActive, ok := filters["is_active"].(bool); ok {
		query = query.Where(sq.Eq{"s.is_active": isActive})
	}

	countSql, countArgs, err := query.Columns("COUNT(DISTINCT s.id)").ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"s.id",
			"s.user_id",
			"s.token",
			"s.refresh_token",
			"s.is_active",
			"s.source_ip",
			"s.last_heartbeat",
			"s.expires_at",
			"s.term_reason",
			"s.terminated_at",
			"s.created_at",
		).
		OrderBy("s.created_at DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	return listQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}

func buildEventListQuery(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (listQuery, error) {
	const op = "events.buildEventListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().From("security_events e").PlaceholderFormat(sq.Dollar)

	if userID, ok := filters["user_id"]; ok {
		query = query.Where(sq.Eq{"e.user_id": userID})
	}

	if severity, ok := filters["severity"]; ok {
		query = query.Where(sq.Eq{"e.severity": severity})
	}

	if eventType, ok := filters["event_type"]; ok {
		query = query.Where(sq.Eq{"e.event_type": eventType})
	}

	countSql, countArgs, err := query.Columns("COUNT(e.id)").ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"e.id",
			"e.user_id",
			"e.session_id",
			"e.video_id",
			"e.event_type",
			"e.details",
			"e.severity",
			"e.created_at",
		).
		OrderBy("e.created_at DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	return listQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}
