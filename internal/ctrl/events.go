package ctrl

import (
	"context"

	"github.com/JMURv/courseguard/internal/dto"
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/JMURv/courseguard/internal/security"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type eventCtrl interface {
	ReportSecurityEvent(
		ctx context.Context,
		uid uuid.UUID,
		sid, videoID *uuid.UUID,
		eventType, details string,
	) (*md.SecurityEvent, error)
	ListSecurityEvents(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedEventResponse, error)
}

type eventRepo interface {
	CreateSecurityEvent(ctx context.Context, e *md.SecurityEvent) (uint64, error)
	ListSecurityEvents(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedEventResponse, error)
}

// ReportSecurityEvent classifies and persists one client-reported
// event. The audit row is the primary deliverable: alerting failures
// are logged, never propagated.
func (c *Controller) ReportSecurityEvent(
	ctx context.Context,
	uid uuid.UUID,
	sid, videoID *uuid.UUID,
	eventType, details string,
) (*md.SecurityEvent, error) {
	const op = "events.ReportSecurityEvent.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	e := &md.SecurityEvent{
		UserID:    uid,
		SessionID: sid,
		VideoID:   videoID,
		EventType: eventType,
		Details:   details,
		Severity:  security.Classify(eventType),
	}

	id, err := c.repo.CreateSecurityEvent(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id

	if e.Severity == md.SeverityCritical {
		zap.L().Error(
			"critical security event",
			zap.String("op", op),
			zap.String("uid", uid.String()),
			zap.String("eventType", eventType),
			zap.String("details", details),
		)

		c.raiseCriticalAlert(ctx, uid, eventType, details)
	}

	return e, nil
}

func (c *Controller) ListSecurityEvents(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedEventResponse, error) {
	const op = "events.ListSecurityEvents.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ListSecurityEvents(ctx, page, size, filters)
}

func (c *Controller) raiseCriticalAlert(
	ctx context.Context,
	uid uuid.UUID,
	eventType, details string,
) {
	u, err := c.repo.GetUserByID(ctx, uid)
	if err != nil {
		zap.L().Error("failed to resolve user for alert", zap.Error(err))
		return
	}

	if err = c.email.SendCriticalAlert(u.Email, eventType, details); err != nil {
		zap.L().Error("failed to send critical alert", zap.Error(err))
	}
}
