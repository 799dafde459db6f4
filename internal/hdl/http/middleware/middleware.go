package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JMURv/courseguard/internal/auth/jwt"
	"github.com/JMURv/courseguard/internal/config"
	"github.com/JMURv/courseguard/internal/hdl"
	"github.com/JMURv/courseguard/internal/hdl/http/utils"
	md "github.com/JMURv/courseguard/internal/models"
	metrics "github.com/JMURv/courseguard/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(h, "Bearer "), true
}

// Auth requires a session-scope bearer token and puts uid, sid and
// role into the request context.
func Auth(au jwt.Port) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token, ok := bearerToken(r)
				if !ok {
					utils.ErrCodeResponse(
						w, http.StatusUnauthorized, jwt.ErrInvalidToken, hdl.CodeSessionExpired,
					)
					return
				}

				claims, err := au.ParseClaims(r.Context(), token)
				if err != nil || claims.Scope != jwt.ScopeSession {
					utils.ErrCodeResponse(
						w, http.StatusUnauthorized, jwt.ErrInvalidToken, hdl.CodeSessionExpired,
					)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, claims.UID)
				ctx = context.WithValue(ctx, config.SidKey, claims.SID)
				ctx = context.WithValue(ctx, config.RoleKey, claims.Role)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// VerificationAuth accepts only verification-scope tokens, issued by
// login for the single purpose of completing device verification.
func VerificationAuth(au jwt.Port) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token, ok := bearerToken(r)
				if !ok {
					utils.ErrResponse(w, http.StatusUnauthorized, jwt.ErrInvalidToken)
					return
				}

				claims, err := au.ParseClaims(r.Context(), token)
				if err != nil {
					utils.ErrResponse(w, http.StatusUnauthorized, jwt.ErrInvalidToken)
					return
				}

				if claims.Scope != jwt.ScopeVerification {
					utils.ErrResponse(w, http.StatusUnauthorized, jwt.ErrWrongScope)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, claims.UID)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// AdminOnly gates admin routes on the role claim. Must run after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(config.RoleKey).(md.Role)
			if !ok || role != md.RoleAdmin {
				utils.ErrResponse(w, http.StatusForbidden, hdl.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		},
	)
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			op := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(
				r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			)
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
