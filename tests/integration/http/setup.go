package http

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JMURv/courseguard/internal/auth"
	"github.com/JMURv/courseguard/internal/auth/jwt"
	"github.com/JMURv/courseguard/internal/cache/redis"
	"github.com/JMURv/courseguard/internal/config"
	"github.com/JMURv/courseguard/internal/ctrl"
	hdl "github.com/JMURv/courseguard/internal/hdl/http"
	"github.com/JMURv/courseguard/internal/repo/db"
	"github.com/JMURv/courseguard/internal/smtp"
	"github.com/JMURv/courseguard/internal/ws"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const getTables = `
SELECT tablename
FROM pg_tables
WHERE schemaname = 'public';
`

var rootDir = filepath.Join("..", "..", "..")

func getRedis(conf config.RedisConfig) testcontainers.Container {
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "redis:alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
		HostConfigModifier: func(hostConfig *container.HostConfig) {
			hostConfig.PortBindings = nat.PortMap{
				"6379/tcp": []nat.PortBinding{
					{
						HostIP:   "0.0.0.0",
						HostPort: strings.TrimPrefix(conf.Addr, "localhost:"),
					},
				},
			}
		},
	}

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		panic(err)
	}

	zap.L().Info("Redis container is ready")
	return redisC
}

func getPostgres(conf config.DBConfig) testcontainers.Container {
	ctx := context.Background()
	pgPort := fmt.Sprintf("%d", conf.Port)
	pgPortC := fmt.Sprintf("%s/tcp", pgPort)

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17.4-alpine",
		WaitingFor:   wait.ForHealthCheck(),
		ExposedPorts: []string{pgPortC},
		ConfigModifier: func(c *container.Config) {
			c.Healthcheck = &container.HealthConfig{
				Test:        []string{"CMD-SHELL", fmt.Sprintf("pg_isready -U %s -d %s", conf.User, conf.Database)},
				Interval:    5 * time.Second,
				Timeout:     2 * time.Second,
				Retries:     5,
				StartPeriod: 2 * time.Second,
			}
		},
		HostConfigModifier: func(hostConfig *container.HostConfig) {
			hostConfig.PortBindings = nat.PortMap{
				nat.Port(pgPortC): []nat.PortBinding{
					{
						HostIP:   "0.0.0.0",
						HostPort: pgPort,
					},
				},
			}
		},
		Env: map[string]string{
			"POSTGRES_DB":       conf.Database,
			"POSTGRES_USER":     conf.User,
			"POSTGRES_PASSWORD": conf.Password,
		},
	}

	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		panic(err)
	}

	return pgC
}

func setupTestServer() (*httptest.Server, *sqlx.DB, func(t *testing.T)) {
	zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))

	conf := config.MustLoad(
		filepath.ToSlash(
			filepath.Join(rootDir, "configs", "integration.env"),
		),
	)

	_ = os.Setenv("MIGRATIONS_PATH", filepath.ToSlash(
		filepath.Join(rootDir, "internal", "repo", "db", "migration"),
	))

	redisC := getRedis(conf.Redis)
	pgC := getPostgres(conf.DB)

	au := auth.New()
	jwtCore := jwt.New(conf)
	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	svc := ctrl.New(au, jwtCore, repo, cache, smtp.New(conf), []byte(conf.Auth.StreamSecret))
	hub := ws.NewHub(svc, nil)
	svc.SetNotifier(hub)
	h := hdl.New(jwtCore, svc, hub)

	ts := httptest.NewServer(h.Router())

	conn, err := sqlx.Open(
		"pgx", fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=disable",
			conf.DB.User,
			conf.DB.Password,
			conf.DB.Host,
			conf.DB.Port,
			conf.DB.Database,
		),
	)
	if err != nil {
		zap.L().Fatal("Failed to connect to the database", zap.Error(err))
	}

	if err = conn.Ping(); err != nil {
		zap.L().Fatal("Failed to ping the database", zap.Error(err))
	}

	cleanupFunc := func(t *testing.T) {
		ts.Close()

		rows, err := conn.Query(getTables)
		if err != nil {
			zap.L().Fatal("Failed to fetch table names", zap.Error(err))
		}

		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				zap.L().Fatal("Failed to scan table name", zap.Error(err))
			}
			tables = append(tables, name)
		}

		if err := rows.Close(); err != nil {
			zap.L().Debug("Error while closing rows", zap.Error(err))
		}

		if len(tables) > 0 {
			_, err = conn.Exec(fmt.Sprintf("TRUNCATE TABLE %v RESTART IDENTITY CASCADE;", strings.Join(tables, ", ")))
			if err != nil {
				zap.L().Fatal("Failed to truncate tables", zap.Error(err))
			}
		}

		if err := conn.Close(); err != nil {
			zap.L().Debug("Error while closing connection", zap.Error(err))
		}

		testcontainers.CleanupContainer(t, redisC)
		testcontainers.CleanupContainer(t, pgC)
	}

	return ts, conn, cleanupFunc
}

// seedVerifiedUser inserts a user with an already verified device, so
// logins from deviceHash go straight to a session instead of a
// verification challenge.
func seedVerifiedUser(t *testing.T, conn *sqlx.DB, email, password, deviceHash string) uuid.UUID {
	hashed, err := auth.New().HashPassword(password)
	require.NoError(t, err)

	var uid uuid.UUID
	err = conn.QueryRowx(
		`INSERT INTO users (name, password, email, role) VALUES ($1, $2, $3, 'student') RETURNING id`,
		"Integration User", hashed, email,
	).Scan(&uid)
	require.NoError(t, err)

	_, err = conn.Exec(
		`INSERT INTO devices (user_id, fingerprint_hash, is_verified, verified_at) VALUES ($1, $2, TRUE, now())`,
		uid, deviceHash,
	)
	require.NoError(t, err)

	return uid
}
