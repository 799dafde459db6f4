package config

import (
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"courseguard"`

	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Email  EmailConfig
	Auth   AuthConfig
	Jaeger JaegerConfig
}

type ServerConfig struct {
	Mode   string `env:"SERVER_MODE"   envDefault:"dev"`
	Scheme string `env:"SERVER_SCHEME" envDefault:"http"`
	Domain string `env:"SERVER_DOMAIN" envDefault:"localhost"`
	Port   int    `env:"SERVER_PORT"   envDefault:"8080"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST"     envDefault:"localhost"`
	Port     int    `env:"DB_PORT"     envDefault:"5432"`
	User     string `env:"DB_USER"     envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Database string `env:"DB_DATABASE" envDefault:"courseguard"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Pass string `env:"REDIS_PASS" envDefault:""`
}

type EmailConfig struct {
	Server string `env:"EMAIL_SERVER"`
	Port   int    `env:"EMAIL_PORT" envDefault:"587"`
	User   string `env:"EMAIL_USER"`
	Pass   string `env:"EMAIL_PASS"`
	Admin  string `env:"EMAIL_ADMIN"`
}

type AuthConfig struct {
	JWT          JWTConfig
	StreamSecret string `env:"STREAM_SECRET,notEmpty"`
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET,notEmpty"`
	Issuer string `env:"JWT_ISSUER" envDefault:"courseguard"`
}

type JaegerConfig struct {
	Sampler  JaegerSamplerConfig
	Reporter JaegerReporterConfig
}

type JaegerSamplerConfig struct {
	Type  string `env:"JAEGER_SAMPLER_TYPE" envDefault:"const"`
	Param int    `env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
}

type JaegerReporterConfig struct {
	LogSpans           bool   `env:"JAEGER_REPORTER_LOG_SPANS" envDefault:"false"`
	LocalAgentHostPort string `env:"JAEGER_AGENT_ADDR" envDefault:"localhost:6831"`
}

func MustLoad(path string) Config {
	if err := godotenv.Load(path); err != nil {
		zap.L().Debug("no env file found, relying on environment", zap.String("path", path))
	}

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse config", zap.Error(err))
	}

	return conf
}
