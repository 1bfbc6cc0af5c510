package internal

import (
	"coffee-chat/domain"
	"coffee-chat/repositories"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	SlackBotToken       string        `env:"SLACK_BOT_TOKEN,required=true" validate:"required"`
	TriggerToken        string        `env:"TRIGGER_TOKEN,required=true" validate:"required,min=16"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
	Host                string        `env:"HOST,default=localhost"`
	Port                int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
	GrpcPort            int           `env:"GRPC_PORT,default=8081" validate:"min=1,max=65535"`
	RoundInterval       time.Duration `env:"ROUND_INTERVAL,default=0s" validate:"gte=0"`
	RestartInterval     time.Duration `env:"RESTART_INTERVAL,default=1s"`
	HeartbeatInterval   time.Duration `env:"HEARTBEAT_INTERVAL,default=1m" validate:"gte=0"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	MaxAttempts         int           `env:"MAX_ATTEMPTS,default=64" validate:"min=1"`
	MaxRestarts         int           `env:"MAX_RESTARTS,default=8" validate:"gte=0"`
	FallbackPolicy      string        `env:"FALLBACK_POLICY,default=fail" validate:"oneof=fail relax"`
	SameDayPolicy       string        `env:"SAME_DAY_POLICY,default=overwrite" validate:"oneof=overwrite accumulate reject"`
	DispatchConcurrency int           `env:"DISPATCH_CONCURRENCY,default=4" validate:"min=1"`
	JobRetention        int           `env:"JOB_RETENTION,default=100" validate:"min=1"`
	MessageText         string        `env:"MESSAGE_TEXT"`
	// RandomSeed makes rounds reproducible; 0 seeds from the clock.
	RandomSeed uint64 `env:"RANDOM_SEED,default=0"`
}

var validate = validator.New()

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func (c Config) Fallback() domain.FallbackPolicy {
	policy, _ := domain.ParseFallbackPolicy(c.FallbackPolicy)
	return policy
}

func (c Config) SameDay() repositories.SameDayPolicy {
	policy, _ := repositories.ParseSameDayPolicy(c.SameDayPolicy)
	return policy
}

func (c Config) NewRand() *rand.Rand {
	seed := c.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

func (c Config) GeneratorOptions() []domain.GeneratorOption {
	return []domain.GeneratorOption{
		domain.WithMaxAttempts(c.MaxAttempts),
		domain.WithMaxRestarts(c.MaxRestarts),
		domain.WithFallback(c.Fallback()),
	}
}
