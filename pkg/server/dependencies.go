package server

import (
	"context"
	"time"

	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"

	"github.com/astro-fusion/numerology-white-paper/config"
	trajectoryrepo "github.com/astro-fusion/numerology-white-paper/internal/repositories/trajectory"
	"github.com/astro-fusion/numerology-white-paper/pkg/database"
	"github.com/astro-fusion/numerology-white-paper/pkg/engine"
	"github.com/astro-fusion/numerology-white-paper/pkg/ephemeris"
	"github.com/astro-fusion/numerology-white-paper/pkg/events"
	"github.com/astro-fusion/numerology-white-paper/pkg/kafka"
	"github.com/astro-fusion/numerology-white-paper/pkg/redis"
	"github.com/astro-fusion/numerology-white-paper/pkg/routes/health"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
	"github.com/astro-fusion/numerology-white-paper/pkg/sampler"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing/exporters"
)

// Dependencies holds everything the server wires at startup
type Dependencies struct {
	Config         *config.Config
	Logger         ectologger.Logger
	DB             database.DB
	Redis          *redis.Client
	Producer       *kafka.Producer
	Emitter        *events.Emitter
	Engine         *engine.Engine
	Sampler        *sampler.Sampler
	TrajectoryRepo *trajectoryrepo.Repository
	Checker        *health.Checker

	tracingShutdown func(context.Context) error
}

// Build constructs the dependency graph and registers the request-scoped
// pieces with the DI container handlers resolve from.
func Build(ctx context.Context, cfg *config.Config, logger ectologger.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if cfg.TracingEnabled {
		shutdown, err := tracing.Init(ctx, cfg.AppName, exporters.OTLPConfig{
			Endpoint: cfg.TracingOTLPEndpoint,
			Protocol: cfg.TracingOTLPProtocol,
			Insecure: cfg.TracingInsecure,
			Timeout:  10 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		deps.tracingShutdown = shutdown
	}

	db, err := database.Connect(database.PostgresConfig{
		Driver:          cfg.DatabaseDriver,
		Host:            cfg.DatabaseHost,
		Port:            cfg.DatabasePort,
		UserName:        cfg.DatabaseUserName,
		Password:        cfg.DatabasePassword,
		Name:            cfg.DatabaseName,
		SSLMode:         cfg.DatabaseSSLMode,
		RetryCount:      cfg.DatabaseReconnectRetryCount,
		MaxOpenConns:    cfg.DatabaseMaxOpenConns,
		MaxIdleConns:    cfg.DatabaseMaxIdleConns,
		ConnMaxLifetime: cfg.DatabaseConnMaxLifetime,
	}, logger)
	if err != nil {
		return nil, err
	}
	deps.DB = db

	migrations := database.NewMigrationService(logger, &database.MigrationConfig{
		MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
		Version:             uint(cfg.DatabaseMigrationVersion),
		Force:               cfg.DatabaseMigrationForce,
		AutoRollback:        cfg.DatabaseMigrationAutoRollback,
	})
	if instance, ok := db.(*database.DatabaseInstance); ok {
		if err := migrations.MigrateDatabase(cfg.DatabaseName, instance.DB.DB); err != nil {
			return nil, err
		}
	}

	var cache sampler.Cache = sampler.NewMemoryCache()
	if cfg.RedisEnabled {
		client, err := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
		if err != nil {
			return nil, err
		}
		deps.Redis = client
		cache = sampler.NewRedisCache(client, cfg.RedisCacheTTL, logger)
	}

	rules, err := ruleset.LoadOrDefault(cfg.RulesetFilePath)
	if err != nil {
		return nil, err
	}

	provider := ephemeris.NewHTTPProvider(ephemeris.HTTPProviderConfig{
		BaseURL:        cfg.EphemerisBaseURL,
		Timeout:        cfg.EphemerisTimeout,
		AyanamsaSystem: cfg.EphemerisAyanamsaSystem,
	}, logger)

	eng, err := engine.New(rules, provider, logger)
	if err != nil {
		return nil, err
	}
	deps.Engine = eng

	deps.Sampler = sampler.New(eng, cache, cfg.SamplerWorkerCount, cfg.SamplerMaxRangeDays, logger)
	deps.TrajectoryRepo = trajectoryrepo.NewRepository(db, logger)

	if cfg.KafkaEnabled {
		deps.Producer = kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.KafkaBrokers,
			Topic:        cfg.KafkaOutputTopic,
			BatchSize:    cfg.KafkaBatchSize,
			BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
			RequiredAcks: cfg.KafkaRequiredAcks,
			Compression:  cfg.KafkaCompression,
		}, logger)
	}
	deps.Emitter = events.NewEmitter(deps.Producer, logger)

	var cachePinger health.Pinger
	if deps.Redis != nil {
		cachePinger = deps.Redis
	}
	deps.Checker = health.NewChecker(db, cachePinger, Version)

	if err := deps.register(); err != nil {
		return nil, err
	}

	return deps, nil
}

// register publishes the handler-facing dependencies into the default DI
// container so route handlers can resolve them from the request context.
func (d *Dependencies) register() error {
	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		return err
	}

	if err := ectoinject.RegisterInstance[ectologger.Logger](container, d.Logger); err != nil {
		return err
	}
	if err := ectoinject.RegisterInstance[*engine.Engine](container, d.Engine); err != nil {
		return err
	}
	if err := ectoinject.RegisterInstance[*sampler.Sampler](container, d.Sampler); err != nil {
		return err
	}
	if err := ectoinject.RegisterInstance[*trajectoryrepo.Repository](container, d.TrajectoryRepo); err != nil {
		return err
	}
	if err := ectoinject.RegisterInstance[*events.Emitter](container, d.Emitter); err != nil {
		return err
	}

	return nil
}

// Close releases external connections in reverse dependency order
func (d *Dependencies) Close(ctx context.Context) {
	if d.Producer != nil {
		if err := d.Producer.Close(); err != nil {
			d.Logger.WithError(err).Warn("Failed to close Kafka producer")
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.WithError(err).Warn("Failed to close Redis client")
		}
	}
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			d.Logger.WithError(err).Warn("Failed to close database")
		}
	}
	if d.tracingShutdown != nil {
		if err := d.tracingShutdown(ctx); err != nil {
			d.Logger.WithError(err).Warn("Failed to shut down tracing")
		}
	}
}
