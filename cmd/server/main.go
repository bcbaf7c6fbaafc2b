// Command server runs the disha career-guidance backend.
//
// main wires dependencies and owns the process lifecycle; business logic
// lives in the internal service packages. Stores degrade gracefully: without
// POSTGRES_DSN users live in memory, without REDIS_URL pending registrations
// live in memory, and without KAFKA_BROKERS audit events are log-only.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"disha/internal/assessment"
	assessmentstore "disha/internal/assessment/store"
	"disha/internal/audit"
	"disha/internal/auth"
	"disha/internal/college"
	"disha/internal/jwttoken"
	"disha/internal/password"
	"disha/internal/platform/config"
	"disha/internal/platform/httpserver"
	"disha/internal/platform/kafka"
	"disha/internal/platform/logger"
	"disha/internal/platform/metrics"
	platformredis "disha/internal/platform/redis"
	"disha/internal/profile"
	profilestore "disha/internal/profile/store"
	"disha/internal/registration"
	registrationstore "disha/internal/registration/store"
	"disha/internal/sms"
	httptransport "disha/internal/transport/http"
	userstore "disha/internal/user/store"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	health := map[string]func(context.Context) error{}

	// Durable stores. SQL for users and profiles, pgx for assessment results.
	var (
		users    userstore.Store
		profiles profile.Store
		results  assessment.ResultStore
	)
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		users = userstore.NewPostgresStore(db)
		profiles = profilestore.NewPostgresStore(db)
		health["postgres"] = db.PingContext

		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("pgx pool failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		results = assessmentstore.NewPostgresResultStore(pool)
	} else {
		log.Warn("POSTGRES_DSN not set, using in-memory stores")
		users = userstore.NewInMemoryStore()
		profiles = profilestore.NewInMemoryStore()
		results = assessmentstore.NewInMemoryResultStore()
	}

	// Pending registrations: Redis when configured, in-memory otherwise.
	var pending registration.PendingStore
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		pending = registrationstore.NewRedisStore(redisClient.Client)
		health["redis"] = redisClient.Health
	} else {
		log.Warn("REDIS_URL not set, using in-memory pending store")
		pending = registrationstore.NewInMemoryStore()
	}

	// Audit pipeline: buffered publisher drained by a worker into Kafka.
	producer, err := kafka.NewProducer(ctx, cfg.Kafka)
	if err != nil {
		log.Error("kafka connect failed", "error", err)
		os.Exit(1)
	}
	var sink audit.Sink
	if producer != nil {
		defer producer.Close()
		sink = producer
	} else {
		log.Warn("KAFKA_BROKERS not set, audit events are log-only")
	}
	publisher := audit.NewPublisher(256, log)
	worker := audit.NewWorker(publisher.Inbox(), sink, log)

	var sender sms.Sender
	if cfg.SMS.APIKey != "" {
		sender = sms.NewHTTPSender(cfg.SMS.APIURL, cfg.SMS.APIKey, cfg.SMS.Sender, &http.Client{Timeout: cfg.SMS.Timeout})
	} else {
		log.Warn("SMS_API_KEY not set, OTP delivery is log-only")
		sender = sms.LogSender{Logger: log}
	}

	hasher := password.NewBcryptHasher(0)
	tokens := jwttoken.NewService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)

	registrationSvc := registration.NewService(pending, users, sender, hasher, publisher, m, log, registration.Config{
		OTPTTL:      cfg.OTPTTL,
		MaxAttempts: cfg.OTPMaxAttempts,
	})
	authSvc := auth.NewService(users, hasher, tokens, publisher, m, log, cfg.TokenTTL)
	profileSvc := profile.NewService(profiles, users, log)
	assessmentSvc := assessment.NewService(results, profiles, m, log, cfg.MaxScorePerQuest)
	collegeSvc := college.NewService(profiles, log)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:       log,
		Metrics:      m,
		JWTValidator: tokens,
		Auth:         httptransport.NewAuthHandler(registrationSvc, authSvc, log),
		Profile:      httptransport.NewProfileHandler(profileSvc, log),
		Assessment:   httptransport.NewAssessmentHandler(assessmentSvc, log),
		College:      httptransport.NewCollegeHandler(collegeSvc, log),
		Health:       health,
	})

	srv := httpserver.New(cfg.Addr, router)
	sweeper := registration.NewSweeper(pending, cfg.SweepInterval, log, m)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error { return sweeper.Run(gctx) })
	g.Go(func() error { return worker.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
