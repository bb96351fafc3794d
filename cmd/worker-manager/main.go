// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tryon-workers/internal/common/config"
	"tryon-workers/internal/common/database"
	"tryon-workers/internal/common/logger"
	"tryon-workers/internal/common/observability"
	"tryon-workers/internal/engine"

	// Fit Workers (3)
	ef "tryon-workers/internal/workers/fit/estimate-fit"
	rs "tryon-workers/internal/workers/fit/rank-sizes"
	vm "tryon-workers/internal/workers/fit/validate-measurements"

	// Recommendation Workers (2)
	rc "tryon-workers/internal/workers/recommendation/recommend-complementary"
	st "tryon-workers/internal/workers/recommendation/styling-tips"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// One engine instance shared by every fit worker; tunables come from config
	fitEngine := engine.New(cfg.Engine.Tunables())

	// --- START: Register ALL 5 Workers ---

	// --- 1. Fit Workers (3) ---
	if cfg.Workers[ef.TaskType].Enabled {
		handler := ef.NewHandler(
			&ef.Config{
				CacheTTL: 10 * time.Minute,
				Timeout:  time.Duration(cfg.Workers[ef.TaskType].Timeout) * time.Millisecond,
			},
			fitEngine, pg.DB, redis.Client, log,
		)
		startWorker(zeebeClient, ef.TaskType, cfg.Workers[ef.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[rs.TaskType].Enabled {
		handler := rs.NewHandler(
			&rs.Config{
				CacheTTL: 30 * time.Minute,
				Timeout:  time.Duration(cfg.Workers[rs.TaskType].Timeout) * time.Millisecond,
			},
			fitEngine, pg.DB, redis.Client, log,
		)
		startWorker(zeebeClient, rs.TaskType, cfg.Workers[rs.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[vm.TaskType].Enabled {
		handler := vm.NewHandler(
			&vm.Config{
				Timeout: time.Duration(cfg.Workers[vm.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, vm.TaskType, cfg.Workers[vm.TaskType], handler.Handle, zapLog)
	}

	// --- 2. Recommendation Workers (2) ---
	if cfg.Workers[rc.TaskType].Enabled {
		handler := rc.NewHandler(
			&rc.Config{
				CatalogIndex: cfg.Catalog.Index,
				MaxResults:   cfg.Catalog.MaxResults,
				Timeout:      time.Duration(cfg.Workers[rc.TaskType].Timeout) * time.Millisecond,
			},
			fitEngine, esClient.Client, log,
		)
		startWorker(zeebeClient, rc.TaskType, cfg.Workers[rc.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[st.TaskType].Enabled {
		handler := st.NewHandler(
			&st.Config{
				RegistryPath: cfg.Tips.RegistryPath,
				CacheTTL:     time.Duration(cfg.Tips.CacheTTLSec) * time.Second,
				Timeout:      time.Duration(cfg.Workers[st.TaskType].Timeout) * time.Millisecond,
			},
			fitEngine, log,
		)
		startWorker(zeebeClient, st.TaskType, cfg.Workers[st.TaskType], handler.Handle, zapLog)
	}

	zapLog.Info("All 5 workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
