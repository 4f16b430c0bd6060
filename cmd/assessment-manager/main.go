// cmd/assessment-manager/main.go
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

	"github.com/bhavyasrideva22/hr-readiness-compass/internal/assessment"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/aws"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/camunda"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/config"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/database"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/logger"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/observability"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/store"
	"github.com/bhavyasrideva22/hr-readiness-compass/pkg/bankfile"

	// Assessment Workers (4)
	ra "github.com/bhavyasrideva22/hr-readiness-compass/internal/workers/assessment/record-answer"
	sp "github.com/bhavyasrideva22/hr-readiness-compass/internal/workers/assessment/score-psychometric"
	st "github.com/bhavyasrideva22/hr-readiness-compass/internal/workers/assessment/score-technical"
	sw "github.com/bhavyasrideva22/hr-readiness-compass/internal/workers/assessment/score-wiscar"

	// Results Workers (2)
	cr "github.com/bhavyasrideva22/hr-readiness-compass/internal/workers/results/compute-recommendation"
	dr "github.com/bhavyasrideva22/hr-readiness-compass/internal/workers/results/deliver-report"
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
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting assessment manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("assessment-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      time.Duration(cfg.Camunda.Timeout) * time.Millisecond,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Store.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	scoreStore := store.NewScoreStore(redis, time.Duration(cfg.Store.SessionTTL)*time.Second)

	// --- Load Question Banks ---
	banks := assessment.DefaultBanks()
	if cfg.Banks.Path != "" {
		if err := bankfile.ValidateFile(cfg.Banks.Path); err != nil {
			zapLog.Fatal("bank file validation failed", zap.Error(err))
		}
		banks, err = assessment.LoadBanks(cfg.Banks.Path)
		if err != nil {
			zapLog.Fatal("bank file load failed", zap.Error(err))
		}
		zapLog.Info("Question banks loaded from file", zap.String("path", cfg.Banks.Path))
	}

	// --- Init SES Client (optional) ---
	var sender dr.EmailSender
	if cfg.Report.AWS.SES.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Report.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
		sender = sesClient
		zapLog.Info("SES client initialized", zap.String("region", cfg.Report.AWS.Region))
	}

	// --- START: Register ALL 6 Workers ---

	// --- 1. Assessment Workers (4) ---
	if cfg.Workers[ra.TaskType].Enabled {
		handler := ra.NewHandler(
			&ra.Config{
				Timeout: time.Duration(cfg.Workers[ra.TaskType].Timeout) * time.Millisecond,
			},
			scoreStore, banks, log,
		)
		startWorker(zeebeClient, ra.TaskType, cfg.Workers[ra.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[sp.TaskType].Enabled {
		handler := sp.NewHandler(
			&sp.Config{
				Timeout: time.Duration(cfg.Workers[sp.TaskType].Timeout) * time.Millisecond,
			},
			scoreStore, banks, log,
		)
		startWorker(zeebeClient, sp.TaskType, cfg.Workers[sp.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[st.TaskType].Enabled {
		handler := st.NewHandler(
			&st.Config{
				Timeout: time.Duration(cfg.Workers[st.TaskType].Timeout) * time.Millisecond,
			},
			scoreStore, banks, log,
		)
		startWorker(zeebeClient, st.TaskType, cfg.Workers[st.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[sw.TaskType].Enabled {
		handler := sw.NewHandler(
			&sw.Config{
				Timeout: time.Duration(cfg.Workers[sw.TaskType].Timeout) * time.Millisecond,
			},
			scoreStore, banks, log,
		)
		startWorker(zeebeClient, sw.TaskType, cfg.Workers[sw.TaskType], handler.Handle, zapLog)
	}

	// --- 2. Results Workers (2) ---
	if cfg.Workers[cr.TaskType].Enabled {
		handler := cr.NewHandler(
			&cr.Config{
				Timeout: time.Duration(cfg.Workers[cr.TaskType].Timeout) * time.Millisecond,
			},
			scoreStore, log,
		)
		startWorker(zeebeClient, cr.TaskType, cfg.Workers[cr.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[dr.TaskType].Enabled {
		handler := dr.NewHandler(
			&dr.Config{
				Timeout:       time.Duration(cfg.Workers[dr.TaskType].Timeout) * time.Millisecond,
				FromEmail:     cfg.Report.AWS.SES.FromEmail,
				SubjectPrefix: cfg.Report.SubjectPrefix,
			},
			sender, log,
		)
		startWorker(zeebeClient, dr.TaskType, cfg.Workers[dr.TaskType], handler.Handle, zapLog)
	}

	zapLog.Info("All 6 workers registered successfully")

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
			if err := camundaClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = shutdownCtx

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Assessment manager stopped gracefully")
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
