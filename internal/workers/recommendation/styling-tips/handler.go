// internal/workers/recommendation/styling-tips/handler.go
package stylingtips

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"tryon-workers/internal/common/errors"
	"tryon-workers/internal/common/logger"
	"tryon-workers/internal/common/metrics"
	"tryon-workers/internal/engine"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const (
	TaskType = "styling-tips"
)

// registrySchema validates a tips registry file before it replaces the
// cached table. A file that fails here never shadows the built-in tips.
const registrySchema = `{
	"type": "object",
	"required": ["tips"],
	"properties": {
		"version": {"type": "string"},
		"tips": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["text"],
					"properties": {
						"text": {"type": "string", "minLength": 1},
						"categoryLabel": {"type": "string"}
					}
				}
			}
		}
	}
}`

type registryCacheEntry struct {
	table    engine.TipsTable
	loadedAt time.Time
}

type Handler struct {
	config       *Config
	engine       *engine.Engine
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	cache        *registryCacheEntry
	mu           sync.RWMutex
}

func NewHandler(config *Config, eng *engine.Engine, log logger.Logger) *Handler {
	h := &Handler{
		config: config,
		engine: eng,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
	h.errorHandler = errors.NewErrorHandler(h.logger)
	return h
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.ErrCodeInvalidJobInput)).Inc()
		h.errorHandler.HandleJobError(context.Background(), client, job, errors.NewInvalidJobInputError(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		code := "STYLING_TIPS_FAILED"
		if stdErr, ok := err.(*errors.StandardError); ok {
			code = string(stdErr.Code)
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, code).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	var tips []engine.StylingTip

	if h.config.RegistryPath == "" {
		tips = h.engine.TipsFor(input.Category)
	} else {
		table, err := h.loadRegistry()
		if err != nil {
			return nil, err
		}
		tips = engine.TipsFromTable(table, input.Category)
	}

	h.logger.Info("styling tips resolved", map[string]interface{}{
		"category": input.Category,
		"tips":     len(tips),
	})

	return &Output{
		Category: input.Category,
		Tips:     tips,
	}, nil
}

// loadRegistry returns the cached tips table, re-reading the registry file
// when the cache entry has expired.
func (h *Handler) loadRegistry() (engine.TipsTable, error) {
	h.mu.RLock()
	if h.cache != nil && time.Since(h.cache.loadedAt) < h.config.CacheTTL {
		table := h.cache.table
		h.mu.RUnlock()
		return table, nil
	}
	h.mu.RUnlock()

	h.mu.Lock()
	defer h.mu.Unlock()

	// Another job may have reloaded while we waited for the lock
	if h.cache != nil && time.Since(h.cache.loadedAt) < h.config.CacheTTL {
		return h.cache.table, nil
	}

	data, err := os.ReadFile(h.config.RegistryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewTipsRegistryNotFoundError(h.config.RegistryPath)
		}
		return nil, errors.NewTipsRegistryInvalidError(err.Error())
	}

	schemaLoader := gojsonschema.NewStringLoader(registrySchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, errors.NewTipsRegistryInvalidError(err.Error())
	}
	if !result.Valid() {
		details := ""
		for _, desc := range result.Errors() {
			if details != "" {
				details += "; "
			}
			details += desc.String()
		}
		return nil, errors.NewTipsRegistryInvalidError(details)
	}

	var registry TipsRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, errors.NewTipsRegistryInvalidError(err.Error())
	}

	h.cache = &registryCacheEntry{
		table:    engine.TipsTable(registry.Tips),
		loadedAt: time.Now(),
	}

	h.logger.Info("tips registry loaded", map[string]interface{}{
		"path":       h.config.RegistryPath,
		"version":    registry.Version,
		"categories": len(registry.Tips),
	})

	return h.cache.table, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
