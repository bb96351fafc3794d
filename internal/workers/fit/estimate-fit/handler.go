// internal/workers/fit/estimate-fit/handler.go
package estimatefit

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"tryon-workers/internal/common/errors"
	"tryon-workers/internal/common/logger"
	"tryon-workers/internal/common/metrics"
	"tryon-workers/internal/engine"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "estimate-fit"
)

type Handler struct {
	config       *Config
	engine       *engine.Engine
	db           *sql.DB
	redis        *redis.Client
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, eng *engine.Engine, db *sql.DB, redis *redis.Client, log logger.Logger) *Handler {
	h := &Handler{
		config: config,
		engine: eng,
		db:     db,
		redis:  redis,
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
		code := "FIT_ESTIMATION_FAILED"
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if issues := engine.ValidateSizeChart(input.GarmentSizeChart); len(issues) > 0 {
		return nil, errors.NewInvalidMeasurementError(issues[0].Message)
	}

	var avatar *engine.AvatarMeasurements
	if input.AvatarMeasurements != nil {
		avatar = input.AvatarMeasurements
	} else if input.UserID != "" {
		var err error
		avatar, err = h.getAvatarMeasurements(ctx, input.UserID)
		if err != nil {
			h.logger.Warn("failed to fetch avatar measurements", map[string]interface{}{
				"userId": input.UserID,
				"error":  err,
			})
		}
	}

	if avatar == nil {
		// No measurements at all: every area is missing and the engine
		// reports the confidence floor rather than guessing.
		avatar = &engine.AvatarMeasurements{}
	}

	if issues := engine.ValidateAvatar(*avatar); len(issues) > 0 {
		return nil, errors.NewInvalidMeasurementError(issues[0].Message)
	}

	result := h.engine.EstimateFit(*avatar, input.GarmentSizeChart, input.Preferences)

	metrics.FitConfidenceScore.WithLabelValues(input.GarmentSizeChart.Category).Observe(result.ConfidenceScore)
	metrics.FitCategoryTotal.WithLabelValues(string(result.Category)).Inc()

	h.logger.Info("fit estimated", map[string]interface{}{
		"userId":          input.UserID,
		"sizeLabel":       input.GarmentSizeChart.SizeLabel,
		"confidenceScore": result.ConfidenceScore,
		"fitCategory":     string(result.Category),
	})

	return &Output{
		ConfidenceScore: result.ConfidenceScore,
		ConfidenceLevel: result.ConfidenceLevel,
		FitCategory:     result.Category,
		Areas:           result.Areas,
		MissingAreas:    result.MissingAreas,
	}, nil
}

func (h *Handler) getAvatarMeasurements(ctx context.Context, userID string) (*engine.AvatarMeasurements, error) {
	cacheKey := "avatar:measurements:" + userID
	if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
		var avatar engine.AvatarMeasurements
		if err := json.Unmarshal([]byte(val), &avatar); err == nil {
			return &avatar, nil
		}
	}

	row := h.db.QueryRowContext(ctx, `
		SELECT height_cm, chest_cm, waist_cm, hip_cm, captured_at
		FROM avatar_measurements WHERE user_id = $1`, userID)

	var avatar engine.AvatarMeasurements
	var capturedAt sql.NullTime
	err := row.Scan(&avatar.HeightCm, &avatar.ChestCm, &avatar.WaistCm, &avatar.HipCm, &capturedAt)
	if err != nil {
		return nil, errors.NewAvatarQueryFailedError(userID, err)
	}
	if capturedAt.Valid {
		avatar.CapturedAt = &capturedAt.Time
	}

	data, _ := json.Marshal(avatar)
	h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)

	return &avatar, nil
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
