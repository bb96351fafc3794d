// internal/workers/recommendation/recommend-complementary/handler.go
package recommendcomplementary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tryon-workers/internal/common/errors"
	"tryon-workers/internal/common/logger"
	"tryon-workers/internal/common/metrics"
	"tryon-workers/internal/engine"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const (
	TaskType = "recommend-complementary"
)

type Handler struct {
	config       *Config
	engine       *engine.Engine
	es           *elasticsearch.Client
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, eng *engine.Engine, es *elasticsearch.Client, log logger.Logger) *Handler {
	h := &Handler{
		config: config,
		engine: eng,
		es:     es,
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
		code := "RECOMMENDATION_FAILED"
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
	catalog := input.Catalog
	if len(catalog) == 0 && h.es != nil {
		var err error
		catalog, err = h.searchCatalog(ctx, input)
		if err != nil {
			return nil, err
		}
	}

	recommendations := h.engine.RecommendComplementary(input.PrimaryCategory, catalog, input.Preferences)

	maxResults := input.MaxResults
	if maxResults <= 0 || maxResults > h.config.MaxResults {
		maxResults = h.config.MaxResults
	}
	if len(recommendations) > maxResults {
		recommendations = recommendations[:maxResults]
	}

	h.logger.Info("complementary products recommended", map[string]interface{}{
		"productId":       input.ProductID,
		"primaryCategory": input.PrimaryCategory,
		"catalogSize":     len(catalog),
		"recommendations": len(recommendations),
	})

	return &Output{Recommendations: recommendations}, nil
}

// searchCatalog pulls candidate products for the complementary categories of
// the primary category. An unknown primary category searches nothing, the
// engine would reject every hit anyway.
func (h *Handler) searchCatalog(ctx context.Context, input *Input) ([]engine.CategoryProduct, error) {
	categories := engine.ComplementaryCategories(input.PrimaryCategory)
	if len(categories) == 0 {
		return nil, nil
	}

	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []interface{}{
					map[string]interface{}{
						"terms": map[string]interface{}{"category": categories},
					},
				},
				"must_not": []interface{}{
					map[string]interface{}{
						"term": map[string]interface{}{"id": input.ProductID},
					},
				},
			},
		},
	}

	body, _ := json.Marshal(queryBody)
	size := h.config.MaxResults

	req := esapi.SearchRequest{
		Index: []string{h.config.CatalogIndex},
		Body:  strings.NewReader(string(body)),
		Size:  &size,
	}

	res, err := req.Do(ctx, h.es)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewCatalogSearchTimeoutError()
		}
		return nil, errors.NewCatalogSearchFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.NewCatalogSearchFailedError(fmt.Errorf("search failed: %s", res.Status()))
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source engine.CategoryProduct `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, errors.NewCatalogSearchFailedError(err)
	}

	products := make([]engine.CategoryProduct, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		products = append(products, hit.Source)
	}
	return products, nil
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
