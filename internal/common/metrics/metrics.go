// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	FitConfidenceScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fit_confidence_score",
			Help:    "Distribution of fit confidence scores produced per garment category",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"category"},
	)

	FitCategoryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_category_total",
			Help: "Total fit classifications by outcome",
		},
		[]string{"fit_category"},
	)
)
