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

	AnswersRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_answers_recorded_total",
			Help: "Total number of answers recorded, by stage",
		},
		[]string{"stage"},
	)

	StagesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_stages_scored_total",
			Help: "Total number of stage scoring jobs completed, by stage",
		},
		[]string{"stage"},
	)

	RecommendationsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_recommendations_total",
			Help: "Total number of final recommendations computed, by band",
		},
		[]string{"recommendation"},
	)

	ReportsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_reports_delivered_total",
			Help: "Total number of result reports delivered, by channel",
		},
		[]string{"channel"},
	)
)
