package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 按 method/path/status 统计请求量和耗时。
// path 用路由模板，公开页 /p/:id 不会按具体 id 打散标签。
type MetricsBuilder struct {
	durationVec *prometheus.SummaryVec
	requestVec  *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		durationVec: promauto.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace: "internfolio",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			},
			labels,
		),
		requestVec: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "internfolio",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			labels,
		),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		duration := time.Since(start).Seconds()

		method := ctx.Request.Method
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())

		b.durationVec.WithLabelValues(method, path, statusCode).Observe(duration)
		b.requestVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
