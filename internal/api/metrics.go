// Package api provides Prometheus instrumentation for the HTTP and
// WebSocket surface.
package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journal_http_requests_total",
		Help: "HTTP requests served, by method, route template, and status code.",
	}, []string{"method", "route", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "journal_http_request_duration_seconds",
		Help:    "HTTP request latency by route template.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	wsClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "journal_ws_clients",
		Help: "Currently connected WebSocket clients.",
	})

	tradesGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "journal_trades",
		Help: "Number of trades currently in the store.",
	})

	analyticsReportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "journal_analytics_reports_total",
		Help: "Full analytics reports computed.",
	})
)
