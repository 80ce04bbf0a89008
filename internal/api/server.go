// Package api provides the HTTP and WebSocket server for the journal.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/atlas-desktop/journal-backend/internal/analytics"
	"github.com/atlas-desktop/journal-backend/internal/store"
	"github.com/atlas-desktop/journal-backend/pkg/types"
)

const version = "1.0.0"

// Server is the HTTP/WebSocket API server
type Server struct {
	logger     *zap.Logger
	config     *types.Config
	router     *mux.Router
	httpServer *http.Server
	upgrader   websocket.Upgrader
	hub        *Hub
	trades     store.TradeRepository
	settings   *store.SettingsStore
	analyzer   *analytics.Analyzer
}

// New creates the API server over the injected stores and analyzer.
func New(cfg *types.Config, logger *zap.Logger, trades store.TradeRepository, settings *store.SettingsStore, analyzer *analytics.Analyzer) *Server {
	s := &Server{
		logger:   logger,
		config:   cfg,
		router:   mux.NewRouter(),
		hub:      NewHub(logger),
		trades:   trades,
		settings: settings,
		analyzer: analyzer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // CORS policy is enforced by the cors wrapper
			},
		},
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures HTTP routes
func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware, s.loggingMiddleware, s.metricsMiddleware)

	api := s.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Trade CRUD
	api.HandleFunc("/trades", s.handleListTrades).Methods("GET")
	api.HandleFunc("/trades", s.handleCreateTrade).Methods("POST")
	api.HandleFunc("/trades/{id}", s.handleGetTrade).Methods("GET")
	api.HandleFunc("/trades/{id}", s.handleUpdateTrade).Methods("PUT")
	api.HandleFunc("/trades/{id}", s.handleDeleteTrade).Methods("DELETE")

	// Analytics passes
	api.HandleFunc("/analytics/report", s.handleReport).Methods("GET")
	api.HandleFunc("/analytics/equity-curve", s.handleEquityCurve).Methods("GET")
	api.HandleFunc("/analytics/drawdown", s.handleDrawdown).Methods("GET")
	api.HandleFunc("/analytics/sharpe", s.handleSharpe).Methods("GET")
	api.HandleFunc("/analytics/streaks", s.handleStreaks).Methods("GET")
	api.HandleFunc("/analytics/histogram", s.handleHistogram).Methods("GET")
	api.HandleFunc("/analytics/calendar", s.handleCalendar).Methods("GET")
	api.HandleFunc("/analytics/sessions", s.handleSessions).Methods("GET")

	// Settings
	api.HandleFunc("/settings", s.handleListSettings).Methods("GET")
	api.HandleFunc("/settings/{key}", s.handleGetSetting).Methods("GET")
	api.HandleFunc("/settings/{key}", s.handlePutSetting).Methods("PUT")

	// WebSocket
	s.router.HandleFunc(s.config.Server.WebSocketPath, s.handleWebSocket)

	if s.config.Server.EnableMetrics {
		s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}
}

// Router returns the underlying router for tests.
func (s *Server) Router() *mux.Router {
	return s.router
}

// Hub returns the WebSocket hub; the caller owns its Run loop.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	handler := cors.New(cors.Options{
		AllowedOrigins:   s.config.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(s.router)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	s.logger.Info("Starting API server", zap.String("addr", addr))

	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "journal-backend",
		"version":   version,
		"timestamp": time.Now().Unix(),
	})
}

// handleWebSocket upgrades the connection and starts the client pumps.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}

	client := NewClient(uuid.New().String(), s.hub, conn)
	s.hub.register <- client

	s.logger.Info("WebSocket client connected", zap.String("id", client.id))

	go client.WritePump()
	go client.ReadPump()
}

// reportOptions assembles the analyzer inputs from the settings store and
// the configured session table.
func (s *Server) reportOptions() analytics.ReportOptions {
	return analytics.ReportOptions{
		StartingBalance: s.settings.StartingBalance(),
		BucketWidth:     s.settings.BucketWidth(),
		Sessions:        s.config.Analytics.Sessions,
	}
}

// publishAnalytics recomputes the full report and pushes it to analytics
// subscribers. Called after every mutation that can change the numbers.
func (s *Server) publishAnalytics() {
	report := s.analyzer.Report(s.trades.List(), s.reportOptions())
	analyticsReportsTotal.Inc()
	s.hub.PublishToChannel(ChannelAnalytics, MsgTypeAnalyticsUpdate, report)
}

// afterTradeMutation broadcasts the trade event, refreshes the analytics
// channel, and updates the trade gauge.
func (s *Server) afterTradeMutation(msgType MessageType, payload interface{}) {
	s.hub.PublishToChannel(ChannelTrades, msgType, payload)
	s.publishAnalytics()
	tradesGauge.Set(float64(s.trades.Count()))
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
