package handlers

import (
	"context"
	"net/http"
	"time"
)

type DBProbe interface {
	Now(ctx context.Context) (time.Time, error)
}

type BrokerStatus interface {
	IsClosed() bool
}

type HealthHandler struct {
	DB        DBProbe
	Broker    BrokerStatus
	StartTime time.Time
	now       func() time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Timestamp    string            `json:"timestamp"`
	Database     string            `json:"database"`
	DBTime       string            `json:"dbTime,omitempty"`
	Error        string            `json:"error,omitempty"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewHealthHandler accepts nil db or broker when that integration is off.
func NewHealthHandler(db DBProbe, broker BrokerStatus) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		Broker:    broker,
		StartTime: time.Now(),
		now:       time.Now,
	}
}

// Handle answers 503 only when the database is configured and unreachable.
// A closed broker is reported but does not fail liveness.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	resp := HealthResponse{
		Status:       "OK",
		Timestamp:    now.UTC().Format(time.RFC3339),
		Uptime:       now.Sub(h.StartTime).Round(time.Second).String(),
		Dependencies: map[string]string{},
	}
	status := http.StatusOK

	if h.DB == nil {
		resp.Database = "not configured"
	} else if dbTime, err := h.DB.Now(r.Context()); err != nil {
		resp.Status = "ERROR"
		resp.Database = "disconnected"
		resp.Error = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		resp.Database = "connected"
		resp.DBTime = dbTime.UTC().Format(time.RFC3339)
	}
	resp.Dependencies["database"] = resp.Database

	switch {
	case h.Broker == nil:
		resp.Dependencies["rabbitmq"] = "not configured"
	case h.Broker.IsClosed():
		resp.Dependencies["rabbitmq"] = "unhealthy: connection closed"
	default:
		resp.Dependencies["rabbitmq"] = "healthy"
	}

	writeJSON(w, status, resp)
}
