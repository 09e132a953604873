package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nxtgenhub/lead-relay/internal/entity"
	"github.com/nxtgenhub/lead-relay/internal/infra/http/middleware"
	"github.com/nxtgenhub/lead-relay/internal/usecase"
)

// maxBodyBytes caps the request body; rendered lead mails are a few KB.
const maxBodyBytes = 1 << 20

type RelayEmailExecutor interface {
	Execute(ctx context.Context, input entity.DispatchRequest) (*usecase.RelayEmailOutput, error)
}

type EmailHandler struct {
	RelayUC RelayEmailExecutor
}

func NewEmailHandler(uc RelayEmailExecutor) *EmailHandler {
	return &EmailHandler{RelayUC: uc}
}

// SendEmail handles POST /api/send-email and its /api/send alias.
func (h *EmailHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req entity.DispatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeDispatchError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	out, err := h.RelayUC.Execute(r.Context(), req)
	if err != nil {
		var domainErr *usecase.DomainError
		var techErr *usecase.TechnicalError
		switch {
		case errors.As(err, &domainErr):
			writeDispatchError(w, http.StatusBadRequest, domainErr.Message)
		case errors.As(err, &techErr):
			middleware.RecordEmail(middleware.EmailPrimary, middleware.StatusFailed)
			writeDispatchError(w, http.StatusInternalServerError, techErr.Message)
		default:
			writeDispatchError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	middleware.RecordEmail(middleware.EmailPrimary, middleware.StatusSent)
	if out.ConfirmationRequested {
		status := middleware.StatusFailed
		if out.ConfirmationSent {
			status = middleware.StatusSent
		}
		middleware.RecordEmail(middleware.EmailConfirmation, status)
	}

	w.Header().Set("X-Relay-ID", out.RelayID)
	writeJSON(w, http.StatusOK, entity.DispatchResult{
		Success:          true,
		ConfirmationSent: out.ConfirmationSent,
	})
}
