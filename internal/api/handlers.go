package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/google/uuid"

	"scrapshop/internal/catalog"
	"scrapshop/internal/logcontext"
	"scrapshop/internal/model"
)

var (
	purchaseSuccessCounter        = metrics.GetOrCreateCounter(`purchase_requests_total{result="success"}`)
	purchaseInvalidCounter        = metrics.GetOrCreateCounter(`purchase_requests_total{result="invalid"}`)
	purchaseNotConfiguredCounter  = metrics.GetOrCreateCounter(`purchase_requests_total{result="not_configured"}`)
	purchaseDeliveryFailedCounter = metrics.GetOrCreateCounter(`purchase_requests_total{result="delivery_failed"}`)
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:  "healthy",
		Message: "The Scrap Shop is running",
	})
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := logcontext.AppendCtx(r.Context(), slog.String("requestId", uuid.New().String()))

	if ct := r.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		purchaseInvalidCounter.Inc()
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error: "Content-Type must be application/json",
		})
		return
	}

	var req model.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		purchaseInvalidCounter.Inc()

		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: validationErr.Message})
			return
		}
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error: "Request body must be valid JSON",
		})
		return
	}

	if err := req.Validate(); err != nil {
		purchaseInvalidCounter.Inc()

		var validationErr *model.ValidationError
		errors.As(err, &validationErr)
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error:          validationErr.Message,
			RequiredFields: validationErr.RequiredFields,
		})
		return
	}

	if !s.processor.Configured() {
		purchaseNotConfiguredCounter.Inc()
		s.logger.WarnContext(ctx, "Discord webhook URL not configured")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error:   "Discord webhook not configured",
			Message: "Please set DISCORD_WEBHOOK_URL environment variable",
		})
		return
	}

	if err := s.processor.Process(ctx, req); err != nil {
		purchaseDeliveryFailedCounter.Inc()
		s.logger.ErrorContext(ctx, "Error sending Discord notification", "error", err)
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{
			Error:   "Failed to send Discord notification",
			Message: "Could not deliver the purchase notification to the Discord webhook",
		})
		return
	}

	purchaseSuccessCounter.Inc()
	writeJSON(w, http.StatusOK, model.PurchaseResponse{
		Status:  "success",
		Message: "Purchase recorded and Discord notification sent!",
		Data: model.PurchaseData{
			Username: req.Username,
			Item:     req.Item,
			Price:    req.Price.Value(),
		},
	})
}

func (s *Server) handleProducts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Products())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, catalog.Products()); err != nil {
		s.logger.ErrorContext(r.Context(), "Error rendering index page", "error", err)
	}
}

// handleFallback catches every request no specific route matched: known paths
// reached with the wrong method get 405, everything else 404.
func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/", "/health", "/purchase", "/products":
		writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{
			Error:   "Method not allowed",
			Message: "The HTTP method is not allowed for this endpoint",
		})
	default:
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{
			Error:   "Endpoint not found",
			Message: "The requested endpoint does not exist",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
