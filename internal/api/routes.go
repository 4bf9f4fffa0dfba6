package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mab2k/homebridge-teufel/internal/models"
	"github.com/samber/lo"
)

const commandTimeout = 15 * time.Second

type switchService interface {
	Accessories() []models.Accessory
	Accessory(id string) (models.Accessory, bool)
	SwitchState(id string) (on bool, known bool)
	SetSwitchAndWait(ctx context.Context, id string, on bool) error
}

type httpError struct {
	status  int
	message string
}

func (e *httpError) Error() string {
	return e.message
}

// Handler adapts handlers that return errors into http.Handler.
type Handler func(w http.ResponseWriter, r *http.Request) error

func (handler Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := handler(w, r); err != nil {
		status := http.StatusInternalServerError
		var he *httpError
		if errors.As(err, &he) {
			status = he.status
		}
		_ = writeJSON(w, status, map[string]any{"error": err.Error()})
	}
}

type accessoryResponse struct {
	ID          string                  `json:"id"`
	DisplayName string                  `json:"displayName"`
	Context     models.AccessoryContext `json:"context"`
	On          *bool                   `json:"on"`
}

type switchRequest struct {
	On *bool `json:"on"`
}

// NewRouter builds the status API.
func NewRouter(logger *log.Logger, service switchService) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))

	router.Method(http.MethodGet, "/health", Handler(func(w http.ResponseWriter, r *http.Request) error {
		return writeJSON(w, http.StatusOK, map[string]any{
			"status":      "healthy",
			"accessories": len(service.Accessories()),
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}))
	router.Method(http.MethodGet, "/api/accessories", Handler(listAccessories(service)))
	router.Method(http.MethodGet, "/api/accessories/{id}", Handler(getAccessory(service)))
	router.Method(http.MethodPut, "/api/accessories/{id}/switch", Handler(setSwitch(service)))

	return router
}

func listAccessories(service switchService) Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		accessories := lo.Map(service.Accessories(), func(acc models.Accessory, _ int) accessoryResponse {
			return formatAccessory(service, acc)
		})
		return writeJSON(w, http.StatusOK, accessories)
	}
}

func getAccessory(service switchService) Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		acc, ok := service.Accessory(chi.URLParam(r, "id"))
		if !ok {
			return &httpError{status: http.StatusNotFound, message: "accessory not found"}
		}
		return writeJSON(w, http.StatusOK, formatAccessory(service, acc))
	}
}

func setSwitch(service switchService) Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		id := chi.URLParam(r, "id")
		if _, ok := service.Accessory(id); !ok {
			return &httpError{status: http.StatusNotFound, message: "accessory not found"}
		}

		var body switchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.On == nil {
			return &httpError{status: http.StatusBadRequest, message: "body must be {\"on\": true|false}"}
		}

		ctx, cancel := context.WithTimeout(r.Context(), commandTimeout)
		defer cancel()
		if err := service.SetSwitchAndWait(ctx, id, *body.On); err != nil {
			return &httpError{status: http.StatusBadGateway, message: err.Error()}
		}

		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

// the virtual zone's state is only known once it has been pushed, so on is
// null for it
func formatAccessory(service switchService, acc models.Accessory) accessoryResponse {
	res := accessoryResponse{ID: acc.ID, DisplayName: acc.DisplayName, Context: acc.Context}
	if on, known := service.SwitchState(acc.ID); known {
		res.On = &on
	}
	return res
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("api request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}
