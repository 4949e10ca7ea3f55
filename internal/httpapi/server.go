package httpapi

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
// Implementations must be safe for concurrent use.
type Service interface {
	Predict(s types.WaterSample) (int, error)
	Info() types.ModelInfo
	Ready() bool
}

type handlers struct {
	svc Service
}

func NewMux(svc Service) http.Handler {
	h := &handlers{svc: svc}
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, metrics, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		origins := corsAllowedOrigins
		if len(origins) == 0 {
			origins = []string{"*"}
		}
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "X-Request-Id", "X-Log-Level"},
			MaxAge:         300,
		}))
	}

	r.Post("/predict", h.predict)
	r.Get("/model", h.model)
	r.Get("/healthz", h.healthz)
	r.Get("/readyz", h.readyz)

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountDocs(r)
	return r
}

// predict godoc
//
//	@Summary		Predict potability
//	@Description	Predicts whether a water sample is potable. All nine measurements are required; numeric strings and booleans are accepted.
//	@Tags			prediction
//	@Accept			json
//	@Accept			application/*+json
//	@Produce		json
//	@Param			sample	body		types.WaterSample	true	"Water sample"
//	@Success		200		{object}	types.PredictionResponse
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		422		{object}	types.ValidationErrorResponse
//	@Failure		500		{object}	types.ErrorResponse
//	@Router			/predict [post]
func (h *handlers) predict(w http.ResponseWriter, r *http.Request) {
	// Limit body size (configurable, default 1MiB)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "request body too large")
		return
	}
	var (
		sample types.WaterSample
		detail []types.ValidationError
	)
	if isJSONContentType(r.Header.Get("Content-Type")) {
		sample, detail = DecodeWaterSample(body)
	} else {
		detail = rejectNonJSONBody(body)
	}
	if len(detail) > 0 {
		countValidationFailures(detail)
		logEvent(r, LevelInfo).Int("status", http.StatusUnprocessableEntity).Int("errors", len(detail)).Msg("predict rejected")
		writeValidationError(w, detail)
		return
	}

	start := time.Now()
	label, err := h.svc.Predict(sample)
	dur := time.Since(start)
	if err != nil {
		logEvent(r, LevelError).Int("status", http.StatusInternalServerError).Dur("dur", dur).Err(err).Msg("predict failed")
		writeJSONError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	observePrediction(label, dur)
	logEvent(r, LevelDebug).Int("potability", label).Dur("dur", dur).Msg("predict")
	writeJSON(w, http.StatusOK, types.PredictionResponse{Potability: label})
}

// model godoc
//
//	@Summary	Loaded model metadata
//	@Tags		model
//	@Produce	json
//	@Success	200	{object}	types.ModelInfo
//	@Router		/model [get]
func (h *handlers) model(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Info())
}

// healthz godoc
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string	"ok"
//	@Router		/healthz [get]
func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// readyz godoc
//
//	@Summary	Readiness probe
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string	"ready"
//	@Failure	503	{string}	string	"loading"
//	@Router		/readyz [get]
func (h *handlers) readyz(w http.ResponseWriter, r *http.Request) {
	if h.svc.Ready() {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte("loading"))
}
