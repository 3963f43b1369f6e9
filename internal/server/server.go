// Package server exposes the calculators over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/propfin/affordability/internal/cache"
	"github.com/propfin/affordability/internal/config"
	"github.com/propfin/affordability/internal/engine"
	"github.com/propfin/affordability/pkg/comparison"
	"github.com/propfin/affordability/pkg/constants"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	cache       cache.Cache
	cacheTTL    time.Duration
}

// Options configures the HTTP handler.
type Options struct {
	MaxBodySize int64
	Version     string
	Cache       cache.Cache
	CacheTTL    time.Duration
	RateLimiter *RateLimiter
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: opts.MaxBodySize,
		version:     trimmedVersion,
		cache:       opts.Cache,
		cacheTTL:    opts.CacheTTL,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/affordability", h.handleAffordability)
	mux.HandleFunc("/api/v1/affordability/quick", h.handleQuick)
	mux.HandleFunc("/api/v1/comparison", h.handleComparison)
	mux.HandleFunc("/api/version", h.handleVersion)

	if opts.RateLimiter != nil {
		return RateLimitMiddleware(opts.RateLimiter, mux)
	}
	return mux
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleAffordability(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAffordability"

	body, ok := h.readBody(w, r, op)
	if !ok {
		return
	}

	var profile config.FinancialProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode profile: %v", err), op)
		return
	}

	if errs := profile.Validate(); len(errs) > 0 {
		h.respondValidationErrors(w, errs, op)
		return
	}

	if cached, ok := h.cachedResult(r.Context(), constants.ProductDetailed, body); ok {
		h.writeCached(w, cached)
		return
	}

	start := time.Now()
	result, err := engine.ComputeAffordability(h.logger, &profile)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute affordability: %v", err), op)
		return
	}

	h.logger.Info("affordability computed",
		zap.String("op", op),
		zap.Float64("maxPropertyPrice", result.MaxPropertyPrice),
		zap.Duration("duration", time.Since(start)),
	)

	h.respondWithCache(r.Context(), w, constants.ProductDetailed, body, result)
}

func (h *handler) handleQuick(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleQuick"

	body, ok := h.readBody(w, r, op)
	if !ok {
		return
	}

	var quick config.QuickProfile
	if err := json.Unmarshal(body, &quick); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode profile: %v", err), op)
		return
	}

	if errs := quick.Validate(); len(errs) > 0 {
		h.respondValidationErrors(w, errs, op)
		return
	}

	if cached, ok := h.cachedResult(r.Context(), constants.ProductQuick, body); ok {
		h.writeCached(w, cached)
		return
	}

	start := time.Now()
	result, err := engine.ComputeQuickEstimate(h.logger, &quick)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute estimate: %v", err), op)
		return
	}

	h.logger.Info("quick estimate computed",
		zap.String("op", op),
		zap.Float64("maxHomePrice", result.MaxHomePrice),
		zap.Duration("duration", time.Since(start)),
	)

	h.respondWithCache(r.Context(), w, constants.ProductQuick, body, result)
}

func (h *handler) handleComparison(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleComparison"

	body, ok := h.readBody(w, r, op)
	if !ok {
		return
	}

	var in config.ComparisonInput
	if err := json.Unmarshal(body, &in); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode scenario: %v", err), op)
		return
	}

	if errs := in.Validate(); len(errs) > 0 {
		h.respondValidationErrors(w, errs, op)
		return
	}

	if cached, ok := h.cachedResult(r.Context(), constants.ProductComparison, body); ok {
		h.writeCached(w, cached)
		return
	}

	start := time.Now()
	result := comparison.Analyze(comparison.Input{
		PropertyPrice:        in.PropertyPrice,
		AvailableCash:        in.AvailableCash,
		Contribution:         in.Contribution,
		InterestRate:         in.InterestRate,
		TenureYears:          in.LoanTenure,
		InvestmentGrowthRate: in.InvestmentGrowthRate,
		AppreciationRate:     in.AppreciationRate,
		GivenOnRent:          in.GivenOnRent,
		RentPercentage:       in.RentPercentage,
	})

	h.logger.Info("comparison computed",
		zap.String("op", op),
		zap.Float64("finalNetWorth", result.FinalNetWorth),
		zap.Duration("duration", time.Since(start)),
	)

	h.respondWithCache(r.Context(), w, constants.ProductComparison, body, result)
}

// readBody enforces the method and body-size cap and returns the payload.
func (h *handler) readBody(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return nil, false
	}

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r.Body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return nil, false
	}

	return buf.Bytes(), true
}

// cachedResult looks the request up in the result cache; errors and misses
// both report a miss.
func (h *handler) cachedResult(ctx context.Context, product string, body []byte) (string, bool) {
	if h.cache == nil {
		return "", false
	}
	return h.cache.Get(ctx, cache.Key(product, body))
}

func (h *handler) writeCached(w http.ResponseWriter, payload string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, payload); err != nil {
		h.logger.Error("failed to write cached response", zap.Error(err))
	}
}

// respondWithCache writes the result and stores it for identical requests.
// Cache failures are logged and never surface to the client.
func (h *handler) respondWithCache(ctx context.Context, w http.ResponseWriter, product string, body []byte, result interface{}) {
	encoded, err := json.Marshal(result)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode result: %v", err), "server.respondWithCache")
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, cache.Key(product, body), string(encoded), h.cacheTTL); err != nil {
			h.logger.Warn("failed to store result in cache",
				zap.String("op", "server.respondWithCache"),
				zap.Error(err),
			)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(encoded); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) respondValidationErrors(w http.ResponseWriter, errs []config.FieldError, op string) {
	h.logger.Warn("request failed validation",
		zap.String("op", op),
		zap.Int("errorCount", len(errs)),
	)
	h.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": errs,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
