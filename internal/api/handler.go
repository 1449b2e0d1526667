package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rrosborg/box-balancer/internal/benchmark"
	"github.com/rrosborg/box-balancer/internal/packer"
	"github.com/rrosborg/box-balancer/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires packer and storage dependencies into HTTP handlers.
type Handler struct {
	packer  packer.Packer
	storage storage.Storage

	clock func() time.Time

	mu                sync.RWMutex
	boxCountUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(p packer.Packer, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		packer:  p,
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.boxCountUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetBoxCount(w http.ResponseWriter, r *http.Request) {
	_ = r
	count, err := h.storage.GetBoxCount()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := boxCountResponse{
		BoxCount:  count,
		UpdatedAt: h.currentBoxCountUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutBoxCount(w http.ResponseWriter, r *http.Request) {
	var req boxCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if err := h.storage.SetBoxCount(req.BoxCount); err != nil {
		if errors.Is(err, storage.ErrInvalidBoxCount) {
			writeError(w, http.StatusBadRequest, "Invalid box count", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markBoxCountUpdated()

	count, err := h.storage.GetBoxCount()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := boxCountResponse{
		BoxCount:  count,
		UpdatedAt: h.currentBoxCountUpdatedAt(),
		Message:   "Box count updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePack(w http.ResponseWriter, r *http.Request) {
	var req packRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Weights) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "weights must contain at least one value")
		return
	}

	boxCount := req.Boxes
	if boxCount == 0 {
		stored, err := h.storage.GetBoxCount()
		if err != nil {
			writeInternalError(w, err)
			return
		}
		boxCount = stored
	}

	articles := make([]packer.Article, 0, len(req.Weights))
	for i, weight := range req.Weights {
		article, err := packer.NewArticle(i, weight)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid weight", err.Error())
			return
		}
		articles = append(articles, article)
	}

	start := time.Now()
	result, packErr := h.packer.Pack(articles, boxCount)
	elapsed := time.Since(start)

	if packErr != nil {
		switch {
		case errors.Is(packErr, packer.ErrInvalidBoxCount),
			errors.Is(packErr, packer.ErrEmptyInput),
			errors.Is(packErr, packer.ErrInvalidWeight):
			writeError(w, http.StatusBadRequest, "Invalid request", packErr.Error())
		default:
			writeInternalError(w, packErr)
		}
		return
	}

	boxes := make([]packedBox, len(result.Boxes))
	totalWeight := 0.0
	for i, box := range result.Boxes {
		boxes[i] = packedBox{Articles: box.Members, Sum: box.Sum}
		totalWeight += box.Sum
	}

	resp := packResponse{
		BoxCount:          boxCount,
		Boxes:             boxes,
		Spread:            result.Spread,
		TotalWeight:       totalWeight,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleBenchmark(w http.ResponseWriter, r *http.Request) {
	var req benchmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	report, err := benchmark.Run(benchmark.Options{
		Articles:  req.Articles,
		Boxes:     req.Boxes,
		MinWeight: req.MinWeight,
		MaxWeight: req.MaxWeight,
		Seed:      req.Seed,
	})
	if err != nil {
		switch {
		case errors.Is(err, benchmark.ErrInvalidArticleCount),
			errors.Is(err, benchmark.ErrInvalidWeightRange),
			errors.Is(err, packer.ErrInvalidBoxCount):
			writeError(w, http.StatusBadRequest, "Invalid benchmark options", err.Error())
		default:
			writeInternalError(w, err)
		}
		return
	}

	resp := benchmarkResponse{
		Articles:     report.Options.Articles,
		Boxes:        report.Options.Boxes,
		MinWeight:    report.Options.MinWeight,
		MaxWeight:    report.Options.MaxWeight,
		Seed:         report.Options.Seed,
		Greedy:       strategyReportBody(report.Greedy),
		Differencing: strategyReportBody(report.Differencing),
	}
	writeJSON(w, http.StatusOK, resp)
}

func strategyReportBody(r benchmark.StrategyReport) strategyResponse {
	return strategyResponse{
		BoxSums:   r.BoxSums,
		Spread:    r.Spread,
		ElapsedUs: r.Elapsed.Microseconds(),
	}
}

func (h *Handler) currentBoxCountUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.boxCountUpdatedAt
}

func (h *Handler) markBoxCountUpdated() {
	h.mu.Lock()
	h.boxCountUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type boxCountRequest struct {
	BoxCount int `json:"boxCount"`
}

type packRequest struct {
	Weights []float64 `json:"weights"`
	Boxes   int       `json:"boxes,omitempty"`
}

type packedBox struct {
	Articles []int   `json:"articles"`
	Sum      float64 `json:"sum"`
}

type packResponse struct {
	BoxCount          int         `json:"boxCount"`
	Boxes             []packedBox `json:"boxes"`
	Spread            float64     `json:"spread"`
	TotalWeight       float64     `json:"totalWeight"`
	CalculationTimeMs int64       `json:"calculationTimeMs"`
}

type benchmarkRequest struct {
	Articles  int   `json:"articles,omitempty"`
	Boxes     int   `json:"boxes,omitempty"`
	MinWeight int   `json:"minWeight,omitempty"`
	MaxWeight int   `json:"maxWeight,omitempty"`
	Seed      int64 `json:"seed,omitempty"`
}

type strategyResponse struct {
	BoxSums   []float64 `json:"boxSums"`
	Spread    float64   `json:"spread"`
	ElapsedUs int64     `json:"elapsedUs"`
}

type benchmarkResponse struct {
	Articles     int              `json:"articles"`
	Boxes        int              `json:"boxes"`
	MinWeight    int              `json:"minWeight"`
	MaxWeight    int              `json:"maxWeight"`
	Seed         int64            `json:"seed"`
	Greedy       strategyResponse `json:"greedy"`
	Differencing strategyResponse `json:"differencing"`
}

type boxCountResponse struct {
	BoxCount  int       `json:"boxCount"`
	UpdatedAt time.Time `json:"updatedAt"`
	Message   string    `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
