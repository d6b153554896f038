package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/panjuncai/Sola-sub000/internal/domain"
	"github.com/panjuncai/Sola-sub000/internal/service/cloze"
	"github.com/panjuncai/Sola-sub000/pkg/ctxutil"
)

// clozeService defines the minimal interface needed by ClozeHandler.
type clozeService interface {
	Compare(ctx context.Context, input cloze.CompareInput) (*domain.ClozeResult, error)
	CompareBatch(ctx context.Context, input cloze.CompareBatchInput) (*cloze.BatchResult, error)
	SplitSentences(ctx context.Context, input cloze.SplitInput) ([]string, error)
}

// ClozeHandler serves cloze comparison endpoints.
type ClozeHandler struct {
	svc          clozeService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewClozeHandler creates a ClozeHandler. Request bodies larger than
// maxBodyBytes are rejected with 413.
func NewClozeHandler(svc clozeService, logger *slog.Logger, maxBodyBytes int64) *ClozeHandler {
	return &ClozeHandler{svc: svc, log: logger.With("handler", "cloze"), maxBodyBytes: maxBodyBytes}
}

// Register mounts the handler's routes on mux.
func (h *ClozeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/cloze/compare", h.Compare)
	mux.HandleFunc("POST /api/cloze/compare-batch", h.CompareBatch)
	mux.HandleFunc("POST /api/sentences/split", h.SplitSentences)
}

type compareRequest struct {
	Expected string `json:"expected"`
	Attempt  string `json:"attempt"`
	Language string `json:"language"`
}

type batchItemRequest struct {
	Expected string `json:"expected"`
	Attempt  string `json:"attempt"`
}

type compareBatchRequest struct {
	Language string             `json:"language"`
	Items    []batchItemRequest `json:"items"`
}

type splitRequest struct {
	Text string `json:"text"`
}

// Compare handles POST /api/cloze/compare.
func (h *ClozeHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Compare(r.Context(), cloze.CompareInput{
		Expected: req.Expected,
		Attempt:  req.Attempt,
		Language: requestLanguage(r, req.Language),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewResultResponse(*res))
}

// CompareBatch handles POST /api/cloze/compare-batch.
func (h *ClozeHandler) CompareBatch(w http.ResponseWriter, r *http.Request) {
	var req compareBatchRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]cloze.BatchItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = cloze.BatchItem{Expected: it.Expected, Attempt: it.Attempt}
	}

	res, err := h.svc.CompareBatch(r.Context(), cloze.CompareBatchInput{
		Language: requestLanguage(r, req.Language),
		Items:    items,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	results := make([]ResultResponse, len(res.Results))
	for i, cr := range res.Results {
		results[i] = NewResultResponse(cr)
	}
	writeJSON(w, http.StatusOK, BatchResponse{
		Results:      results,
		CorrectCount: res.CorrectCount,
		Total:        res.Total,
	})
}

// SplitSentences handles POST /api/sentences/split.
func (h *ClozeHandler) SplitSentences(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sentences, err := h.svc.SplitSentences(r.Context(), cloze.SplitInput{Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if sentences == nil {
		sentences = []string{}
	}

	writeJSON(w, http.StatusOK, SentencesResponse{Sentences: sentences})
}

// requestLanguage prefers the body's language over Accept-Language.
func requestLanguage(r *http.Request, bodyTag string) string {
	if bodyTag != "" {
		return bodyTag
	}
	return ctxutil.LanguageFromCtx(r.Context())
}
