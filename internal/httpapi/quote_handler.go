package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/polygondevindia-tech/board-build-boutique/internal/quote"
)

// QuotePublisher announces a stored quote request to the sales pipeline.
type QuotePublisher interface {
	PublishQuoteRequested(ctx context.Context, q *quote.Request) error
}

type QuoteHandler struct {
	repo      quote.Repository
	publisher QuotePublisher
	logger    *log.Logger
}

func NewQuoteHandler(repo quote.Repository, publisher QuotePublisher, logger *log.Logger) *QuoteHandler {
	return &QuoteHandler{repo: repo, publisher: publisher, logger: logger}
}

func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var q quote.Request
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := q.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Insert(r.Context(), &q); err != nil {
		h.logger.Printf("insert quote request: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save quote request")
		return
	}

	// the stored row is the source of truth; the event is best-effort
	if h.publisher != nil {
		if err := h.publisher.PublishQuoteRequested(r.Context(), &q); err != nil {
			h.logger.Printf("publish quote requested: %v", err)
		}
	}

	writeJSON(w, http.StatusCreated, q)
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Printf("list quote requests: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list quote requests")
		return
	}
	if quotes == nil {
		quotes = []quote.Request{}
	}
	writeJSON(w, http.StatusOK, quotes)
}
