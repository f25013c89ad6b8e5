package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/unitconv/internal/api/shared"
	"github.com/phrazzld/unitconv/internal/domain/units"
	"github.com/phrazzld/unitconv/internal/platform/metrics"
	"github.com/phrazzld/unitconv/internal/service/converter"
)

// ConversionObserver is notified of every conversion request the handler
// completes. Outcomes are the metrics.Outcome* values.
type ConversionObserver interface {
	ObserveConversion(category, outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveConversion(string, string) {}

// ConversionHandler exposes the conversion engine over HTTP.
type ConversionHandler struct {
	converter converter.Service
	observer  ConversionObserver
	logger    *slog.Logger
}

// NewConversionHandler creates a new ConversionHandler. A nil observer
// discards observations.
func NewConversionHandler(
	svc converter.Service,
	observer ConversionObserver,
	logger *slog.Logger,
) *ConversionHandler {
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ConversionHandler{
		converter: svc,
		observer:  observer,
		logger:    logger.With(slog.String("component", "conversion_handler")),
	}
}

// ListCategories handles GET /api/categories.
func (h *ConversionHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, CategoriesResponse{
		Categories: h.converter.ListCategories(),
	})
}

// ListUnits handles GET /api/categories/{category}/units.
func (h *ConversionHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	unitNames, err := h.converter.UnitsFor(category)
	if err != nil {
		h.respondWithEngineError(w, r, err)
		return
	}

	from, to, err := h.converter.DefaultPair(category)
	if err != nil {
		h.respondWithEngineError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UnitsResponse{
		Category:    category,
		Units:       unitNames,
		DefaultFrom: from,
		DefaultTo:   to,
	})
}

// Convert handles POST /api/convert.
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	conv := converter.Request{
		Category: req.Category,
		Input:    req.Value,
		From:     req.From,
		To:       req.To,
	}
	if req.Swap {
		conv = conv.Swap()
	}

	result, err := conv.Do(h.converter)
	if err != nil {
		h.observer.ObserveConversion(observedCategory(conv.Category, err), metrics.OutcomeRejected)
		h.respondWithEngineError(w, r, err)
		return
	}

	outcome := metrics.OutcomeConverted
	if result == "" {
		outcome = metrics.OutcomeEmpty
	}
	h.observer.ObserveConversion(conv.Category, outcome)

	shared.RespondWithJSON(w, r, http.StatusOK, ConvertResponse{
		Category: conv.Category,
		Value:    conv.Input,
		From:     conv.From,
		To:       conv.To,
		Result:   result,
	})
}

// observedCategory is the category label for an observation. Names the
// registry does not know collapse to one label so clients cannot mint
// unbounded label values.
func observedCategory(category string, err error) string {
	if errors.Is(err, units.ErrUnknownCategory) {
		return metrics.UnknownCategory
	}
	return category
}

// respondWithEngineError maps an engine error to a safe client response.
// A unit outside its category means the client offered a choice the engine
// never listed, so it is logged above the usual 4xx level.
func (h *ConversionHandler) respondWithEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var opts []shared.ResponseOption
	if errors.Is(err, units.ErrUnitNotInCategory) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}
