package api

import (
	"log/slog"
	"net/http"

	"github.com/prachinebangla/seogen/internal/api/shared"
	"github.com/prachinebangla/seogen/internal/service"
)

// ContentHandler handles the SEO content HTTP requests.
type ContentHandler struct {
	contentService service.ContentService
	logger         *slog.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentHandler{
		contentService: contentService,
		logger:         logger.With(slog.String("component", "content_handler")),
	}
}

// AnalyzeURL handles POST /api/analyze-url requests.
func (h *ContentHandler) AnalyzeURL(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeURLRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.contentService.AnalyzeURL(r.Context(), req.URL, req.CompanyName)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.respond(w, r, "analyze_url", result)
}

// GenerateContent handles POST /api/generate-content requests.
func (h *ContentHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req GenerateContentRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.contentService.GenerateContent(r.Context(), req.Content, req.CompanyName, req.KeywordCount)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.respond(w, r, "generate_content", result)
}

// Paraphrase handles POST /api/paraphrase requests.
func (h *ContentHandler) Paraphrase(w http.ResponseWriter, r *http.Request) {
	var req ParaphraseRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.contentService.Paraphrase(r.Context(), req.Text, req.CompanyName)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.respond(w, r, "paraphrase", result)
}

// ProductDescription handles POST /api/product-description requests.
func (h *ContentHandler) ProductDescription(w http.ResponseWriter, r *http.Request) {
	var req ProductDescriptionRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.contentService.ProductDescription(r.Context(), req.ProductInfo, req.CompanyName)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.respond(w, r, "product_description", result)
}

// respond writes a successful result.
func (h *ContentHandler) respond(w http.ResponseWriter, r *http.Request, operation string, result interface{}) {
	h.logger.DebugContext(r.Context(), "content request served", slog.String("operation", operation))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// decode parses and validates the request body into req. It writes a 400
// response and returns false when the body is unusable.
func (h *ContentHandler) decode(w http.ResponseWriter, r *http.Request, req contentRequest) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MessageInvalidRequest, err)
		return false
	}

	req.normalize()

	if err := shared.ValidateRequest(req); err != nil {
		message := SanitizeValidationError(err)
		if _, tag := shared.FailedTag(err); tag == "required" {
			message = req.requiredMessage()
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, message)
		return false
	}

	return true
}
