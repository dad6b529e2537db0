package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nchindhamani/portfolio-api/internal/content"
	"github.com/nchindhamani/portfolio-api/internal/service"
)

// PortfolioHandler serves the static résumé content.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

type portfolioResponse struct {
	Success bool               `json:"success"`
	Data    *content.Portfolio `json:"data"`
}

type sectionResponse struct {
	Success bool   `json:"success"`
	Section string `json:"section"`
	Data    any    `json:"data"`
}

// GetAll handles GET /api/portfolio.
func (h *PortfolioHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, portfolioResponse{
		Success: true,
		Data:    h.portfolioService.GetAll(),
	})
}

// GetSection handles GET /api/portfolio/{section}.
func (h *PortfolioHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	data, err := h.portfolioService.GetSection(section)
	if errors.Is(err, service.ErrSectionNotFound) {
		writeError(w, http.StatusNotFound, "section_not_found", fmt.Sprintf("Section '%s' not found", section))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to load section")
		return
	}

	writeJSON(w, http.StatusOK, sectionResponse{
		Success: true,
		Section: section,
		Data:    data,
	})
}
