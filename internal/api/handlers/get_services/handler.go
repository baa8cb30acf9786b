package get_services

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type Handler struct {
	services []domain.Service
	logger   Logger
}

func NewHandler(services []domain.Service, logger Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromDomainServices(h.services)

	h.logger.Info("GET /services - Returned %d services", len(response.Services))
	handlers.RespondJSON(w, http.StatusOK, response)
}
