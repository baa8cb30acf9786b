package get_services

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// ServiceResponse HTTP модель услуги из каталога
type ServiceResponse struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     string  `json:"description"`
	Free            bool    `json:"free"`
}

// ServiceListResponse HTTP ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует каталог услуг в HTTP response
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, ServiceResponse{
			Name:            s.Name,
			Type:            string(s.Type),
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Description:     s.Description,
			Free:            s.IsFree(),
		})
	}
	return &ServiceListResponse{Services: result}
}
