package response

import (
	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/usecase/queries"
)

type ServiceResponse struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Description     string  `json:"description,omitempty"`
}

type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
	Missing  []string          `json:"missing,omitempty"`
}

type BusinessResponse struct {
	Data    map[string]any `json:"data"`
	Missing []string       `json:"missing,omitempty"`
}

func FromServicesView(v *queries.ServicesView) *ServicesResponse {
	services := make([]ServiceResponse, 0, len(v.Services))
	for _, svc := range v.Services {
		services = append(services, fromService(svc))
	}
	return &ServicesResponse{Services: services, Missing: v.Missing}
}

func FromBusinessView(v *queries.BusinessView) *BusinessResponse {
	return &BusinessResponse{Data: v.Data, Missing: v.Missing}
}

func fromService(svc catalog.Service) ServiceResponse {
	return ServiceResponse{
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Description:     svc.Description,
	}
}
