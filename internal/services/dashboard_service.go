package services

import (
	"context"

	"artbook_backend/internal/models"
	"artbook_backend/internal/repositories"
	"artbook_backend/internal/services/dto"
	"artbook_backend/pkg/apperrors"
)

type DashboardService interface {
	ListLeads(ctx context.Context, status string) (*dto.LeadListResponse, error)
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	catalog repositories.CatalogRepository
}

func NewDashboardService(catalog repositories.CatalogRepository) DashboardService {
	return &dashboardService{catalog: catalog}
}

// ListLeads returns every lead for "all" or an empty status, otherwise the
// leads with exactly that status.
func (s *dashboardService) ListLeads(ctx context.Context, status string) (*dto.LeadListResponse, error) {
	if status == "" {
		status = dto.StatusAll
	}
	if status != dto.StatusAll && !models.LeadStatus(status).IsValid() {
		return nil, apperrors.ValidationError(map[string]string{
			"status": "Must be one of: all, pending, confirmed, declined",
		})
	}

	leads, err := s.catalog.ListBookingLeads(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]models.BookingLead, 0, len(leads))
	for _, lead := range leads {
		if status == dto.StatusAll || lead.Status == models.LeadStatus(status) {
			out = append(out, lead)
		}
	}

	return &dto.LeadListResponse{
		Leads:  out,
		Total:  len(out),
		Status: status,
	}, nil
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	leads, err := s.catalog.ListBookingLeads(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.DashboardStats{TotalLeads: len(leads)}
	for _, lead := range leads {
		switch lead.Status {
		case models.LeadStatusPending:
			stats.PendingLeads++
		case models.LeadStatusConfirmed:
			stats.ConfirmedBookings++
			stats.TotalRevenue += lead.Budget
		}
	}
	return stats, nil
}
