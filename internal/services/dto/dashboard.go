package dto

import "artbook_backend/internal/models"

// StatusAll selects every lead.
const StatusAll = "all"

type LeadListRequest struct {
	Status string `form:"status" json:"status" validate:"is-lead-status"`
}

type LeadListResponse struct {
	Leads  []models.BookingLead `json:"leads"`
	Total  int                  `json:"total"`
	Status string               `json:"status"`
}

// DashboardStats - headline numbers of the manager dashboard. Revenue is
// the sum of confirmed lead budgets.
type DashboardStats struct {
	TotalLeads        int `json:"total_leads"`
	PendingLeads      int `json:"pending_leads"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	TotalRevenue      int `json:"total_revenue"`
}
