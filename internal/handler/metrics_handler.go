package handler

import (
	"net/http"

	"crm/internal/report"
	"crm/internal/repository"

	"github.com/gin-gonic/gin"
)

// MetricsHandler serves the dashboard and report aggregates.
type MetricsHandler struct {
	deals      repository.DealRepositoryInterface
	contacts   repository.ContactRepositoryInterface
	activities repository.ActivityRepositoryInterface
	proposals  repository.ProposalRepositoryInterface
}

func NewMetricsHandler(
	deals repository.DealRepositoryInterface,
	contacts repository.ContactRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
	proposals repository.ProposalRepositoryInterface,
) *MetricsHandler {
	return &MetricsHandler{deals: deals, contacts: contacts, activities: activities, proposals: proposals}
}

// Dashboard godoc
// @Summary      Pipeline dashboard
// @Tags         metrics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} report.Dashboard
// @Router       /dashboard [get]
func (h *MetricsHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	deals, err := h.deals.List(ctx)
	if err != nil {
		serverError(c, err, "Failed to retrieve deals")
		return
	}
	contacts, err := h.contacts.List(ctx, "")
	if err != nil {
		serverError(c, err, "Failed to retrieve contacts")
		return
	}
	activities, err := h.activities.List(ctx)
	if err != nil {
		serverError(c, err, "Failed to retrieve activities")
		return
	}
	proposals, err := h.proposals.List(ctx)
	if err != nil {
		serverError(c, err, "Failed to retrieve proposals")
		return
	}

	c.JSON(http.StatusOK, report.BuildDashboard(report.Inputs{
		Deals:      deals,
		Contacts:   contacts,
		Activities: activities,
		Proposals:  proposals,
	}))
}

// Reports godoc
// @Summary      Stage distribution and monthly values
// @Tags         metrics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} report.Report
// @Router       /reports [get]
func (h *MetricsHandler) Reports(c *gin.Context) {
	deals, err := h.deals.List(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to retrieve deals")
		return
	}
	c.JSON(http.StatusOK, report.BuildReport(deals))
}
