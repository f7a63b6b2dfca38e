package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/refdata"
)

// CatalogHandler serves the immutable service and staff reference data.
type CatalogHandler struct {
	catalog refdata.Source
}

func NewCatalogHandler(catalog refdata.Source) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.catalog.Services())
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, ok := h.catalog.Service(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) ListStaff(c *gin.Context) {
	httpresp.List(c, h.catalog.Staff())
}

func (h *CatalogHandler) GetStaffMember(c *gin.Context) {
	member, ok := h.catalog.StaffMember(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}
	httpresp.OK(c, member)
}
