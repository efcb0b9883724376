package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"claimguard/internal/domain"
	"claimguard/internal/export"
	"claimguard/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
	tenantService service.TenantService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, tenantService service.TenantService) *ReportHandler {
	return &ReportHandler{reportService: reportService, tenantService: tenantService}
}

// parseReportFilters extracts common report filter parameters from query params.
func parseReportFilters(c *gin.Context) (domain.ReportFilters, error) {
	filters := domain.ReportFilters{
		Offset: 0,
		Limit:  50,
	}

	if fromStr := c.Query("from"); fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
		}
		filters.From = &t
	}
	if toStr := c.Query("to"); toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
		}
		filters.To = &t
	}

	if perilStr := c.Query("peril"); perilStr != "" {
		peril := domain.Peril(perilStr)
		if !domain.ValidPerils[peril] {
			return filters, fmt.Errorf("invalid 'peril': must be one of hurricane, flood, wind, fire, hail, other")
		}
		filters.Peril = peril
	}
	filters.Status = domain.ClaimStatus(c.Query("status"))

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'offset': must be an integer")
		}
		filters.Offset = offset
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'limit': must be an integer")
		}
		filters.Limit = limit
	}

	return filters, nil
}

// Register handles GET /api/v1/reports/claims
// @Summary      Claims register report
// @Description  Lists claims with property address, document counts, and average analysis confidence
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start incident date (YYYY-MM-DD)"
// @Param        to query string false "End incident date (YYYY-MM-DD)"
// @Param        peril query string false "Filter by peril"
// @Param        status query string false "Filter by claim status"
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(50)
// @Success      200 {object} Response{data=[]domain.ClaimRegisterRow,meta=PagMeta}
// @Failure      400 {object} ErrorResponseBody
// @Failure      401 {object} ErrorResponseBody
// @Security     BearerAuth
// @Router       /reports/claims [get]
func (h *ReportHandler) Register(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	rows, total, err := h.reportService.ClaimsRegister(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, rows, PagMeta{Total: total, Offset: filters.Offset, Limit: filters.Limit})
}

// ExportCSV handles GET /api/v1/reports/claims/export
// @Summary      Export claims register as CSV
// @Description  Streams the claims register as a CSV download (UTF-8 with BOM)
// @Tags         reports
// @Produce      text/csv
// @Param        from query string false "Start incident date (YYYY-MM-DD)"
// @Param        to query string false "End incident date (YYYY-MM-DD)"
// @Param        peril query string false "Filter by peril"
// @Param        status query string false "Filter by claim status"
// @Success      200 {file} file "CSV file"
// @Failure      400 {object} ErrorResponseBody
// @Failure      401 {object} ErrorResponseBody
// @Security     BearerAuth
// @Router       /reports/claims/export [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	// Exports are unpaginated
	filters.Offset = 0
	filters.Limit = 10000

	rows, _, err := h.reportService.ClaimsRegister(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(h.exportName(c, tenantID), "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRows(rows); err != nil {
		return
	}
	w.Flush()
}

// ExportXLSX handles GET /api/v1/reports/claims/export.xlsx
// @Summary      Export claims register as XLSX
// @Description  Streams the claims register as an Excel workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from query string false "Start incident date (YYYY-MM-DD)"
// @Param        to query string false "End incident date (YYYY-MM-DD)"
// @Param        peril query string false "Filter by peril"
// @Param        status query string false "Filter by claim status"
// @Success      200 {file} file "XLSX file"
// @Failure      400 {object} ErrorResponseBody
// @Failure      401 {object} ErrorResponseBody
// @Security     BearerAuth
// @Router       /reports/claims/export.xlsx [get]
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	filters.Offset = 0
	filters.Limit = 10000

	rows, _, err := h.reportService.ClaimsRegister(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(h.exportName(c, tenantID), "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := export.WriteXLSX(c.Writer, rows); err != nil {
		HandleError(c, err)
	}
}

// exportName resolves the tenant name for export filenames, falling back to
// a generic label when the lookup fails.
func (h *ReportHandler) exportName(c *gin.Context, tenantID uuid.UUID) string {
	if h.tenantService != nil {
		if tenant, err := h.tenantService.GetByID(c.Request.Context(), tenantID); err == nil {
			return tenant.Name + " claims"
		}
	}
	return "claims"
}

// ByStatus handles GET /api/v1/reports/claims-by-status
// @Summary      Claims by status
// @Description  Counts claims grouped by lifecycle status
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start incident date (YYYY-MM-DD)"
// @Param        to query string false "End incident date (YYYY-MM-DD)"
// @Param        peril query string false "Filter by peril"
// @Success      200 {object} Response{data=[]domain.StatusSummaryRow}
// @Failure      400 {object} ErrorResponseBody
// @Failure      401 {object} ErrorResponseBody
// @Security     BearerAuth
// @Router       /reports/claims-by-status [get]
func (h *ReportHandler) ByStatus(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	rows, err := h.reportService.ClaimsByStatus(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// ByPeril handles GET /api/v1/reports/claims-by-peril
// @Summary      Claims by peril
// @Description  Counts claims grouped by peril
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start incident date (YYYY-MM-DD)"
// @Param        to query string false "End incident date (YYYY-MM-DD)"
// @Param        status query string false "Filter by claim status"
// @Success      200 {object} Response{data=[]domain.PerilSummaryRow}
// @Failure      400 {object} ErrorResponseBody
// @Failure      401 {object} ErrorResponseBody
// @Security     BearerAuth
// @Router       /reports/claims-by-peril [get]
func (h *ReportHandler) ByPeril(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	rows, err := h.reportService.ClaimsByPeril(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// AnalysisOverview handles GET /api/v1/reports/analysis-overview
// @Summary      Analysis overview
// @Description  Document analysis outcome counts and average confidence for the tenant
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start incident date (YYYY-MM-DD)"
// @Param        to query string false "End incident date (YYYY-MM-DD)"
// @Param        peril query string false "Filter by peril"
// @Success      200 {object} Response{data=domain.AnalysisOverviewRow}
// @Failure      400 {object} ErrorResponseBody
// @Failure      401 {object} ErrorResponseBody
// @Security     BearerAuth
// @Router       /reports/analysis-overview [get]
func (h *ReportHandler) AnalysisOverview(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	row, err := h.reportService.AnalysisOverview(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, row)
}
