package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deepakk/fieldcare/internal/http/middleware"
	"github.com/deepakk/fieldcare/internal/model"
	"github.com/deepakk/fieldcare/internal/service"
)

type Handler struct {
	amc     *service.AMCService
	payroll *service.PayrollService
	log     zerolog.Logger
}

func NewHandler(amc *service.AMCService, payroll *service.PayrollService, log zerolog.Logger) *Handler {
	return &Handler{amc: amc, payroll: payroll, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/amc/reminders", h.amcReminders)
	protected.POST("/amc/deactivation-sweep", h.amcDeactivationSweep)
	protected.GET("/amc/contracts/:id", h.amcStatus)
	protected.POST("/amc/contracts/:id/complete", h.amcCompleteService)
	protected.POST("/amc/contracts/:id/renew", h.amcRenew)

	protected.POST("/attendance/check-in", h.attendanceCheckIn)
	protected.POST("/attendance/check-out", h.attendanceCheckOut)
	protected.GET("/attendance/history/:technician_id/:month", h.attendanceMonth)

	protected.PUT("/payroll/:technician_id/salary", h.setSalary)
	protected.GET("/payroll/:technician_id/history", h.salaryHistory)
	protected.GET("/payroll/:technician_id/statement/:month", h.monthlyStatement)
	protected.GET("/payroll/:technician_id/statement/:month/export", h.exportStatement)
	protected.GET("/payroll/:technician_id/statement/:month/payslip", h.payslip)
}

type completeServiceRequest struct {
	CompletionDate string  `json:"completion_date" binding:"required"`
	TechnicianID   *string `json:"technician_id"`
}

func (h *Handler) amcCompleteService(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	var req completeServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completionDate, err := parseDate(req.CompletionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid completion_date"})
		return
	}

	var technicianID *uuid.UUID
	if req.TechnicianID != nil {
		parsed, err := uuid.Parse(strings.TrimSpace(*req.TechnicianID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid technician_id"})
			return
		}
		technicianID = &parsed
	}

	result, err := h.amc.CompleteService(c.Request.Context(), service.CompleteServiceInput{
		ContractID:     contractID,
		CompletionDate: completionDate,
		TechnicianID:   technicianID,
		Principal:      principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contract": result.Contract,
		"early":    result.Early,
		"warnings": result.Warnings,
	})
}

type renewRequest struct {
	StartDate      string  `json:"start_date" binding:"required"`
	DurationMonths int     `json:"duration_months"`
	Amount         float64 `json:"amount" binding:"required"`
	PaidAmount     float64 `json:"paid_amount"`
}

func (h *Handler) amcRenew(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	var req renewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}

	contract, err := h.amc.Renew(c.Request.Context(), service.RenewInput{
		ContractID:     contractID,
		StartDate:      startDate,
		DurationMonths: req.DurationMonths,
		Amount:         req.Amount,
		PaidAmount:     req.PaidAmount,
		Principal:      principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contract)
}

func (h *Handler) amcReminders(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	today, err := optionalDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	reminders, err := h.amc.Reminders(c.Request.Context(), today)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

func (h *Handler) amcDeactivationSweep(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	if !principal.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}

	today, err := optionalDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	count, err := h.amc.DeactivationSweep(c.Request.Context(), today)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deactivated": count})
}

func (h *Handler) amcStatus(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	today, err := optionalDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	status, err := h.amc.ContractStatus(c.Request.Context(), contractID, today)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

type checkRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
}

func (h *Handler) attendanceCheckIn(c *gin.Context) {
	h.handleCheck(c, h.payroll.CheckIn)
}

func (h *Handler) attendanceCheckOut(c *gin.Context) {
	h.handleCheck(c, h.payroll.CheckOut)
}

func (h *Handler) handleCheck(c *gin.Context, action func(ctx context.Context, input service.CheckInput) (*model.AttendanceRecord, error)) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	technicianID, err := uuid.Parse(strings.TrimSpace(req.TechnicianID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid technician_id"})
		return
	}

	day, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	record, err := action(c.Request.Context(), service.CheckInput{
		TechnicianID: technicianID,
		Day:          day,
		Clock:        strings.TrimSpace(req.Time),
		Principal:    principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) attendanceMonth(c *gin.Context) {
	principal, technicianID, ok := h.technicianParams(c)
	if !ok {
		return
	}

	stats, err := h.payroll.MonthlyAttendance(c.Request.Context(), technicianID, c.Param("month"), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

type setSalaryRequest struct {
	MonthlySalary      float64 `json:"monthly_salary" binding:"required"`
	OvertimeRate       float64 `json:"overtime_rate"`
	ExpectedDailyHours float64 `json:"expected_daily_hours"`
}

func (h *Handler) setSalary(c *gin.Context) {
	principal, technicianID, ok := h.technicianParams(c)
	if !ok {
		return
	}

	var req setSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	structure, err := h.payroll.SetSalary(c.Request.Context(), service.SetSalaryInput{
		TechnicianID:       technicianID,
		MonthlySalary:      req.MonthlySalary,
		OvertimeRate:       req.OvertimeRate,
		ExpectedDailyHours: req.ExpectedDailyHours,
		Principal:          principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, structure)
}

func (h *Handler) monthlyStatement(c *gin.Context) {
	principal, technicianID, ok := h.technicianParams(c)
	if !ok {
		return
	}

	statement, err := h.payroll.MonthlyStatement(c.Request.Context(), technicianID, c.Param("month"), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, statement)
}

func (h *Handler) salaryHistory(c *gin.Context) {
	principal, technicianID, ok := h.technicianParams(c)
	if !ok {
		return
	}

	months := 0
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid months"})
			return
		}
		months = parsed
	}

	statements, err := h.payroll.SalaryHistory(c.Request.Context(), technicianID, months, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"statements": statements})
}

func (h *Handler) exportStatement(c *gin.Context) {
	principal, technicianID, ok := h.technicianParams(c)
	if !ok {
		return
	}

	result, err := h.payroll.ExportStatement(c.Request.Context(), technicianID, c.Param("month"), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

func (h *Handler) payslip(c *gin.Context) {
	principal, technicianID, ok := h.technicianParams(c)
	if !ok {
		return
	}

	result, err := h.payroll.Payslip(c.Request.Context(), technicianID, c.Param("month"), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) technicianParams(c *gin.Context) (model.Principal, uuid.UUID, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return model.Principal{}, uuid.Nil, false
	}

	technicianID, err := uuid.Parse(c.Param("technician_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid technician_id"})
		return model.Principal{}, uuid.Nil, false
	}
	return principal, technicianID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func optionalDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Now().UTC(), nil
	}
	return parseDate(raw)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
