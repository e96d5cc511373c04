package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/class-coins-api/internal/service"
	appErrors "github.com/noah-isme/class-coins-api/pkg/errors"
	"github.com/noah-isme/class-coins-api/pkg/response"
)

// CoinsDeltaRequest carries the signed amount to add to a balance. The
// pointer distinguishes a missing amount from an explicit zero;
// non-integer JSON fails binding and becomes a validation error.
type CoinsDeltaRequest struct {
	Amount *int64 `json:"amount" binding:"required"`
}

// StudentHandler exposes the student endpoints.
type StudentHandler struct {
	service *service.StudentService
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(svc *service.StudentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// ListByClass returns the students of a class sorted by coins descending.
func (h *StudentHandler) ListByClass(c *gin.Context) {
	students, err := h.service.ListByClass(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Create registers a student from a {"name", "classId"} payload.
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "name and classId are required"))
		return
	}

	student, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Delete removes a single student.
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

// ExportByClass streams the class standings as a CSV download.
func (h *StudentHandler) ExportByClass(c *gin.Context) {
	out, err := h.service.ExportByClass(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="standings.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}

// ApplyCoinsDelta adjusts a student's coin balance by a signed amount.
func (h *StudentHandler) ApplyCoinsDelta(c *gin.Context) {
	var req CoinsDeltaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "amount must be a number"))
		return
	}

	student, err := h.service.ApplyCoinsDelta(c.Request.Context(), c.Param("id"), *req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}
