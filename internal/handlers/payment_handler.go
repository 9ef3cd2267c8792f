package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workforce_backend/internal/services"
	"workforce_backend/internal/services/dto"
)

// PaymentHandler обслуживает платежные методы и историю выплат
type PaymentHandler struct {
	*BaseHandler
	service services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, service services.PaymentService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, service: service}
}

// --- Платежные методы ---

func (h *PaymentHandler) ListMethods(c *gin.Context) {
	skip, limit := ParsePage(c)
	objs, err := h.service.FetchMethods(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": objs})
}

func (h *PaymentHandler) GetMethod(c *gin.Context) {
	obj, err := h.service.FetchMethod(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *PaymentHandler) CreateMethod(c *gin.Context) {
	var req dto.PaymentMethodCreateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	obj, err := h.service.CreateMethod(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, obj)
}

func (h *PaymentHandler) UpdateMethod(c *gin.Context) {
	var req dto.PaymentMethodUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	obj, err := h.service.UpdateMethod(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *PaymentHandler) DeleteMethod(c *gin.Context) {
	if err := h.service.DeleteMethod(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- История выплат ---

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	skip, limit := ParsePage(c)
	objs, err := h.service.FetchPayments(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": objs})
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	obj, err := h.service.FetchPayment(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.PaymentCreateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	obj, err := h.service.CreatePayment(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, obj)
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	var req dto.PaymentUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	obj, err := h.service.UpdatePayment(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.service.DeletePayment(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
