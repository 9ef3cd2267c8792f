package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workforce_backend/internal/services"
	"workforce_backend/internal/services/dto"
	"workforce_backend/pkg/apperrors"
)

type EmployerHandler struct {
	*BaseHandler
	service services.EmployerService
}

func NewEmployerHandler(base *BaseHandler, service services.EmployerService) *EmployerHandler {
	return &EmployerHandler{BaseHandler: base, service: service}
}

func (h *EmployerHandler) List(c *gin.Context) {
	skip, limit := ParsePage(c)
	objs, err := h.service.FetchAll(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": objs})
}

func (h *EmployerHandler) Search(c *gin.Context) {
	parameter := c.Query("parameter")
	keyword := c.Query("keyword")
	if parameter == "" || keyword == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Query parameters 'parameter' and 'keyword' are required"))
		return
	}

	skip, limit := ParsePage(c)
	objs, err := h.service.Search(parameter, keyword, skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": objs})
}

func (h *EmployerHandler) Get(c *gin.Context) {
	obj, err := h.service.FetchOne(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

// Create - регистрация работодателя вместе с аккаунтом, эндпоинт публичный
func (h *EmployerHandler) Create(c *gin.Context) {
	var req dto.EmployerCreateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	obj, err := h.service.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, obj)
}

func (h *EmployerHandler) Update(c *gin.Context) {
	var req dto.EmployerUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	obj, err := h.service.Update(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *EmployerHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
