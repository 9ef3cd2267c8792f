package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workforce_backend/internal/services"
	"workforce_backend/internal/services/dto"
	"workforce_backend/pkg/apperrors"
)

type EmployeeHandler struct {
	*BaseHandler
	service services.EmployeeService
}

func NewEmployeeHandler(base *BaseHandler, service services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{BaseHandler: base, service: service}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	skip, limit := ParsePage(c)
	objs, err := h.service.FetchAll(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": objs})
}

func (h *EmployeeHandler) Search(c *gin.Context) {
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

func (h *EmployeeHandler) Get(c *gin.Context) {
	obj, err := h.service.FetchOne(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.EmployeeCreateRequest
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

func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.EmployeeUpdateRequest
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

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
