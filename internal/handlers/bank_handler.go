package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workforce_backend/internal/services"
	"workforce_backend/internal/services/dto"
	"workforce_backend/pkg/apperrors"
)

type BankHandler struct {
	*BaseHandler
	service services.BankService
}

func NewBankHandler(base *BaseHandler, service services.BankService) *BankHandler {
	return &BankHandler{BaseHandler: base, service: service}
}

func (h *BankHandler) List(c *gin.Context) {
	skip, limit := ParsePage(c)
	objs, err := h.service.FetchAll(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": objs})
}

func (h *BankHandler) Search(c *gin.Context) {
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

func (h *BankHandler) Get(c *gin.Context) {
	obj, err := h.service.FetchOne(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *BankHandler) Create(c *gin.Context) {
	var req dto.BankCreateRequest
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

func (h *BankHandler) Update(c *gin.Context) {
	var req dto.BankUpdateRequest
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

func (h *BankHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
