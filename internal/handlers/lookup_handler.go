package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workforce_backend/internal/services"
	"workforce_backend/internal/services/dto"
	"workforce_backend/pkg/apperrors"
)

// LookupHandler - один обработчик на все справочники с уникальным именем
type LookupHandler[T any] struct {
	*BaseHandler
	service *services.LookupService[T]
}

func NewLookupHandler[T any](base *BaseHandler, service *services.LookupService[T]) *LookupHandler[T] {
	return &LookupHandler[T]{BaseHandler: base, service: service}
}

func (h *LookupHandler[T]) List(c *gin.Context) {
	skip, limit := ParsePage(c)
	objs, err := h.service.FetchAll(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": objs})
}

// Search - GET .../search?parameter=<колонка>&keyword=<подстрока>.
// Пустой результат - 200 с пустым списком, не 404.
func (h *LookupHandler[T]) Search(c *gin.Context) {
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

func (h *LookupHandler[T]) Get(c *gin.Context) {
	obj, err := h.service.FetchOne(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *LookupHandler[T]) Create(c *gin.Context) {
	var req dto.LookupCreateRequest
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

func (h *LookupHandler[T]) Update(c *gin.Context) {
	var req dto.LookupUpdateRequest
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

func (h *LookupHandler[T]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
