package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"excursion-booking/internal/service"
)

const featuredCount = 3

type ExcursionHandler struct {
	catalogService service.CatalogService
}

func NewExcursionHandler(catalogService service.CatalogService) *ExcursionHandler {
	return &ExcursionHandler{catalogService: catalogService}
}

// Featured serves the home page selection.
func (h *ExcursionHandler) Featured(c *gin.Context) {
	featured, err := h.catalogService.Featured(c.Request.Context(), featuredCount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: featured})
}

func (h *ExcursionHandler) List(c *gin.Context) {
	var filter service.CatalogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	page, err := h.catalogService.Search(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: page})
}

func (h *ExcursionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	excursion, err := h.catalogService.GetExcursion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: excursion})
}
