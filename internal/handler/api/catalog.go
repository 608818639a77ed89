package api

import (
	"net/http"

	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/handler/httperr"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List services
// @Description Return the service catalog, optionally filtered by name
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param name query []string false "Service names to filter by" collectionFormat(multi)
// @Success 200 {object} response.ServicesResponse
// @Failure 401 {object} map[string]string
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	view, err := h.catalogQueries.ListServices(c.Request.Context(), c.QueryArray("name"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServicesView(view))
}

// @Summary Read business info
// @Description Return the requested business-info fields and the missing keys
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param keys query []string true "Field names to read" collectionFormat(multi)
// @Success 200 {object} response.BusinessResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /business [get]
func (h *CatalogHandler) GetBusinessInfo(c *gin.Context) {
	keys := c.QueryArray("keys")
	if len(keys) == 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing keys parameter"), "At least one key is required", nil)
		return
	}

	view, err := h.catalogQueries.BusinessInfo(c.Request.Context(), keys)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBusinessView(view))
}
