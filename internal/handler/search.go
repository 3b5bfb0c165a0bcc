package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kogoapp/kogo-server/internal/models"
	"github.com/kogoapp/kogo-server/internal/naver"
)

type SearchHandler struct {
	client *naver.Client
}

func NewSearchHandler(client *naver.Client) *SearchHandler {
	return &SearchHandler{client: client}
}

// SearchLocal handles GET /api/search/local?query=. A blank query is not an
// error: it answers an empty item list without calling the upstream.
func (h *SearchHandler) SearchLocal(c echo.Context) error {
	query := c.QueryParam("query")
	if strings.TrimSpace(query) == "" {
		return c.JSON(http.StatusOK, models.SearchResponse{Items: []models.LocalSearchItem{}})
	}

	items, err := h.client.SearchLocal(c.Request().Context(), query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.SearchResponse{Items: items})
}
