package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
)

func (h *Handler) listItems(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	items, err := h.svc.Catalog.List(c.Request.Context(), page)
	if err != nil {
		h.internalError(c, "catalog.List", err)
		return
	}

	respond(c, http.StatusOK, "", "", "", toItemPageDTO(items))
}

func (h *Handler) getItem(c *gin.Context) {
	item, err := h.svc.Catalog.Get(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, domain.ErrNotFound) {
		respond(c, http.StatusNotFound, levelError, "This item does not exist.", "/", nil)
		return
	}
	if err != nil {
		h.internalError(c, "catalog.Get", err)
		return
	}

	respond(c, http.StatusOK, "", "", "", toItemDTO(item))
}
