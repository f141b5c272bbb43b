package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	items usecase.ItemUsecase
}

func NewItemHandler(items usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{items: items}
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity (owner)"
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.items.Create(c.Request.Context(), userID, usecase.CreateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Partial update; owner only
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity (owner)"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.items.Update(c.Request.Context(), userID, itemID, usecase.UpdateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Comments for everyone; last/next booking enrichment for the owner only
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity"
// @Param itemId path int true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	view, err := h.items.Get(c.Request.Context(), userID, itemID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List caller's items
// @Description Items owned by the caller, enriched with last/next bookings and comments
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity (owner)"
// @Param from query int false "Result offset (block-aligned)" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListForOwner(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}

	views, err := h.items.ListForOwner(c.Request.Context(), userID, page)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Search items
// @Description Available items matching the text; blank text returns nothing
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity"
// @Param text query string true "Search text"
// @Param from query int false "Result offset (block-aligned)" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	page, ok := queryPage(c)
	if !ok {
		return
	}

	views, err := h.items.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Delete item
// @Tags items
// @Param X-Sharer-User-Id header int true "Caller identity (owner)"
// @Param itemId path int true "Item ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.items.Delete(c.Request.Context(), userID, itemID); err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Comment on item
// @Description Requires an APPROVED booking of the item that has already ended
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) CreateComment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.items.CreateComment(c.Request.Context(), userID, itemID, req.Text)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
