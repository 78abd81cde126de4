package api

import (
	"errors"
	"net/http"

	reqdto "storefront-cart/internal/handler/dto/request"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/handler/middleware"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/commands"
	"storefront-cart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Raised when a cart route is registered without IdentityMiddleware; a
// wiring bug, not a client error.
var errMissingCartKey = errs.New("cart key missing from request context")

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Get the current shopper's cart with totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 500 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userKey, ok := middleware.GetCartKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingCartKey, "Internal server error", nil)
		return
	}
	view, err := h.q.Get(c.Request.Context(), userKey)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add a product to the cart; the quantity is capped at the live stock
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Add item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userKey, ok := middleware.GetCartKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingCartKey, "Internal server error", nil)
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := h.cmds.AddItem(c.Request.Context(), userKey, req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, commands.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add item", nil)
		return
	}
	h.respondWithCart(c, userKey)
}

// @Summary Update cart item quantity
// @Description Replace the quantity of a cart line, clamped against the known stock
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "Update quantity request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userKey, ok := middleware.GetCartKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingCartKey, "Internal server error", nil)
		return
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	var req reqdto.UpdateCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateQuantity(c.Request.Context(), userKey, productID, req.Quantity); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update quantity", nil)
		return
	}
	h.respondWithCart(c, userKey)
}

// @Summary Remove cart item
// @Description Remove a product from the cart
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userKey, ok := middleware.GetCartKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingCartKey, "Internal server error", nil)
		return
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), userKey, productID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to remove item", nil)
		return
	}
	h.respondWithCart(c, userKey)
}

// @Summary Clear cart
// @Description Remove all items and the persisted cart record
// @Tags cart
// @Success 204 "No Content"
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userKey, ok := middleware.GetCartKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingCartKey, "Internal server error", nil)
		return
	}
	if err := h.cmds.Clear(c.Request.Context(), userKey); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to clear cart", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Checkout
// @Description Submit the cart as an order; the cart is cleared on success
// @Tags cart
// @Produce json
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userKey, ok := middleware.GetCartKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingCartKey, "Internal server error", nil)
		return
	}
	result, err := h.cmds.Checkout(c.Request.Context(), userKey)
	if err != nil {
		if errors.Is(err, commands.ErrEmptyCheckout) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

func (h *CartHandler) respondWithCart(c *gin.Context, userKey string) {
	view, err := h.q.Get(c.Request.Context(), userKey)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}
