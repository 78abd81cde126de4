//go:build e2e

package cart_test

import (
	"net/http"
	"testing"
	"time"

	"storefront-cart/internal/handler/dto/request"
	"storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/jwt"
	"storefront-cart/internal/pkg/userkey"
	"storefront-cart/internal/usecase/shared"
	"storefront-cart/tests/common/httptest"
	"storefront-cart/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL     = "/api/cart"
	itemsURL    = "/api/cart/items"
	checkoutURL = "/api/cart/checkout"
)

type CartSuite struct {
	e2e.SharedSuite
}

func TestCartSuite(t *testing.T) {
	suite.Run(t, new(CartSuite))
}

// seeds a product and returns its snapshot
func (s *CartSuite) seedProduct(name string, price float64, stock int) shared.ProductSnapshot {
	p := shared.ProductSnapshot{
		ID:        uuid.New(),
		Name:      name,
		UnitPrice: price,
		Stock:     stock,
	}
	s.Catalog.Seed(p)
	return p
}

// issues a fresh guest identity by hitting the cart endpoint once
func (s *CartSuite) newGuestCookie() *http.Cookie {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := httptest.ExtractCookie(w, "guest_id")
	require.NotNil(t, cookie, "first anonymous request should mint a guest identity")
	return cookie
}

func (s *CartSuite) getCart(cookie *http.Cookie) response.CartResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, cookie)
	var body response.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	return body
}

func (s *CartSuite) TestGuestCartFlow() {
	t := s.T()
	mug := s.seedProduct("Enamel Mug", 10, 5)
	cookie := s.newGuestCookie()

	s.Run("add caps the quantity at live stock", func() {
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL,
			request.AddCartItemRequest{ProductID: mug.ID, Quantity: 3}, cookie)
		var body response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, 3, body.TotalQuantity)

		// A second add would push past the 5 in stock
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL,
			request.AddCartItemRequest{ProductID: mug.ID, Quantity: 4}, cookie)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, 5, body.TotalQuantity)
		require.Len(t, body.Items, 1)
	})

	s.Run("cart survives across requests", func() {
		body := s.getCart(cookie)
		require.Equal(t, 5, body.TotalQuantity)
		require.InDelta(t, 50, body.Total, 1e-9)
	})

	s.Run("update replaces the quantity", func() {
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, itemsURL+"/"+mug.ID.String(),
			request.UpdateCartItemRequest{Quantity: 2}, cookie)
		var body response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, 2, body.TotalQuantity)
	})

	s.Run("remove empties the cart and the record", func() {
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, itemsURL+"/"+mug.ID.String(), nil, cookie)
		var body response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Empty(t, body.Items)

		body = s.getCart(cookie)
		require.Empty(t, body.Items)
	})
}

func (s *CartSuite) TestAuthenticatedCartIsKeyedByTokenSubject() {
	t := s.T()
	mug := s.seedProduct("Desk Mug", 10, 5)

	// A real signed token, minted with the same secret the app validates
	// against.
	userID := uuid.New()
	issuer := jwt.NewService(config.NewTestConfig().JWT.Secret, time.Hour)
	token, err := issuer.GenerateToken(userID)
	require.NoError(t, err)
	authCookie := &http.Cookie{Name: "access_token", Value: token}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL,
		request.AddCartItemRequest{ProductID: mug.ID, Quantity: 2}, authCookie)
	var body response.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	require.Equal(t, 2, body.TotalQuantity)
	require.Nil(t, httptest.ExtractCookie(w, "guest_id"),
		"authenticated requests must not mint a guest identity")

	// The user's cart survives under the user key and a guest never sees it.
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, authCookie)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	require.Equal(t, 2, body.TotalQuantity)
	require.Empty(t, s.getCart(s.newGuestCookie()).Items)

	// Checkout lands on the user key, not a guest key.
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, authCookie)
	var checkout response.CheckoutResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &checkout)

	found := false
	for _, sub := range s.Orders.Submissions() {
		if sub.UserKey == userkey.ForUser(userID) {
			found = true
		}
	}
	require.True(t, found, "submission should carry the token subject's key")
}

func (s *CartSuite) TestCartsAreScopedPerIdentity() {
	t := s.T()
	pin := s.seedProduct("Pin Badge", 5.5, 10)

	first := s.newGuestCookie()
	second := s.newGuestCookie()
	require.NotEqual(t, first.Value, second.Value)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL,
		request.AddCartItemRequest{ProductID: pin.ID, Quantity: 1}, first)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

	require.Len(t, s.getCart(first).Items, 1)
	require.Empty(t, s.getCart(second).Items, "another shopper's cart must stay empty")
}

func (s *CartSuite) TestAddUnknownProduct() {
	t := s.T()
	cookie := s.newGuestCookie()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL,
		request.AddCartItemRequest{ProductID: uuid.New(), Quantity: 1}, cookie)
	httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Product not found")
}

func (s *CartSuite) TestOutOfStockProduct() {
	t := s.T()
	soldOut := s.seedProduct("Sold Out Poster", 20, 0)
	cookie := s.newGuestCookie()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL,
		request.AddCartItemRequest{ProductID: soldOut.ID, Quantity: 2}, cookie)
	var body response.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	require.Len(t, body.Items, 1, "the line is kept so the shopper sees what they tried to add")
	require.Equal(t, 0, body.Items[0].Quantity)
	require.Zero(t, body.Total)
}

func (s *CartSuite) TestCheckoutFlow() {
	t := s.T()
	mug := s.seedProduct("Camp Mug", 10, 5)
	pin := s.seedProduct("Camp Pin", 5.5, 5)
	cookie := s.newGuestCookie()

	for _, add := range []request.AddCartItemRequest{
		{ProductID: mug.ID, Quantity: 2},
		{ProductID: pin.ID, Quantity: 1},
	} {
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, add, cookie)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, cookie)
	var checkout response.CheckoutResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &checkout)
	require.NotEqual(t, uuid.Nil, checkout.OrderID)
	require.InDelta(t, 25.5, checkout.Total, 1e-9)

	guestID, err := uuid.Parse(cookie.Value)
	require.NoError(t, err)
	var submitted *shared.OrderSubmission
	for _, sub := range s.Orders.Submissions() {
		if sub.UserKey == userkey.ForGuest(guestID) {
			submitted = &sub
			break
		}
	}
	require.NotNil(t, submitted, "checkout should hand the cart to the order sink")
	require.Len(t, submitted.Lines, 2)
	require.InDelta(t, 25.5, submitted.Total, 1e-9)

	require.Empty(t, s.getCart(cookie).Items, "checkout clears the cart")
}

func (s *CartSuite) TestCheckoutEmptyCart() {
	t := s.T()
	cookie := s.newGuestCookie()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, nil, cookie)
	httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Cart is empty")
}
