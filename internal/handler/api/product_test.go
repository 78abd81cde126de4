//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"storefront-cart/internal/handler/api"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/queries"
	"storefront-cart/tests/common/httptest"
	queriesmock "storefront-cart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockProductQueries
	handler     *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockQueries)

	s.router.GET("/products", s.handler.List)
	s.router.GET("/products/:id", s.handler.Get)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestList() {
	s.Run("success: returns the listed products", func() {
		items := []*queries.ProductListItem{
			{ID: uuid.New(), Name: "Mug", UnitPrice: 10, Stock: 5},
			{ID: uuid.New(), Name: "Pin", UnitPrice: 5.5, Stock: 0},
		}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ProductFilters{}, queries.DefaultProductLimit, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil)

		var body struct {
			Products []resdto.ProductListItemResponse `json:"products"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Products, 2)
		s.Equal("Mug", body.Products[0].Name)
	})

	s.Run("success: filters and pagination pass through", func() {
		categoryID := uuid.New()
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.ProductFilters{CategoryID: &categoryID, InStock: true}, 10, 5).
			Return([]*queries.ProductListItem{}, nil).Times(1)

		url := "/products?category=" + categoryID.String() + "&in_stock=true&limit=10&offset=5"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed category id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?category=oops", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid category id")
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list products")
	})
}

func (s *ProductHandlerTestSuite) TestGet() {
	productID := uuid.New()
	url := "/products/" + productID.String()

	s.Run("success: returns the product detail", func() {
		view := &queries.ProductView{
			ID:        productID,
			Name:      "Mug",
			UnitPrice: 10,
			Stock:     5,
			CreatedAt: time.Now().UTC(),
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), productID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(productID, body.ID)
		s.Equal(5, body.Stock)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/oops", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product id")
	})

	s.Run("error: 404 on unknown product", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), productID).
			Return(nil, queries.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}
