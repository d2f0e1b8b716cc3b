//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"lounge-pos/internal/handler/api"
	reqdto "lounge-pos/internal/handler/dto/request"
	resdto "lounge-pos/internal/handler/dto/response"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/pkg/money"
	"lounge-pos/internal/usecase/commands"
	"lounge-pos/internal/usecase/queries"
	"lounge-pos/tests/common/httptest"
	commandsmock "lounge-pos/tests/mock/commands"
	queriesmock "lounge-pos/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	h := api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/drinks", h.List)
	s.router.POST("/drinks", h.Create)
	s.router.DELETE("/drinks/:id", h.Delete)
	s.router.POST("/drinks/:id/stock", h.AdjustStock)
	s.router.PUT("/drinks/:id/price", h.UpdatePrice)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func drinkView(name string, price string, stock int) *queries.DrinkView {
	return &queries.DrinkView{ID: uuid.New(), Name: name, Price: money.MustParse(price), Stock: stock, LowStock: stock < 10}
}

func (s *CatalogHandlerTestSuite) TestList() {
	s.Run("success: passes filters through", func() {
		s.mockQueries.EXPECT().ListDrinks(gomock.Any(), queries.DrinkFilters{Search: "tea", LowStockOnly: true}).
			Return([]queries.DrinkView{*drinkView("Tea", "5", 3)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drinks?search=tea&lowStock=true", nil, "")

		var response []resdto.DrinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Tea", response[0].Name)
		s.Equal("5.00", response[0].Price)
		s.True(response[0].LowStock)
	})

	s.Run("success: empty catalog is an empty array", func() {
		s.mockQueries.EXPECT().ListDrinks(gomock.Any(), queries.DrinkFilters{}).Return([]queries.DrinkView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drinks", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 400 on a bad lowStock flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drinks?lowStock=maybe", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CatalogHandlerTestSuite) TestCreate() {
	s.Run("success: accepts numeric and string prices", func() {
		for _, body := range []map[string]any{
			{"name": "Sahlab", "price": 12.5, "stock": 20},
			{"name": "Sahlab", "price": "12.50", "stock": 20},
		} {
			s.mockCommands.EXPECT().CreateDrink(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req reqdto.CreateDrinkRequest) (*queries.DrinkView, error) {
					s.True(req.Price.Equal(decimal.RequireFromString("12.5")), "price %s", req.Price)
					return drinkView(req.Name, req.Price.String(), req.Stock), nil
				})

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drinks", body, "")

			var response resdto.DrinkResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
			s.Equal("12.50", response.Price)
			s.Equal(20, response.Stock)
		}
	})

	s.Run("error: 400 on binding failures", func() {
		for _, body := range []map[string]any{
			{"price": 5, "stock": 1},
			{"name": "Water", "price": 5, "stock": -1},
			{"name": "Water", "price": "five", "stock": 1},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drinks", body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 400 when the domain rejects the price", func() {
		s.mockCommands.EXPECT().CreateDrink(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("price"), commands.ErrInvalidDrink))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drinks", map[string]any{"name": "Water", "price": 0, "stock": 1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid drink")
	})
}

func (s *CatalogHandlerTestSuite) TestStockAndPrice() {
	id := uuid.New()

	s.Run("success: adjust stock", func() {
		s.mockCommands.EXPECT().AdjustStock(gomock.Any(), id, -3).Return(drinkView("Pepsi", "10", 7), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drinks/"+id.String()+"/stock", reqdto.AdjustStockRequest{Delta: -3}, "")

		var response resdto.DrinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(7, response.Stock)
		s.True(response.LowStock)
	})

	s.Run("success: update price", func() {
		s.mockCommands.EXPECT().UpdatePrice(gomock.Any(), id, gomock.Any()).Return(drinkView("Pepsi", "11", 50), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/drinks/"+id.String()+"/price", map[string]any{"price": "11"}, "")

		var response resdto.DrinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("11.00", response.Price)
	})

	s.Run("error: 404 for unknown drink", func() {
		s.mockCommands.EXPECT().AdjustStock(gomock.Any(), id, 1).Return(nil, errs.Mark(errors.New("missing"), commands.ErrDrinkNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drinks/"+id.String()+"/stock", reqdto.AdjustStockRequest{Delta: 1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Drink not found")
	})

	s.Run("error: 500 when the view cannot be mapped", func() {
		s.mockCommands.EXPECT().AdjustStock(gomock.Any(), id, 2).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drinks/"+id.String()+"/stock", reqdto.AdjustStockRequest{Delta: 2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CatalogHandlerTestSuite) TestDelete() {
	id := uuid.New()
	s.mockCommands.EXPECT().RemoveDrink(gomock.Any(), id).Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/drinks/"+id.String(), nil, "")
	s.Equal(http.StatusNoContent, rec.Code)
}
