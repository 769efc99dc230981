package portfoliodelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/fx-portfolio/internal/domain"
	"github.com/go-petr/fx-portfolio/pkg/currencypkg"
	"github.com/go-petr/fx-portfolio/pkg/randompkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
			panic(err)
		}
	}

	os.Exit(m.Run())
}

func newTestServer(service Service, users UserDirectory) *gin.Engine {
	handler := NewHandler(service, users)

	server := gin.New()
	server.GET("/api/portfolio/:userId", handler.GetPortfolio)
	server.GET("/api/currency-rates", handler.AllRates)
	server.GET("/api/currency-rates/:code", handler.GetRate)
	server.POST("/api/portfolio/trades", handler.ExecuteTrade)
	server.GET("/api/portfolio/trades/:userId", handler.GetAllTrades)
	server.GET("/api/users", handler.GetUsers)
	server.GET("/api/users/:userId", handler.GetUser)

	return server
}

// eqTradeMatcher compares trades ignoring the request timestamp set by the
// handler.
type eqTradeMatcher struct {
	want domain.Trade
}

func (e eqTradeMatcher) Matches(x interface{}) bool {
	trade, ok := x.(domain.Trade)
	if !ok {
		return false
	}

	return trade.UserID == e.want.UserID &&
		trade.ToCurrency == e.want.ToCurrency &&
		trade.Status == e.want.Status &&
		trade.USDAmount.Equal(e.want.USDAmount) &&
		trade.AppliedRate.Equal(e.want.AppliedRate) &&
		!trade.RequestedAt.IsZero()
}

func (e eqTradeMatcher) String() string {
	return fmt.Sprintf("matches trade %+v up to the request timestamp", e.want)
}

func TestExecuteTrade(t *testing.T) {
	userID := randompkg.Email()
	rate := domain.CurrencyRate{
		CurrencyCode: currencypkg.EUR,
		Rate:         decimal.RequireFromString("0.85"),
		ComputedAt:   time.Now(),
	}

	testCases := []struct {
		name           string
		requestBody    gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			requestBody: gin.H{
				"user_id":     userID,
				"usd_amount":  "100",
				"to_currency": currencypkg.EUR,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					GetCurrentRate(gomock.Any(), gomock.Eq(currencypkg.EUR)).
					Times(1).
					Return(rate, nil)
				service.EXPECT().
					ExecuteTrade(gomock.Any(), eqTradeMatcher{domain.Trade{
						UserID:      userID,
						USDAmount:   decimal.RequireFromString("100"),
						ToCurrency:  currencypkg.EUR,
						AppliedRate: decimal.RequireFromString("0.85"),
						Status:      domain.StatusCreated,
					}}).
					Times(1).
					Return(nil)
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name: "Unsupported currency",
			requestBody: gin.H{
				"user_id":     userID,
				"usd_amount":  "100",
				"to_currency": "XYZ",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().GetCurrentRate(gomock.Any(), gomock.Any()).Times(0)
				service.EXPECT().ExecuteTrade(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "Negative amount",
			requestBody: gin.H{
				"user_id":     userID,
				"usd_amount":  "-5",
				"to_currency": currencypkg.EUR,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().GetCurrentRate(gomock.Any(), gomock.Any()).Times(0)
				service.EXPECT().ExecuteTrade(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "Missing user",
			requestBody: gin.H{
				"usd_amount":  "100",
				"to_currency": currencypkg.EUR,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().GetCurrentRate(gomock.Any(), gomock.Any()).Times(0)
				service.EXPECT().ExecuteTrade(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(service, NewMockUserDirectory(ctrl))

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/portfolio/trades", bytes.NewReader(body))
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestGetRate(t *testing.T) {
	testCases := []struct {
		name           string
		currency       string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name:     "OK",
			currency: currencypkg.JPY,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					GetCurrentRate(gomock.Any(), gomock.Eq(currencypkg.JPY)).
					Times(1).
					Return(domain.CurrencyRate{
						CurrencyCode: currencypkg.JPY,
						Rate:         decimal.RequireFromString("149.25"),
					}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:     "Unsupported currency",
			currency: "XYZ",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					GetCurrentRate(gomock.Any(), gomock.Eq("XYZ")).
					Times(1).
					Return(domain.CurrencyRate{}, domain.ErrUnsupportedCurrency)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(service, NewMockUserDirectory(ctrl))

			req := httptest.NewRequest(http.MethodGet, "/api/currency-rates/"+tc.currency, nil)
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestGetPortfolio(t *testing.T) {
	userID := "john.doe@example.com"
	entries := []domain.PortfolioEntry{
		{ID: 2, Owner: userID, Currency: currencypkg.EUR, Balance: decimal.RequireFromString("85.0")},
	}

	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	service.EXPECT().GetPortfolio(gomock.Any(), gomock.Eq(userID)).Times(1).Return(entries)

	server := newTestServer(service, NewMockUserDirectory(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/"+userID, nil)
	recorder := httptest.NewRecorder()

	server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var res portfolioResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	require.Len(t, res.Data.Entries, 1)
	require.Equal(t, currencypkg.EUR, res.Data.Entries[0].Currency)
}

func TestGetUser(t *testing.T) {
	email := "john.doe@example.com"
	user := domain.NewUser(1, "John", "Doe", email, "4532123456781234", "12/26", "VISA")

	testCases := []struct {
		name           string
		userID         string
		buildStubs     func(users *MockUserDirectory)
		wantStatusCode int
	}{
		{
			name:   "OK",
			userID: email,
			buildStubs: func(users *MockUserDirectory) {
				users.EXPECT().User(gomock.Eq(email)).Times(1).Return(user, true)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "Unknown user",
			userID: "nobody@example.com",
			buildStubs: func(users *MockUserDirectory) {
				users.EXPECT().User(gomock.Eq("nobody@example.com")).Times(1).Return(domain.User{}, false)
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := NewMockUserDirectory(ctrl)
			tc.buildStubs(users)

			server := newTestServer(NewMockService(ctrl), users)

			req := httptest.NewRequest(http.MethodGet, "/api/users/"+tc.userID, nil)
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantStatusCode != http.StatusOK {
				return
			}

			var res userResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			require.Equal(t, email, res.Data.User.Email)
			require.Equal(t, "**** **** **** 1234", res.Data.User.CardNumber)
		})
	}
}
