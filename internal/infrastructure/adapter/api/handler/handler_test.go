package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/csmqbusy/personal-finances/internal/domain/port/service"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/dto"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/handler"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/middleware"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/routes"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/logger"
	timeProvider "github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/time"
	mocks "github.com/csmqbusy/personal-finances/mocks/port/usecase"
)

const testUserID uint64 = 7

var now = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testAPI struct {
	router       *gin.Engine
	auth         *mocks.MockAuthUseCase
	categories   *mocks.MockCategoryUseCase
	transactions *mocks.MockTransactionUseCase
	reports      *mocks.MockReportUseCase
	goals        *mocks.MockGoalUseCase
}

func newTestAPI(t *testing.T, pingErr error) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &testAPI{
		router:       gin.New(),
		auth:         mocks.NewMockAuthUseCase(t),
		categories:   mocks.NewMockCategoryUseCase(t),
		transactions: mocks.NewMockTransactionUseCase(t),
		reports:      mocks.NewMockReportUseCase(t),
		goals:        mocks.NewMockGoalUseCase(t),
	}

	log := logger.NewNoopLogger()
	tp := timeProvider.NewFixedTimeProvider(now)

	var kinds []routes.KindHandlers
	for _, kind := range entity.Kinds {
		kinds = append(kinds, routes.KindHandlers{
			Path:         string(kind) + "s",
			Categories:   handler.NewCategoryHandler(kind, api.categories, log),
			Transactions: handler.NewTransactionHandler(kind, api.transactions, log),
			Summary:      handler.NewSummaryHandler(kind, api.transactions, api.reports, tp, log),
		})
	}

	routes.SetupMiddlewares(api.router, log, []string{"*"})
	routes.SetupRoutes(api.router, routes.Handlers{
		Auth:   handler.NewAuthHandler(api.auth, handler.CookieOptions{Name: "access_token"}, tp, log),
		Goals:  handler.NewGoalHandler(api.goals, log),
		Health: handler.NewHealthHandler(fakePinger{err: pingErr}, log),
		Kinds:  kinds,
	}, middleware.Auth(api.auth, "access_token", log))

	return api
}

// do sends an authenticated request
func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	a.auth.EXPECT().Authenticate(mock.Anything, "token").
		Return(&entity.User{ID: testUserID, Active: true}, nil).Maybe()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func ptr[T any](v T) *T { return &v }

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.NewValidationError("amount", "must be positive", errs.ErrInvalidAmount), http.StatusBadRequest},
		{errs.ErrMissingDisposition, http.StatusBadRequest},
		{errs.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("wrap: %w", errs.ErrGoalNotFound), http.StatusNotFound},
		{errs.ErrCategoryAlreadyExists, http.StatusConflict},
		{errs.ErrDefaultCategoryReadOnly, http.StatusConflict},
		{errs.ErrChartUnavailable, http.StatusServiceUnavailable},
		{errs.ErrExportUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, handler.StatusCode(tt.err))
		})
	}
}

func TestAuthentication(t *testing.T) {
	t.Run("missing token is rejected", func(t *testing.T) {
		api := newTestAPI(t, nil)

		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errs.CodeUnauthorized, decodeError(t, rec).Code)
	})

	t.Run("cookie token is accepted", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.auth.EXPECT().Authenticate(mock.Anything, "cookie-token").
			Return(&entity.User{ID: testUserID, Username: "alice", Active: true}, nil).Once()
		api.auth.EXPECT().GetProfile(mock.Anything, testUserID).
			Return(&entity.User{ID: testUserID, Username: "alice", Active: true}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var user dto.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("inactive user is rejected", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.auth.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, errs.ErrInactiveUser).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil)
		req.Header.Set("Authorization", "Bearer stale")
		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sign in sets the access cookie", func(t *testing.T) {
		api := newTestAPI(t, nil)
		token := service.AccessToken{Value: "signed", ExpiresAt: now.Add(time.Hour)}
		api.auth.EXPECT().SignIn(mock.Anything, "alice", "secret-password").
			Return(&entity.User{ID: testUserID}, token, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in",
			strings.NewReader(`{"username":"alice","password":"secret-password"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed", resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)

		cookie := rec.Result().Cookies()
		require.Len(t, cookie, 1)
		assert.Equal(t, "access_token", cookie[0].Name)
		assert.Equal(t, 3600, cookie[0].MaxAge)
		assert.True(t, cookie[0].HttpOnly)
	})

	t.Run("duplicate sign up is a conflict", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.auth.EXPECT().SignUp(mock.Anything, usecase.SignUpInput{
			Username: "alice", Email: "a@example.com", Password: "secret-password",
		}).Return(nil, errs.ErrUserAlreadyExists).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-up",
			strings.NewReader(`{"username":"alice","email":"a@example.com","password":"secret-password"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, errs.CodeUserAlreadyExists, decodeError(t, rec).Code)
	})
}

func TestTransactionHandler(t *testing.T) {
	t.Run("list passes filters, sort and page", func(t *testing.T) {
		api := newTestAPI(t, nil)
		desc := "lunch"
		api.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(in usecase.ListTransactionsInput) bool {
			q := in.Query
			return in.UserID == testUserID &&
				in.Kind == entity.KindSpending &&
				in.Page == 2 && in.PageSize == 5 &&
				q.MinAmount != nil && *q.MinAmount == 10 &&
				q.MaxAmount == nil &&
				len(q.Categories) == 2 && *q.Categories[0].ID == 3 && *q.Categories[1].Name == "Food" &&
				q.To != nil && q.To.Equal(time.Date(2024, 5, 31, 23, 59, 59, 999999000, time.UTC)) &&
				q.Search == "lun" &&
				assert.ObjectsAreEqual([]string{"-amount", "date"}, q.Sort)
		})).Return(entity.Page[*entity.Transaction]{
			Items: []*entity.Transaction{{
				ID: 11, Amount: 1200, CategoryName: "Food", Description: &desc,
				Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			}},
			Page: 2, PageSize: 5, Total: 6,
		}, nil).Once()

		rec := api.do(http.MethodGet,
			"/api/v1/spendings?min_amount=10&category_id=3&category=Food&datetime_to=2024-05-31&search=lun&sort=-amount,date&page=2&page_size=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var page dto.PageResponse[dto.TransactionResponse]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, 6, page.Total)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Food", page.Items[0].CategoryName)
	})

	t.Run("malformed amount filter never reaches the use case", func(t *testing.T) {
		api := newTestAPI(t, nil)

		rec := api.do(http.MethodGet, "/api/v1/incomes?min_amount=ten", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("create maps category name and rejects bad amounts", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.transactions.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in usecase.CreateTransactionInput) bool {
			return in.Kind == entity.KindIncome && in.Amount == -5 && *in.Category.Name == "Salary"
		})).Return(nil, errs.NewValidationError("amount", "must be positive", errs.ErrInvalidAmount)).Once()

		rec := api.do(http.MethodPost, "/api/v1/incomes", `{"amount":-5,"category_name":"Salary"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidAmount, decodeError(t, rec).Code)
	})

	t.Run("other users' transactions are not found", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.transactions.EXPECT().Get(mock.Anything, testUserID, entity.KindSpending, uint64(99)).
			Return(nil, errs.ErrTransactionNotFound).Once()

		rec := api.do(http.MethodGet, "/api/v1/spendings/99", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		api := newTestAPI(t, nil)

		rec := api.do(http.MethodDelete, "/api/v1/spendings/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.transactions.EXPECT().Delete(mock.Anything, testUserID, entity.KindSpending, uint64(4)).
			Return(errors.New("pq: connection reset")).Once()

		rec := api.do(http.MethodDelete, "/api/v1/spendings/4", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeError(t, rec).Message)
	})

	t.Run("export writes csv", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.transactions.EXPECT().ListAll(mock.Anything, testUserID, entity.KindSpending, mock.Anything).
			Return([]*entity.Transaction{{
				ID: 1, Amount: 500, CategoryName: "Food",
				Date: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			}}, nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/spendings/export", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "spendings.csv")
		assert.Equal(t, "id,amount,category_name,description,date\n1,500,Food,,2024-01-02T03:04:05Z\n", rec.Body.String())
	})
}

func TestCategoryHandler(t *testing.T) {
	t.Run("unknown disposition is rejected", func(t *testing.T) {
		api := newTestAPI(t, nil)

		rec := api.do(http.MethodDelete, "/api/v1/spendings/categories/3?disposition=archive", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing disposition", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.categories.EXPECT().Delete(mock.Anything, usecase.DeleteCategoryInput{
			UserID: testUserID, Kind: entity.KindSpending, CategoryID: 3,
		}).Return(errs.ErrMissingDisposition).Once()

		rec := api.do(http.MethodDelete, "/api/v1/spendings/categories/3", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeMissingDisposition, decodeError(t, rec).Code)
	})

	t.Run("reassign to a new category", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.categories.EXPECT().Delete(mock.Anything, usecase.DeleteCategoryInput{
			UserID: testUserID, Kind: entity.KindIncome, CategoryID: 3,
			Disposition: entity.DispositionToNew, Target: "Bonus",
		}).Return(nil).Once()

		rec := api.do(http.MethodDelete, "/api/v1/incomes/categories/3?disposition=to_new&target=Bonus", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rename of the default category is a conflict", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.categories.EXPECT().Rename(mock.Anything, testUserID, entity.KindSpending, uint64(1), "Misc").
			Return(nil, errs.ErrDefaultCategoryReadOnly).Once()

		rec := api.do(http.MethodPatch, "/api/v1/spendings/categories/1", `{"name":"Misc"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.categories.EXPECT().List(mock.Anything, testUserID, entity.KindSpending).
			Return([]*entity.Category{{ID: 1, Name: "Other", IsDefault: true}, {ID: 2, Name: "Food"}}, nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/spendings/categories", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var items []dto.CategoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 2)
		assert.True(t, items[0].IsDefault)
	})
}

func TestSummaryHandler(t *testing.T) {
	summaries := []entity.PeriodSummary{{
		PeriodNumber: 3,
		TotalAmount:  700,
		Summary: []entity.CategorySummary{
			{CategoryName: "Rent", Amount: 500},
			{CategoryName: "Food", Amount: 200},
		},
	}}

	t.Run("annual defaults to the current year", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.reports.EXPECT().Periodic(mock.Anything, usecase.PeriodicInput{
			UserID: testUserID, Kind: entity.KindSpending, Period: entity.PeriodAnnual, Year: 2024,
		}).Return(summaries, nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/spendings/summary/annual", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.PeriodSummaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "Rent", resp[0].Summary[0].CategoryName)
	})

	t.Run("monthly csv", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.reports.EXPECT().Periodic(mock.Anything, mock.MatchedBy(func(in usecase.PeriodicInput) bool {
			return in.Period == entity.PeriodMonthly && in.Year == 2023 && in.Month == time.February
		})).Return(summaries, nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/spendings/summary/monthly?year=2023&month=2&format=csv", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "spendings-2023-02.csv")
		assert.Equal(t, "period_number,total_amount,category_name,amount\n3,700,Rent,500\n3,700,Food,200\n", rec.Body.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		api := newTestAPI(t, nil)

		rec := api.do(http.MethodGet, "/api/v1/spendings/summary/annual?format=xml", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("chart returns png bytes", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.reports.EXPECT().SummaryChart(mock.Anything, testUserID, entity.KindIncome, mock.Anything, entity.ChartBarplot).
			Return([]byte("\x89PNG..."), nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/incomes/summary/chart?chart_type=barplot", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "\x89PNG...", rec.Body.String())
	})

	t.Run("chart worker unavailable", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.reports.EXPECT().PeriodicChart(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: timeout", errs.ErrChartUnavailable)).Once()

		rec := api.do(http.MethodGet, "/api/v1/spendings/summary/monthly/chart", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, errs.CodeChartUnavailable, decodeError(t, rec).Code)
	})

	t.Run("sheets publish", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.reports.EXPECT().PublishPeriodic(mock.Anything, mock.MatchedBy(func(in usecase.PeriodicInput) bool {
			return in.Period == entity.PeriodAnnual && in.Year == 2022
		})).Return("'Spendings 2022'!A1:D3", nil).Once()

		rec := api.do(http.MethodPost, "/api/v1/spendings/summary/annual/sheets?year=2022", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Spendings 2022")
	})
}

func TestGoalHandler(t *testing.T) {
	goal := &entity.SavingGoal{
		ID:            5,
		UserID:        testUserID,
		Name:          "Bike",
		TargetAmount:  1000,
		CurrentAmount: 1000,
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		EndDate:       ptr(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)),
		Status:        entity.GoalCompleted,
	}

	t.Run("create parses dates", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.goals.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p entity.NewGoalParams) bool {
			return p.UserID == testUserID && p.StartDate == nil &&
				p.TargetDate.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
		})).Return(goal, nil).Once()

		rec := api.do(http.MethodPost, "/api/v1/goals",
			`{"name":"Bike","target_amount":1000,"current_amount":1000,"target_date":"2024-12-31"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.GoalResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "COMPLETED", resp.Status)
		require.NotNil(t, resp.EndDate)
		assert.Equal(t, "2024-05-15", *resp.EndDate)
	})

	t.Run("bad date", func(t *testing.T) {
		api := newTestAPI(t, nil)

		rec := api.do(http.MethodPost, "/api/v1/goals", `{"name":"Bike","target_amount":1000,"target_date":"31/12/2024"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("payment below zero", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.goals.EXPECT().ApplyPayment(mock.Anything, testUserID, uint64(5), int64(-2000)).
			Return(nil, errs.NewGoalPaymentError(5, 1000, 1000, -2000)).Once()

		rec := api.do(http.MethodPost, "/api/v1/goals/5/payments", `{"amount":-2000}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidAmount, decodeError(t, rec).Code)
	})

	t.Run("progress", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.goals.EXPECT().Progress(mock.Anything, testUserID, uint64(5)).Return(entity.GoalProgress{
			CurrentAmount: 250, TargetAmount: 1000, RestAmount: 750,
			PercentageProgress: 25, DaysLeft: 10, ExpectedDailyPayment: 75,
		}, nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/goals/5/progress", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.ProgressResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(75), resp.ExpectedDailyPayment)
		assert.Equal(t, 25.0, resp.PercentageProgress)
	})

	t.Run("list by status", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.goals.EXPECT().List(mock.Anything, usecase.ListGoalsInput{
			UserID: testUserID, Status: "overdue", Sort: []string{"-target_date"},
		}).Return(entity.Page[*entity.SavingGoal]{Items: []*entity.SavingGoal{goal}, Page: 1, PageSize: 20, Total: 1}, nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/goals?status=overdue&sort=-target_date", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":1`)
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		api := newTestAPI(t, nil)
		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("database down", func(t *testing.T) {
		api := newTestAPI(t, errs.ErrDatabaseConnection)
		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
