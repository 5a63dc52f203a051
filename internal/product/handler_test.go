package product

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, filter ListFilter, page, limit int) ([]Product, int, error) {
	args := m.Called(ctx, filter, page, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]Product), args.Int(1), args.Error(2)
}

func (m *MockProductService) GetByID(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, p *Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductService) Update(ctx context.Context, id uint, params UpdateParams) (*Product, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	router := gin.New()
	p := router.Group("/api/products")
	p.GET("", h.List)
	p.GET("/:id", h.Get)
	p.POST("", h.Create)
	p.PUT("/:id", h.Update)
	p.DELETE("/:id", h.Delete)
	return router
}

func TestHandler_List(t *testing.T) {
	t.Run("WithFilters", func(t *testing.T) {
		cat := CategoryBooks
		search := "dune"
		svc := new(MockProductService)
		svc.On("List", mock.Anything, ListFilter{Category: &cat, Search: &search}, 1, 10).
			Return([]Product{{ID: 1, Name: "Dune"}}, 1, nil)
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/products?category=books&search=dune", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Products   []Product `json:"products"`
			Pagination struct {
				Total int `json:"total"`
			} `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Products, 1)
		assert.Equal(t, 1, resp.Pagination.Total)
		svc.AssertExpectations(t)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("List", mock.Anything, ListFilter{}, 1, 10).Return(nil, 0, nil)
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"products":[]`)
	})
}

func TestHandler_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetByID", mock.Anything, uint(1)).Return(&Product{ID: 1, Name: "Dune"}, nil)
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Dune"`)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetByID", mock.Anything, uint(99)).Return(nil, ErrProductNotFound)
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/products/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		router := newTestRouter(new(MockProductService))

		req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("Create", mock.Anything, mock.AnythingOfType("*product.Product")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*Product).ID = 1
			}).Return(nil)
		router := newTestRouter(svc)

		body := `{"name":"Dune","description":"a fine paperback edition","price":"9.99","category":"books","stock":5}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":1`)
		svc.AssertExpectations(t)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		svc := new(MockProductService)
		router := newTestRouter(svc)

		body := `{"name":"Dune","description":"a fine paperback edition","price":"9.99","category":"groceries","stock":5}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("ShortDescription", func(t *testing.T) {
		router := newTestRouter(new(MockProductService))

		body := `{"name":"Dune","description":"short","price":"9.99","category":"books","stock":5}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Update(t *testing.T) {
	svc := new(MockProductService)
	stock := 7
	svc.On("Update", mock.Anything, uint(1), UpdateParams{Stock: &stock}).
		Return(&Product{ID: 1, Stock: 7}, nil)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/products/1", strings.NewReader(`{"stock":7}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stock":7`)
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockProductService)
	svc.On("Delete", mock.Anything, uint(1)).Return(nil)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
