package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/mocks"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartProductRequest(t *testing.T, fields map[string]string, imageCount int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for i := range imageCount {
		part, err := writer.CreateFormFile(imagesFormKey, fmt.Sprintf("image-%d.jpg", i))
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("binds multipart fields and images", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.ProductUsecase)
		h := NewProductHandler(uc, discardLogger())

		uc.On("Create", mock.Anything, mock.MatchedBy(func(input *usecase.CreateProductInput) bool {
			return input.Name == "Linen Shirt" &&
				input.Price == 49.9 &&
				input.Category == "men" &&
				len(input.Images) == 2
		})).Return(&entity.Product{Name: "Linen Shirt"}, nil)

		req := multipartProductRequest(t, map[string]string{
			"name":     "Linen Shirt",
			"price":    "49.9",
			"category": "men",
		}, 2)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		perform(e, c, h.Create)

		require.Equal(t, http.StatusCreated, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.ProductUsecase)
		h := NewProductHandler(uc, discardLogger())

		req := multipartProductRequest(t, map[string]string{"description": "no name or price"}, 0)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		perform(e, c, h.Create)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductHandler_Get(t *testing.T) {
	t.Run("malformed id is a bad request", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.ProductUsecase)
		h := NewProductHandler(uc, discardLogger())

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		perform(e, c, h.Get)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("unknown product maps to 404", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.ProductUsecase)
		h := NewProductHandler(uc, discardLogger())

		id := uuid.New()
		uc.On("Get", mock.Anything, id).
			Return(nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed"))

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products/"+id.String(), nil), rec)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		perform(e, c, h.Get)

		require.Equal(t, http.StatusNotFound, rec.Code)
		errInfo := decodeEnvelope(t, rec)["error"].(map[string]any)
		assert.Equal(t, "PRODUCT_NOT_FOUND", errInfo["code"])
	})
}

func TestProductHandler_List(t *testing.T) {
	t.Run("passes query parameters through", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.ProductUsecase)
		h := NewProductHandler(uc, discardLogger())

		uc.On("List", mock.Anything, mock.MatchedBy(func(input *usecase.ListProductsInput) bool {
			return input.Page == 2 && input.Limit == 5 && input.Search == "shirt" && input.Order == "desc"
		})).Return(&repository.ProductPage{
			Products:      []*entity.Product{{Name: "Linen Shirt"}},
			CurrentPage:   2,
			TotalPages:    4,
			TotalProducts: 17,
			HasNextPage:   true,
			HasPrevPage:   true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/products?page=2&limit=5&search=shirt&order=desc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		perform(e, c, h.List)

		require.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("rejects an unknown sort order", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.ProductUsecase)
		h := NewProductHandler(uc, discardLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/products?order=sideways", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		perform(e, c, h.List)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestProductHandler_Carousel(t *testing.T) {
	e := newTestEcho()
	uc := new(mocks.ProductUsecase)
	h := NewProductHandler(uc, discardLogger())

	uc.On("List", mock.Anything, mock.MatchedBy(func(input *usecase.ListProductsInput) bool {
		return input.Carousel
	})).Return(&repository.ProductPage{}, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products/carousel", nil), rec)

	perform(e, c, h.Carousel)

	require.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestProductHandler_BulkUpdate(t *testing.T) {
	e := newTestEcho()
	uc := new(mocks.ProductUsecase)
	h := NewProductHandler(uc, discardLogger())

	id := uuid.New()
	uc.On("BulkUpdate", mock.Anything, mock.MatchedBy(func(input *usecase.BulkUpdateInput) bool {
		return len(input.Updates) == 1 && input.Updates[0].ID == id
	})).Return(int64(1), nil)

	body := fmt.Sprintf(`{"updates":[{"id":%q,"fields":{"price":19.9}}]}`, id)
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPatch, "/api/products/bulk-update", body), rec)

	perform(e, c, h.BulkUpdate)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":1`)
}
