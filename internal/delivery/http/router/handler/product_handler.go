package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"boutique/internal/delivery/http/response"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// imagesFormKey is the multipart field carrying product image files.
const imagesFormKey = "images"

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// productForm is the multipart body of create and update requests. Echo binds
// the scalar fields; the image files are collected separately.
type productForm struct {
	Name               *string  `form:"name" json:"name"`
	Description        *string  `form:"description" json:"description"`
	Price              *float64 `form:"price" json:"price"`
	Category           *string  `form:"category" json:"category"`
	SubCategory        *string  `form:"subCategory" json:"subCategory"`
	StockQuantity      *int     `form:"stockQuantity" json:"stockQuantity"`
	AvailableSizes     []string `form:"availableSizes" json:"availableSizes"`
	AvailableColors    []string `form:"availableColors" json:"availableColors"`
	IsAvailable        *bool    `form:"isAvailable" json:"isAvailable"`
	DiscountPercentage *float64 `form:"discountPercentage" json:"discountPercentage"`
	Tags               []string `form:"tags" json:"tags"`
	Carousel           *bool    `form:"carousel" json:"carousel"`
	MostSelling        *bool    `form:"mostSelling" json:"mostSelling"`
	Material           *string  `form:"material" json:"material"`
	CareInstruction    *string  `form:"careInstruction" json:"careInstruction"`
	Dimensions         *string  `form:"dimensions" json:"dimensions"`
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	var form productForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	images, err := readImageUploads(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateProductInput{
		Name:               derefString(form.Name),
		Description:        derefString(form.Description),
		Price:              derefFloat(form.Price),
		Category:           derefString(form.Category),
		SubCategory:        derefString(form.SubCategory),
		StockQuantity:      derefInt(form.StockQuantity),
		AvailableSizes:     form.AvailableSizes,
		AvailableColors:    form.AvailableColors,
		DiscountPercentage: derefFloat(form.DiscountPercentage),
		Tags:               form.Tags,
		Carousel:           derefBool(form.Carousel),
		MostSelling:        derefBool(form.MostSelling),
		Specification: entity.ProductSpecification{
			Material:        derefString(form.Material),
			CareInstruction: derefString(form.CareInstruction),
			Dimensions:      derefString(form.Dimensions),
		},
		Images: images,
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Get handles the single product lookup request.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// List handles the paginated catalog listing request.
func (h *ProductHandler) List(c echo.Context) error {
	return h.list(c, nil)
}

// ListByCategory handles category browsing; an empty page is a 404.
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	category := c.Param("category")

	input, err := h.bindListInput(c)
	if err != nil {
		return errors.WithStack(err)
	}
	input.Category = category

	page, err := h.uc.ListByCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Products retrieved successfully")
}

// Search handles free-text catalog search.
func (h *ProductHandler) Search(c echo.Context) error {
	return h.list(c, nil)
}

// ListByTag handles tag browsing.
func (h *ProductHandler) ListByTag(c echo.Context) error {
	tag := c.Param("tag")

	return h.list(c, func(input *usecase.ListProductsInput) {
		input.Tag = tag
	})
}

// Carousel lists the products flagged for the storefront carousel.
func (h *ProductHandler) Carousel(c echo.Context) error {
	return h.list(c, func(input *usecase.ListProductsInput) {
		input.Carousel = true
	})
}

// MostSelling lists the products flagged as best sellers.
func (h *ProductHandler) MostSelling(c echo.Context) error {
	return h.list(c, func(input *usecase.ListProductsInput) {
		input.MostSelling = true
	})
}

// NewArrivals lists the most recently added products.
func (h *ProductHandler) NewArrivals(c echo.Context) error {
	input, err := h.bindListInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.NewArrivals(c.Request().Context(), input.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Update handles the partial product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var form productForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	images, err := readImageUploads(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var spec *entity.ProductSpecification
	if form.Material != nil || form.CareInstruction != nil || form.Dimensions != nil {
		spec = &entity.ProductSpecification{
			Material:        derefString(form.Material),
			CareInstruction: derefString(form.CareInstruction),
			Dimensions:      derefString(form.Dimensions),
		}
	}

	input := &usecase.UpdateProductInput{
		ID:                 id,
		Name:               form.Name,
		Description:        form.Description,
		Price:              form.Price,
		Category:           form.Category,
		SubCategory:        form.SubCategory,
		StockQuantity:      form.StockQuantity,
		AvailableSizes:     form.AvailableSizes,
		AvailableColors:    form.AvailableColors,
		IsAvailable:        form.IsAvailable,
		DiscountPercentage: form.DiscountPercentage,
		Tags:               form.Tags,
		Carousel:           form.Carousel,
		MostSelling:        form.MostSelling,
		Specification:      spec,
		Images:             images,
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Deactivate handles the product deactivation request.
func (h *ProductHandler) Deactivate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.Deactivate(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product deactivated successfully")
}

// BulkUpdate handles the bulk partial update request.
func (h *ProductHandler) BulkUpdate(c echo.Context) error {
	var input usecase.BulkUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	touched, err := h.uc.BulkUpdate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": touched}, "Products updated successfully")
}

func (h *ProductHandler) list(c echo.Context, adjust func(*usecase.ListProductsInput)) error {
	input, err := h.bindListInput(c)
	if err != nil {
		return errors.WithStack(err)
	}
	if adjust != nil {
		adjust(input)
	}

	page, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Products retrieved successfully")
}

func (h *ProductHandler) bindListInput(c echo.Context) (*usecase.ListProductsInput, error) {
	var input usecase.ListProductsInput
	if err := c.Bind(&input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid listing parameters")
	}
	if err := c.Validate(&input); err != nil {
		return nil, err
	}

	return &input, nil
}

// readImageUploads pulls the uploaded image files out of the multipart form.
// A plain JSON request simply yields no images.
func readImageUploads(c echo.Context) ([]usecase.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File[imagesFormKey]
	images := make([]usecase.ImageUpload, 0, len(files))
	for _, fileHeader := range files {
		image, err := readImageUpload(fileHeader)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	return images, nil
}

func readImageUpload(fileHeader *multipart.FileHeader) (usecase.ImageUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return usecase.ImageUpload{}, errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return usecase.ImageUpload{}, errors.Wrap(err, "failed to read uploaded image")
	}

	return usecase.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}

	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}

func derefBool(v *bool) bool {
	if v == nil {
		return false
	}

	return *v
}
