package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/internal/usecase"
	"github.com/burhansaar3-alt/app/pkg/response"
	"github.com/burhansaar3-alt/app/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	CategoryID  string   `json:"category_id" validate:"required"`
	Name        string   `json:"name" validate:"required,min=2"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	ShoeSizes   []string `json:"shoe_sizes"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Images:      r.Images,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		ShoeSizes:   r.ShoeSizes,
		Status:      r.Status,
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), middleware.CurrentUser(c), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := repository.ProductFilter{
		CategoryID: c.QueryParam("category_id"),
		StoreID:    c.QueryParam("store_id"),
		Status:     c.QueryParam("status"),
		Search:     c.QueryParam("search"),
	}

	pagination := utils.GetPaginationParams(c)
	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), middleware.CurrentUser(c), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) ListSimilar(c echo.Context) error {
	products, err := h.productUseCase.ListSimilar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Product deleted",
	})
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.productUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *ProductHandler) CreateCategory(c echo.Context) error {
	var req struct {
		NameAr string `json:"name_ar" validate:"required"`
		NameEn string `json:"name_en" validate:"required"`
		Slug   string `json:"slug" validate:"required"`
		Icon   string `json:"icon"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.productUseCase.CreateCategory(c.Request().Context(), middleware.CurrentUser(c), &entity.Category{
		NameAr: req.NameAr,
		NameEn: req.NameEn,
		Slug:   req.Slug,
		Icon:   req.Icon,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category)
}

func (h *ProductHandler) CreateReview(c echo.Context) error {
	var req struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment" validate:"omitempty,max=2000"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.productUseCase.CreateReview(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), usecase.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ProductHandler) ListReviews(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	reviews, total, err := h.productUseCase.ListReviews(c.Request().Context(), c.Param("id"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}
