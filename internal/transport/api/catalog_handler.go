package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const defaultSearchLimit uint = 20

type CatalogHandler struct {
	catalogSvs CatalogServicer
}

func NewCatalogHandler(catalogSvs CatalogServicer) *CatalogHandler {
	return &CatalogHandler{catalogSvs: catalogSvs}
}

// Categories GET RouteGroup + CategoriesRoute.
func (h *CatalogHandler) Categories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	categories, err := h.catalogSvs.Categories(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	var response = make([]CategoryResponse, len(categories))
	for i := range categories {
		response[i] = newCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, response)
}

type CreateCategoryParams struct {
	Name        string `binding:"required,max=100"  json:"name"`
	Description string `binding:"max_bytes=2000"    json:"description"`
	ParentID    *int64 `binding:"omitempty,min=1"   json:"parent_id"`
}

// CreateCategory POST RouteGroup + AdminCategoriesRoute.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var params CreateCategoryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	category, err := h.catalogSvs.CreateCategory(ctx, getActor(c), service.CreateCategoryArgs{
		Name:        params.Name,
		Description: params.Description,
		ParentID:    params.ParentID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCategoryResponse(category))
}

type SearchProductsQuery struct {
	PageQuery
	CategoryID *int64 `binding:"omitempty,min=1" form:"category_id"`
	Query      string `binding:"max=200"         form:"q"`
	Location   string `binding:"max=200"         form:"location"`
}

// Search GET RouteGroup + ProductsRoute. Публичный поиск активных товаров.
func (h *CatalogHandler) Search(c *gin.Context) {
	var q SearchProductsQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultSearchLimit
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := h.catalogSvs.Search(ctx, service.SearchProductsArgs{
		CategoryID: q.CategoryID,
		Query:      q.Query,
		Location:   q.Location,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductsResponse(products))
}

type ProductDetailResponse struct {
	ProductResponse
	Images  []ImageResponse   `json:"images"`
	Related []ProductResponse `json:"related"`
}

// Detail GET RouteGroup + ProductRoute.
func (h *CatalogHandler) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	detail, err := h.catalogSvs.ProductDetail(ctx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	images := make([]ImageResponse, len(detail.Images))
	for i := range detail.Images {
		images[i] = newImageResponse(&detail.Images[i])
	}
	c.JSON(http.StatusOK, ProductDetailResponse{
		ProductResponse: newProductResponse(detail.Product),
		Images:          images,
		Related:         newProductsResponse(detail.Related),
	})
}

type CreateProductParams struct {
	CategoryID        *int64          `binding:"omitempty,min=1"  json:"category_id"`
	Name              string          `binding:"required,max=200" json:"name"`
	Description       string          `binding:"max_bytes=5000"   json:"description"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int64           `binding:"min=0"            json:"quantity_available"`
	Location          string          `binding:"max=200"          json:"location"`
}

// Create POST RouteGroup + ProductsRoute. Продавцом становится текущий пользователь.
func (h *CatalogHandler) Create(c *gin.Context) {
	var params CreateProductParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.catalogSvs.CreateProduct(ctx, service.CreateProductArgs{
		SellerID:          getUserIDFromContext(c),
		CategoryID:        params.CategoryID,
		Name:              params.Name,
		Description:       params.Description,
		Price:             params.Price,
		QuantityAvailable: params.QuantityAvailable,
		Location:          params.Location,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newProductResponse(product))
}

// AddImage POST RouteGroup + ProductImagesRoute. Ожидает multipart поле image.
func (h *CatalogHandler) AddImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	fh, err := c.FormFile("image")
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("image file is required")).
			SetType(gin.ErrorTypePublic)
		return
	}
	upload, closer, err := openUpload(fh)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePrivate)
		return
	}
	defer closer.Close()

	ctx, cancel := context.WithTimeout(c, UploadServiceTimeout)
	defer cancel()

	img, err := h.catalogSvs.AddProductImage(ctx, getActor(c), id, upload)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newImageResponse(img))
}
