package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/shopspring/decimal"
)

const relatedProductsLimit uint = 4

type CatalogService struct {
	uow         uow.UOW
	catalogRepo CatalogRepository
	storage     ObjectStorage
}

func NewCatalogService(u uow.UOW, storage ObjectStorage) (*CatalogService, error) {
	catalogRepo, err := repoFromUOW[CatalogRepository](u, repoargs.CatalogRepoName)
	if err != nil {
		return nil, err
	}
	return &CatalogService{
		uow:         u,
		catalogRepo: catalogRepo,
		storage:     storage,
	}, nil
}

type CreateCategoryArgs struct {
	Name        string
	Description string
	ParentID    *int64
}

// CreateCategory создает категорию. Только для администраторов, действие попадает в журнал.
func (c *CatalogService) CreateCategory(ctx context.Context, actor Actor, args CreateCategoryArgs) (*domain.Category, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("creating category: %w", domain.ErrForbidden)
	}
	name := strings.TrimSpace(args.Name)
	if name == "" {
		return nil, fmt.Errorf("creating category: %w", domain.NewValidationError("name", "required"))
	}

	var category *domain.Category
	txErr := c.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[CatalogRepository](tx, repoargs.CatalogRepoName)
		if err != nil {
			return err
		}
		category, err = repo.CreateCategory(ctx, repoargs.CreateCategory{
			Name:        name,
			Description: args.Description,
			ParentID:    args.ParentID,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		return recordAdminAction(ctx, tx, actor, "create category", "category", &category.ID, name)
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating category: %w", txErr)
	}
	return category, nil
}

func (c *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return categories, nil
}

type CreateProductArgs struct {
	SellerID          int64
	CategoryID        *int64
	Name              string
	Description       string
	Price             decimal.Decimal
	QuantityAvailable int64
	Location          string
}

func (c *CatalogService) CreateProduct(ctx context.Context, args CreateProductArgs) (*domain.Product, error) {
	name := strings.TrimSpace(args.Name)
	switch {
	case name == "":
		return nil, fmt.Errorf("creating product: %w", domain.NewValidationError("name", "required"))
	case !args.Price.IsPositive():
		return nil, fmt.Errorf("creating product: %w", domain.NewValidationError("price", "must be positive"))
	case !args.Price.Equal(args.Price.Round(2)):
		return nil, fmt.Errorf("creating product: %w", domain.NewValidationError("price", "at most 2 decimal places"))
	case args.QuantityAvailable < 0:
		return nil, fmt.Errorf("creating product: %w",
			domain.NewValidationError("quantity_available", "must not be negative"))
	}

	product, err := c.catalogRepo.CreateProduct(ctx, repoargs.CreateProduct{
		SellerID:          args.SellerID,
		CategoryID:        args.CategoryID,
		Name:              name,
		Description:       args.Description,
		Price:             args.Price,
		QuantityAvailable: args.QuantityAvailable,
		Location:          strings.TrimSpace(args.Location),
	})
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return product, nil
}

// ImageView изображение товара со ссылкой на скачивание.
type ImageView struct {
	domain.ProductImage
	URL string
}

// AddProductImage загружает изображение товара. Добавлять изображения может только продавец или администратор.
func (c *CatalogService) AddProductImage(
	ctx context.Context,
	actor Actor,
	productID int64,
	file FileUpload,
) (*ImageView, error) {
	product, err := c.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("adding product image: %w", err)
	}
	if product.SellerID != actor.UserID && !actor.IsAdmin() {
		return nil, fmt.Errorf("adding product image: %w", domain.ErrForbidden)
	}

	key, err := uploadFile(ctx, c.storage, fmt.Sprintf("products/%d", productID), file)
	if err != nil {
		return nil, fmt.Errorf("adding product image: %w", err)
	}
	img, err := c.catalogRepo.AddProductImage(ctx, repoargs.AddProductImage{ProductID: productID, ObjectKey: key})
	if err != nil {
		return nil, fmt.Errorf("adding product image: %w", err)
	}
	return c.imageView(ctx, *img)
}

type SearchProductsArgs struct {
	CategoryID *int64
	Query      string
	Location   string
	Limit      uint
	Offset     uint
}

// Search ищет активные товары по категории (с подкатегориями), тексту и местоположению.
func (c *CatalogService) Search(ctx context.Context, args SearchProductsArgs) ([]domain.Product, error) {
	products, err := c.catalogRepo.SearchProducts(ctx, repoargs.ProductFilter{
		CategoryID: args.CategoryID,
		Query:      args.Query,
		Location:   args.Location,
		Page:       repoargs.Page{Limit: args.Limit, Offset: args.Offset},
	})
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	return products, nil
}

type ProductDetail struct {
	Product *domain.Product
	Images  []ImageView
	Related []domain.Product
}

// ProductDetail активный товар с изображениями и похожими товарами той же категории.
// Неактивный товар считается ненайденным.
func (c *CatalogService) ProductDetail(ctx context.Context, id int64) (*ProductDetail, error) {
	product, err := c.catalogRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product detail: %w", err)
	}
	if !product.IsActive {
		return nil, fmt.Errorf("product detail %d: %w", id, domain.ErrRecordNotFound)
	}

	images, err := c.catalogRepo.ProductImages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product detail: %w", err)
	}
	views := make([]ImageView, 0, len(images))
	for _, img := range images {
		view, viewErr := c.imageView(ctx, img)
		if viewErr != nil {
			return nil, fmt.Errorf("product detail: %w", viewErr)
		}
		views = append(views, *view)
	}

	related, err := c.catalogRepo.RelatedProducts(ctx, product, relatedProductsLimit)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("product detail: %w", err)
	}
	return &ProductDetail{Product: product, Images: views, Related: related}, nil
}

func (c *CatalogService) imageView(ctx context.Context, img domain.ProductImage) (*ImageView, error) {
	url, err := c.storage.PresignGet(ctx, img.ObjectKey)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ImageView{ProductImage: img, URL: url}, nil
}
