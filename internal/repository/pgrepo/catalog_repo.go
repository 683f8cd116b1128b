package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
)

const (
	productColumns = `p.id, p.created_at, p.updated_at, p.seller_id, p.category_id, p.name, p.description, p.price,
	p.quantity_available, p.location, p.is_active`

	defaultProductsLimit uint = 20
	maxProductsLimit     uint = 100
)

type CatalogRepository struct {
	conn uow.DBTX
}

func NewCatalogRepository(conn uow.DBTX) *CatalogRepository {
	return &CatalogRepository{conn: conn}
}

func (c *CatalogRepository) CreateCategory(ctx context.Context, args repoargs.CreateCategory) (*domain.Category, error) {
	var cat domain.Category
	err := c.conn.QueryRow(ctx, `INSERT INTO categories (name, description, parent_id) VALUES ($1, $2, $3)
		RETURNING id, name, description, parent_id`, args.Name, args.Description, args.ParentID,
	).Scan(&cat.ID, &cat.Name, &cat.Description, &cat.ParentID)
	if err != nil {
		return nil, convertErr(err, "creating category")
	}
	return &cat, nil
}

func (c *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := c.conn.Query(ctx, `SELECT id, name, description, parent_id FROM categories ORDER BY name`)
	if err != nil {
		return nil, convertErr(err, "listing categories")
	}
	categories, err := collect(rows, func(row scanner) (*domain.Category, error) {
		var cat domain.Category
		if scanErr := row.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.ParentID); scanErr != nil {
			return nil, scanErr //nolint:wrapcheck
		}
		return &cat, nil
	})
	if err != nil {
		return nil, convertErr(err, "listing categories")
	}
	return categories, nil
}

func (c *CatalogRepository) CreateProduct(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error) {
	row := c.conn.QueryRow(ctx, `INSERT INTO products AS p
		(seller_id, category_id, name, description, price, quantity_available, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING `+productColumns,
		args.SellerID, args.CategoryID, args.Name, args.Description, args.Price, args.QuantityAvailable, args.Location,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "creating product")
	}
	return product, nil
}

func (c *CatalogRepository) FindProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "finding product %d", id)
	}
	return product, nil
}

// LockProducts возвращает товары по id, блокируя строки до конца транзакции. Порядок по id исключает
// взаимные блокировки между параллельными заказами.
func (c *CatalogRepository) LockProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	rows, err := c.conn.Query(ctx, `SELECT `+productColumns+` FROM products p
		WHERE p.id = ANY($1) ORDER BY p.id FOR UPDATE`, ids)
	if err != nil {
		return nil, convertErr(err, "locking products")
	}
	products, err := collect(rows, scanProduct)
	if err != nil {
		return nil, convertErr(err, "locking products")
	}
	return products, nil
}

// ChangeStock изменяет остаток товара на delta. Если остатка не хватает, возвращает domain.ErrOutOfStock.
func (c *CatalogRepository) ChangeStock(ctx context.Context, change repoargs.StockChange) error {
	tag, err := c.conn.Exec(ctx, `UPDATE products
		SET quantity_available = quantity_available + $2, updated_at = now()
		WHERE id = $1 AND quantity_available + $2 >= 0`, change.ProductID, change.Delta)
	if err != nil {
		return convertErr(err, "changing stock of product %d", change.ProductID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/changing stock of product %d] %w", change.ProductID, domain.ErrOutOfStock)
	}
	return nil
}

// SearchProducts ищет активные товары. Фильтр по категории включает все дочерние категории.
func (c *CatalogRepository) SearchProducts(ctx context.Context, filter repoargs.ProductFilter) ([]domain.Product, error) {
	var (
		where = []string{"p.is_active"}
		args  []any
		with  string
	)
	addArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategoryID != nil {
		with = `WITH RECURSIVE tree AS (
			SELECT id FROM categories WHERE id = ` + addArg(*filter.CategoryID) + `
			UNION ALL
			SELECT c.id FROM categories c JOIN tree t ON c.parent_id = t.id
		) `
		where = append(where, "p.category_id IN (SELECT id FROM tree)")
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		ph := addArg("%" + escapeLike(q) + "%")
		where = append(where, fmt.Sprintf("(p.name ILIKE %[1]s OR p.description ILIKE %[1]s OR u.username ILIKE %[1]s)", ph))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		where = append(where, "p.location ILIKE "+addArg("%"+escapeLike(loc)+"%"))
	}
	if filter.SellerID != nil {
		where = append(where, "p.seller_id = "+addArg(*filter.SellerID))
	}

	limit := limitOrDefault(filter.Page.Limit, defaultProductsLimit, maxProductsLimit)
	query := with + `SELECT ` + productColumns + ` FROM products p JOIN users u ON u.id = p.seller_id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ` + addArg(limit) + ` OFFSET ` + addArg(filter.Page.Offset)

	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "searching products")
	}
	products, err := collect(rows, scanProduct)
	if err != nil {
		return nil, convertErr(err, "searching products")
	}
	return products, nil
}

// RelatedProducts активные товары той же категории, кроме самого товара.
func (c *CatalogRepository) RelatedProducts(ctx context.Context, product *domain.Product, limit uint) ([]domain.Product, error) {
	if product.CategoryID == nil {
		return []domain.Product{}, nil
	}
	rows, err := c.conn.Query(ctx, `SELECT `+productColumns+` FROM products p
		WHERE p.category_id = $1 AND p.id <> $2 AND p.is_active
		ORDER BY p.created_at DESC LIMIT $3`, *product.CategoryID, product.ID, limit)
	if err != nil {
		return nil, convertErr(err, "related products of %d", product.ID)
	}
	products, err := collect(rows, scanProduct)
	if err != nil {
		return nil, convertErr(err, "related products of %d", product.ID)
	}
	return products, nil
}

// ProductsBySeller последние товары продавца, включая неактивные.
func (c *CatalogRepository) ProductsBySeller(ctx context.Context, sellerID int64, limit uint) ([]domain.Product, error) {
	rows, err := c.conn.Query(ctx, `SELECT `+productColumns+` FROM products p
		WHERE p.seller_id = $1 ORDER BY p.created_at DESC LIMIT $2`, sellerID, limit)
	if err != nil {
		return nil, convertErr(err, "products of seller %d", sellerID)
	}
	products, err := collect(rows, scanProduct)
	if err != nil {
		return nil, convertErr(err, "products of seller %d", sellerID)
	}
	return products, nil
}

// AddProductImage добавляет изображение. Первое изображение товара становится основным.
func (c *CatalogRepository) AddProductImage(ctx context.Context, args repoargs.AddProductImage) (*domain.ProductImage, error) {
	var img domain.ProductImage
	err := c.conn.QueryRow(ctx, `INSERT INTO product_images (product_id, object_key, is_primary)
		VALUES ($1, $2, NOT EXISTS (SELECT 1 FROM product_images WHERE product_id = $1 AND is_primary))
		RETURNING id, product_id, object_key, is_primary`, args.ProductID, args.ObjectKey,
	).Scan(&img.ID, &img.ProductID, &img.ObjectKey, &img.IsPrimary)
	if err != nil {
		return nil, convertErr(err, "adding image to product %d", args.ProductID)
	}
	return &img, nil
}

func (c *CatalogRepository) ProductImages(ctx context.Context, productID int64) ([]domain.ProductImage, error) {
	rows, err := c.conn.Query(ctx, `SELECT id, product_id, object_key, is_primary FROM product_images
		WHERE product_id = $1 ORDER BY is_primary DESC, id`, productID)
	if err != nil {
		return nil, convertErr(err, "images of product %d", productID)
	}
	images, err := collect(rows, func(row scanner) (*domain.ProductImage, error) {
		var img domain.ProductImage
		if scanErr := row.Scan(&img.ID, &img.ProductID, &img.ObjectKey, &img.IsPrimary); scanErr != nil {
			return nil, scanErr //nolint:wrapcheck
		}
		return &img, nil
	})
	if err != nil {
		return nil, convertErr(err, "images of product %d", productID)
	}
	return images, nil
}

func scanProduct(row scanner) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.SellerID,
		&p.CategoryID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.QuantityAvailable,
		&p.Location,
		&p.IsActive,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}

// escapeLike экранирует спецсимволы шаблона LIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
