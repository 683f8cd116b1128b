package repoargs

import "github.com/shopspring/decimal"

type CreateCategory struct {
	Name        string
	Description string
	ParentID    *int64
}

type CreateProduct struct {
	SellerID          int64
	CategoryID        *int64
	Name              string
	Description       string
	Price             decimal.Decimal
	QuantityAvailable int64
	Location          string
}

type ProductFilter struct {
	// CategoryID фильтр по категории вместе со всеми вложенными.
	CategoryID *int64
	Query      string
	Location   string
	SellerID   *int64
	Page       Page
}

type AddProductImage struct {
	ProductID int64
	ObjectKey string
}

// StockChange изменение остатка товара. Отрицательное Delta резервирует товар.
type StockChange struct {
	ProductID int64
	Delta     int64
}
