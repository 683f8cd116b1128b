package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	serviceSuite
	catalogService *CatalogService
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	catalogService, servErr := NewCatalogService(s.mockUOW, s.mockStorage)
	s.Require().NoError(servErr)
	s.catalogService = catalogService
}

func (s *CatalogServiceTestSuite) TestCreateCategory() {
	admin := Actor{UserID: 99, Role: domain.UserTypeAdmin, IP: "10.0.0.1"}

	_, err := s.catalogService.CreateCategory(s.T().Context(),
		Actor{UserID: 1, Role: domain.UserTypeShopOwner}, CreateCategoryArgs{Name: "Grains"})
	s.Require().ErrorIs(err, domain.ErrForbidden)

	_, err = s.catalogService.CreateCategory(s.T().Context(), admin, CreateCategoryArgs{Name: "  "})
	var ve *domain.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("name", ve.Field)

	s.mockCatalog.EXPECT().
		CreateCategory(gomock.Any(), repoargs.CreateCategory{Name: "Grains"}).
		Return(&domain.Category{ID: 3, Name: "Grains"}, nil)
	s.mockModeration.EXPECT().
		CreateAdminLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateAdminLog) (*domain.AdminLog, error) {
			s.Equal(admin.UserID, args.AdminID)
			s.Equal("category", args.ModelAffected)
			s.Equal(int64(3), *args.ObjectID)
			s.Equal("10.0.0.1", args.IPAddress)
			return &domain.AdminLog{ID: 1}, nil
		})

	category, err := s.catalogService.CreateCategory(s.T().Context(), admin, CreateCategoryArgs{Name: " Grains "})
	s.Require().NoError(err)
	s.Equal(int64(3), category.ID)
}

func (s *CatalogServiceTestSuite) TestCreateProductValidation() {
	cases := []struct {
		name      string
		args      CreateProductArgs
		wantField string
	}{
		{
			name:      "no name",
			args:      CreateProductArgs{Price: decimal.NewFromInt(10)},
			wantField: "name",
		}, {
			name:      "zero price",
			args:      CreateProductArgs{Name: "Yam", Price: decimal.Zero},
			wantField: "price",
		}, {
			name:      "fractional kobo",
			args:      CreateProductArgs{Name: "Yam", Price: decimal.RequireFromString("10.005")},
			wantField: "price",
		}, {
			name:      "negative stock",
			args:      CreateProductArgs{Name: "Yam", Price: decimal.NewFromInt(10), QuantityAvailable: -1},
			wantField: "quantity_available",
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.catalogService.CreateProduct(s.T().Context(), t.args)
			var ve *domain.ValidationError
			s.Require().ErrorAs(err, &ve)
			s.Equal(t.wantField, ve.Field)
		})
	}
}

func (s *CatalogServiceTestSuite) TestCreateProduct() {
	name := gofakeit.ProductName()
	s.mockCatalog.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateProduct) (*domain.Product, error) {
			s.Equal(name, args.Name)
			s.Equal("Nsukka", args.Location)
			return &domain.Product{ID: 12, SellerID: args.SellerID, Name: args.Name, Price: args.Price, IsActive: true}, nil
		})

	product, err := s.catalogService.CreateProduct(s.T().Context(), CreateProductArgs{
		SellerID:          5,
		Name:              name,
		Price:             decimal.RequireFromString("1500.50"),
		QuantityAvailable: 3,
		Location:          " Nsukka ",
	})
	s.Require().NoError(err)
	s.Equal(int64(5), product.SellerID)
}

func (s *CatalogServiceTestSuite) TestAddProductImage() {
	const sellerID int64 = 5
	product := &domain.Product{ID: 12, SellerID: sellerID, IsActive: true}
	s.mockCatalog.EXPECT().FindProductByID(gomock.Any(), int64(12)).Return(product, nil).Times(2)

	file := FileUpload{Name: "palm-oil.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png")}

	_, err := s.catalogService.AddProductImage(s.T().Context(), Actor{UserID: 6}, 12, file)
	s.Require().ErrorIs(err, domain.ErrForbidden)

	var storedKey string
	s.mockStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), "image/png", gomock.Any(), int64(3)).
		DoAndReturn(func(_ context.Context, key, _ string, body io.Reader, _ int64) error {
			s.True(strings.HasPrefix(key, "products/12/"))
			content, readErr := io.ReadAll(body)
			s.Require().NoError(readErr)
			s.Equal("png", string(content))
			storedKey = key
			return nil
		})
	s.mockCatalog.EXPECT().
		AddProductImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.AddProductImage) (*domain.ProductImage, error) {
			s.Equal(storedKey, args.ObjectKey)
			return &domain.ProductImage{ID: 1, ProductID: 12, ObjectKey: args.ObjectKey, IsPrimary: true}, nil
		})
	s.mockStorage.EXPECT().PresignGet(gomock.Any(), gomock.Any()).Return("https://storage.local/img", nil)

	view, err := s.catalogService.AddProductImage(s.T().Context(), Actor{UserID: sellerID}, 12, file)
	s.Require().NoError(err)
	s.True(view.IsPrimary)
	s.Equal("https://storage.local/img", view.URL)
}

func (s *CatalogServiceTestSuite) TestProductDetail() {
	categoryID := int64(3)
	active := &domain.Product{ID: 1, CategoryID: &categoryID, IsActive: true}
	s.mockCatalog.EXPECT().FindProductByID(gomock.Any(), int64(1)).Return(active, nil)
	s.mockCatalog.EXPECT().FindProductByID(gomock.Any(), int64(2)).
		Return(&domain.Product{ID: 2, IsActive: false}, nil)
	s.mockCatalog.EXPECT().ProductImages(gomock.Any(), int64(1)).
		Return([]domain.ProductImage{{ID: 7, ProductID: 1, ObjectKey: "products/1/a.jpg"}}, nil)
	s.mockStorage.EXPECT().PresignGet(gomock.Any(), "products/1/a.jpg").Return("https://storage.local/a.jpg", nil)
	s.mockCatalog.EXPECT().RelatedProducts(gomock.Any(), active, relatedProductsLimit).
		Return([]domain.Product{{ID: 4, CategoryID: &categoryID, IsActive: true}}, nil)

	detail, err := s.catalogService.ProductDetail(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Require().Len(detail.Images, 1)
	s.Equal("https://storage.local/a.jpg", detail.Images[0].URL)
	s.Len(detail.Related, 1)

	_, err = s.catalogService.ProductDetail(s.T().Context(), 2)
	s.ErrorIs(err, domain.ErrRecordNotFound)
}
