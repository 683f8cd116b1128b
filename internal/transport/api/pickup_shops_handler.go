package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PickupShopsHandler struct {
	shopSvs PickupShopServicer
}

func NewPickupShopsHandler(shopSvs PickupShopServicer) *PickupShopsHandler {
	return &PickupShopsHandler{shopSvs: shopSvs}
}

type PickupShopsQuery struct {
	State     string `binding:"max=100" form:"state"`
	LGA       string `binding:"max=100" form:"lga"`
	Community string `binding:"max=100" form:"community"`
}

// Index GET RouteGroup + PickupShopsRoute. Только проверенные пункты выдачи.
func (h *PickupShopsHandler) Index(c *gin.Context) {
	var q PickupShopsQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	shops, err := h.shopSvs.List(ctx, repoargs.PickupShopFilter{State: q.State, LGA: q.LGA, Community: q.Community})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	var response = make([]PickupShopResponse, len(shops))
	for i := range shops {
		response[i] = newPickupShopResponse(&shops[i])
	}
	c.JSON(http.StatusOK, response)
}

type RegisterPickupShopParams struct {
	Name           string           `binding:"required,max=200"       json:"name"`
	Address        string           `binding:"required,max_bytes=1000" json:"address"`
	State          string           `binding:"max=100"                json:"state"`
	LGA            string           `binding:"max=100"                json:"lga"`
	Community      string           `binding:"max=100"                json:"community"`
	PhoneNumber    string           `binding:"max=20"                 json:"phone_number"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
}

// Create POST RouteGroup + PickupShopsRoute.
func (h *PickupShopsHandler) Create(c *gin.Context) {
	var params RegisterPickupShopParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	shop, err := h.shopSvs.Register(ctx, getActor(c), service.RegisterPickupShopArgs{
		Name:           params.Name,
		Address:        params.Address,
		State:          params.State,
		LGA:            params.LGA,
		Community:      params.Community,
		PhoneNumber:    params.PhoneNumber,
		CommissionRate: params.CommissionRate,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPickupShopResponse(shop))
}
