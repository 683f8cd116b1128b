package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type OrderItemParams struct {
	ProductID int64 `binding:"required,min=1" json:"product_id"`
	Quantity  int64 `binding:"required,min=1" json:"quantity"`
}

type PlaceOrderParams struct {
	Items           []OrderItemParams `binding:"required,min=1,max=50,dive" json:"items"`
	ShippingAddress string            `binding:"required,max_bytes=1000"    json:"shipping_address"`
	Notes           string            `binding:"max_bytes=2000"             json:"notes"`
	PickupShopID    *int64            `binding:"omitempty,min=1"            json:"pickup_shop_id"`
}

type PlacedOrderResponse struct {
	Order       OrderResponse       `json:"order"`
	Items       []OrderItemResponse `json:"items"`
	Delivery    *DeliveryResponse   `json:"delivery"`
	Transaction TransactionResponse `json:"transaction"`
}

// Create POST RouteGroup + OrdersRoute. Оформляет заказ с оплатой из кошелька в эскроу.
func (o *OrdersHandler) Create(c *gin.Context) {
	var params PlaceOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	items := make([]service.OrderItemArgs, len(params.Items))
	for i, item := range params.Items {
		items[i] = service.OrderItemArgs{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	placed, err := o.orderSvs.Place(reqCtx, service.PlaceOrderArgs{
		BuyerID:         getUserIDFromContext(c),
		Items:           items,
		ShippingAddress: params.ShippingAddress,
		Notes:           params.Notes,
		PickupShopID:    params.PickupShopID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PlacedOrderResponse{
		Order:       newOrderResponse(placed.Order),
		Items:       newOrderItemsResponse(placed.Items),
		Delivery:    newDeliveryResponse(placed.Delivery),
		Transaction: newTransactionResponse(placed.Transaction),
	})
}

// Index GET RouteGroup + OrdersRoute. Заказы текущего пользователя как покупателя.
func (o *OrdersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()
	orders, err := o.orderSvs.BuyerOrders(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, newOrdersResponse(orders))
}

type OrderDetailResponse struct {
	Order    OrderResponse       `json:"order"`
	Items    []OrderItemResponse `json:"items"`
	Delivery *DeliveryResponse   `json:"delivery"`
}

// Show GET RouteGroup + OrderRoute.
func (o *OrdersHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	detail, err := o.orderSvs.Get(reqCtx, getActor(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, OrderDetailResponse{
		Order:    newOrderResponse(detail.Order),
		Items:    newOrderItemsResponse(detail.Items),
		Delivery: newDeliveryResponse(detail.Delivery),
	})
}

// Cancel POST RouteGroup + OrderCancelRoute. Возвращает деньги из эскроу покупателю.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Cancel(reqCtx, getActor(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}
