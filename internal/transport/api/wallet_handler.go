package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const defaultTransactionsLimit uint = 50

type WalletHandler struct {
	svs WalletServicer
}

func NewWalletHandler(svs WalletServicer) *WalletHandler {
	return &WalletHandler{
		svs: svs,
	}
}

// Index GET RouteGroup + WalletRoute.
func (w *WalletHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, err := w.svs.Wallet(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWalletResponse(wallet))
}

type AmountParams struct {
	Amount decimal.Decimal `json:"amount"`
}

// Deposit POST RouteGroup + DepositRoute. Без платежного шлюза баланс пополняется сразу, иначе транзакция
// остается pending до сверки.
func (w *WalletHandler) Deposit(c *gin.Context) {
	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tx, err := w.svs.Deposit(reqCtx, getUserIDFromContext(c), params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTransactionResponse(tx))
}

// Withdraw POST RouteGroup + WithdrawRoute.
func (w *WalletHandler) Withdraw(c *gin.Context) {
	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tx, err := w.svs.Withdraw(reqCtx, getUserIDFromContext(c), params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTransactionResponse(tx))
}

// Transactions GET RouteGroup + TransactionsRoute. История операций, новые первыми.
func (w *WalletHandler) Transactions(c *gin.Context) {
	var q PageQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultTransactionsLimit
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	txs, err := w.svs.Transactions(reqCtx, getUserIDFromContext(c), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if len(txs) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]TransactionResponse, len(txs))
	for i := range txs {
		response[i] = newTransactionResponse(&txs[i])
	}
	c.JSON(http.StatusOK, response)
}
