package handlers

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/respond"
)

// BalanceReader returns the caller's wallet.
type BalanceReader interface {
	Balance(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// Transferer moves funds between wallets.
type Transferer interface {
	Transfer(ctx context.Context, userID uuid.UUID, amount int64, walletNumber string) (*models.TransactionDB, error)
}

// TransactionLister lists the caller's transactions.
type TransactionLister interface {
	Transactions(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
}

// NewBalanceHandler returns an HTTP handler for retrieving the wallet balance.
// @Summary Get wallet balance
// @Description Returns the balance in minor units and the wallet number. The wallet is created on first use.
// @Tags wallet
// @Produce json
// @Success 200 {object} models.BalanceResponse "Wallet balance"
// @Failure 401 {object} respond.ErrorResponse "Unauthorized"
// @Failure 403 {object} respond.ErrorResponse "Missing read permission"
// @Failure 500 {object} respond.ErrorResponse "Internal server error"
// @Router /wallet/balance [get]
// @Security BearerAuth
// @Security ApiKeyAuth
func NewBalanceHandler(svc BalanceReader, principalGetter PrincipalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, ok := principalGetter(ctx)
		if !ok {
			respond.Error(w, apperrors.ErrUnauthenticated)
			return
		}

		wallet, err := svc.Balance(ctx, principal.UserID)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, models.BalanceResponse{
			Balance:      wallet.Balance,
			WalletNumber: wallet.WalletNumber,
		})
	}
}

// transferFailures are reported to clients as a failed transfer rather than an HTTP error.
var transferFailures = []*apperrors.Error{
	apperrors.ErrInsufficientFunds,
	apperrors.ErrSelfTransferDenied,
	apperrors.ErrRecipientNotFound,
}

// NewTransferHandler returns an HTTP handler for wallet to wallet transfers.
// @Summary Transfer funds
// @Description Moves funds to another wallet. Insufficient funds, self transfers and unknown recipients are reported with status "failed".
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.TransferRequest true "Transfer Request"
// @Success 200 {object} models.TransferResponse "Transfer outcome"
// @Failure 400 {object} respond.ErrorResponse "invalid_input"
// @Failure 401 {object} respond.ErrorResponse "Unauthorized"
// @Failure 403 {object} respond.ErrorResponse "Missing transfer permission"
// @Failure 500 {object} respond.ErrorResponse "Internal server error"
// @Router /wallet/transfer [post]
// @Security BearerAuth
// @Security ApiKeyAuth
func NewTransferHandler(svc Transferer, principalGetter PrincipalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, ok := principalGetter(ctx)
		if !ok {
			respond.Error(w, apperrors.ErrUnauthenticated)
			return
		}

		var req models.TransferRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		txn, err := svc.Transfer(ctx, principal.UserID, req.Amount, req.WalletNumber)
		if err != nil {
			for _, failure := range transferFailures {
				if errors.Is(err, failure) {
					respond.JSON(w, http.StatusOK, models.TransferResponse{
						Status:  "failed",
						Message: failure.Message,
					})
					return
				}
			}
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, models.TransferResponse{
			Status:    "success",
			Message:   "Transfer completed successfully",
			Reference: txn.Reference,
		})
	}
}

// NewTransactionsHandler returns an HTTP handler listing the caller's transactions.
// @Summary Transaction history
// @Description Deposits and transfers involving the caller, newest first.
// @Tags wallet
// @Produce json
// @Success 200 {object} models.TransactionsResponse "Transactions"
// @Failure 401 {object} respond.ErrorResponse "Unauthorized"
// @Failure 403 {object} respond.ErrorResponse "Missing read permission"
// @Failure 500 {object} respond.ErrorResponse "Internal server error"
// @Router /wallet/transactions [get]
// @Security BearerAuth
// @Security ApiKeyAuth
func NewTransactionsHandler(svc TransactionLister, principalGetter PrincipalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, ok := principalGetter(ctx)
		if !ok {
			respond.Error(w, apperrors.ErrUnauthenticated)
			return
		}

		txns, err := svc.Transactions(ctx, principal.UserID)
		if err != nil {
			respond.Error(w, err)
			return
		}

		items := make([]models.TransactionItem, 0, len(txns))
		for _, txn := range txns {
			items = append(items, models.TransactionItem{
				Reference: txn.Reference,
				Type:      txn.Type,
				Amount:    txn.Amount,
				Status:    txn.Status,
				CreatedAt: txn.CreatedAt.UTC().Format(time.RFC3339),
			})
		}

		respond.JSON(w, http.StatusOK, models.TransactionsResponse{Transactions: items})
	}
}
