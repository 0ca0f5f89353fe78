package handlers

//go:generate mockgen -source=deposit.go -destination=deposit_mock.go -package=handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/middlewares"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/respond"
)

// PaystackSignatureHeader carries the webhook HMAC.
const PaystackSignatureHeader = "x-paystack-signature"

// DepositInitiator starts deposits.
type DepositInitiator interface {
	InitiateDeposit(ctx context.Context, userID uuid.UUID, email string, amount int64, reference string) (*models.TransactionDB, error)
}

// DepositStatusReader reads and refreshes deposit state.
type DepositStatusReader interface {
	DepositStatus(ctx context.Context, userID uuid.UUID, reference string, refresh bool) (*models.TransactionDB, error)
}

// ChargeEventHandler settles deposits from provider events.
type ChargeEventHandler interface {
	HandleChargeEvent(ctx context.Context, event models.ChargeResult) error
}

// SignatureVerifier authenticates webhook payloads.
type SignatureVerifier interface {
	VerifySignature(payload []byte, signature string) error
}

// NewDepositHandler returns an HTTP handler for starting a Paystack deposit.
// @Summary Deposit funds
// @Description Opens a Paystack checkout for the amount. Passing a reference makes the request idempotent.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.DepositRequest true "Deposit Request"
// @Success 201 {object} models.DepositResponse "Checkout created"
// @Failure 400 {object} respond.ErrorResponse "invalid_input"
// @Failure 401 {object} respond.ErrorResponse "Unauthorized"
// @Failure 402 {object} respond.ErrorResponse "payment_initiation_failed"
// @Failure 403 {object} respond.ErrorResponse "Missing deposit permission"
// @Failure 409 {object} respond.ErrorResponse "reference_conflict"
// @Router /wallet/deposit [post]
// @Security BearerAuth
// @Security ApiKeyAuth
func NewDepositHandler(svc DepositInitiator, principalGetter PrincipalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, ok := principalGetter(ctx)
		if !ok {
			respond.Error(w, apperrors.ErrUnauthenticated)
			return
		}

		var req models.DepositRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		txn, err := svc.InitiateDeposit(ctx, principal.UserID, principal.Email, req.Amount, req.Reference)
		if err != nil {
			respond.Error(w, err)
			return
		}

		var authURL string
		if txn.AuthorizationURL != nil {
			authURL = *txn.AuthorizationURL
		}
		respond.JSON(w, http.StatusCreated, models.DepositResponse{
			Reference:        txn.Reference,
			AuthorizationURL: authURL,
		})
	}
}

// NewDepositStatusHandler returns an HTTP handler reporting a deposit's status.
// @Summary Deposit status
// @Description Returns the deposit state. Pending deposits, or any deposit with refresh=true, are verified with Paystack first.
// @Tags wallet
// @Produce json
// @Param reference path string true "Deposit reference"
// @Param refresh query bool false "Force verification with Paystack"
// @Success 200 {object} models.DepositStatusResponse "Deposit status"
// @Failure 400 {object} respond.ErrorResponse "invalid_input"
// @Failure 401 {object} respond.ErrorResponse "Unauthorized"
// @Failure 403 {object} respond.ErrorResponse "Not the payer"
// @Failure 404 {object} respond.ErrorResponse "Not found"
// @Router /wallet/deposit/{reference}/status [get]
// @Security BearerAuth
// @Security ApiKeyAuth
func NewDepositStatusHandler(svc DepositStatusReader, principalGetter PrincipalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, ok := principalGetter(ctx)
		if !ok {
			respond.Error(w, apperrors.ErrUnauthenticated)
			return
		}

		reference := chi.URLParam(r, "reference")
		if reference == "" {
			respond.Error(w, apperrors.Validation("reference is required"))
			return
		}

		var refresh bool
		if raw := r.URL.Query().Get("refresh"); raw != "" {
			var err error
			if refresh, err = strconv.ParseBool(raw); err != nil {
				respond.Error(w, apperrors.Validation("refresh must be true or false"))
				return
			}
		}

		txn, err := svc.DepositStatus(ctx, principal.UserID, reference, refresh)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, models.DepositStatusResponse{
			Reference: txn.Reference,
			Status:    txn.Status,
			Amount:    txn.Amount,
		})
	}
}

// NewPaystackWebhookHandler returns an HTTP handler for Paystack webhook events.
// @Summary Paystack webhook
// @Description Verifies the HMAC-SHA512 signature and settles the referenced deposit exactly once.
// @Tags wallet
// @Accept json
// @Produce json
// @Param x-paystack-signature header string true "HMAC-SHA512 of the body"
// @Param request body models.WebhookEvent true "Paystack event"
// @Success 200 {object} models.WebhookAck "Acknowledged"
// @Failure 400 {object} respond.ErrorResponse "missing_signature, invalid_signature or invalid_input"
// @Failure 500 {object} respond.ErrorResponse "Settlement failed, Paystack retries"
// @Router /wallet/paystack/webhook [post]
func NewPaystackWebhookHandler(verifier SignatureVerifier, svc ChargeEventHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			respond.Error(w, apperrors.Validation("Unreadable request body"))
			return
		}

		if err := verifier.VerifySignature(payload, r.Header.Get(PaystackSignatureHeader)); err != nil {
			logger.Log.Warnw("rejected webhook", "error", err, "requestID", middlewares.RequestIDFromContext(r.Context()))
			respond.Error(w, err)
			return
		}

		var event models.WebhookEvent
		if err := decodeBytes(payload, &event); err != nil {
			respond.Error(w, err)
			return
		}
		if event.Event == "" {
			respond.Error(w, apperrors.Validation("event is required"))
			return
		}

		if err := svc.HandleChargeEvent(r.Context(), event.ChargeResult()); err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, models.WebhookAck{Status: true})
	}
}
