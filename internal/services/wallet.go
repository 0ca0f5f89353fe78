package services

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/segmentio/kafka-go"
)

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// WalletStore reads wallets and applies atomic balance changes.
type WalletStore interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)             // Returns the user's wallet, creating it when absent
	GetByNumber(ctx context.Context, walletNumber string) (*models.WalletDB, error)          // Returns nil when no wallet matches
	Credit(ctx context.Context, walletID uuid.UUID, amount int64) (balance int64, err error) // Adds amount
	Debit(ctx context.Context, walletID uuid.UUID, amount int64) (balance int64, err error)  // Subtracts amount, sql.ErrNoRows when short
}

// TransactionStore persists deposits and transfers.
type TransactionStore interface {
	Create(ctx context.Context, txn *models.TransactionDB) error
	GetByReference(ctx context.Context, reference string) (*models.TransactionDB, error)
	GetByReferenceForUpdate(ctx context.Context, reference string) (*models.TransactionDB, error)
	Settle(ctx context.Context, reference string, status models.TransactionStatus, amount int64, paidAt *time.Time) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
}

// WebhookEventMarker records processed webhook deliveries.
type WebhookEventMarker interface {
	MarkProcessed(ctx context.Context, eventKey string) (bool, error) // False when the key was already recorded
}

// PaymentProvider creates and verifies hosted checkout charges.
type PaymentProvider interface {
	InitializeTransaction(ctx context.Context, email string, amount int64, reference string) (*models.PaymentCheckout, error)
	VerifyTransaction(ctx context.Context, reference string) (*models.ChargeResult, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Settlement outcomes reported to metrics and logs.
const (
	outcomeSettled        = "settled"
	outcomeDuplicate      = "duplicate"
	outcomeUnknown        = "unknown_reference"
	outcomeAlreadySettled = "already_settled"
	outcomeInFlight       = "in_flight"
	outcomeIgnored        = "ignored"
	outcomeInvalid        = "invalid"
	outcomeError          = "error"
)

// WalletService handles deposits, transfers and balance reads and publishes
// ledger events to Kafka.
type WalletService struct {
	tx          Transactor
	wallets     WalletStore
	txns        TransactionStore
	events      WebhookEventMarker
	payments    PaymentProvider
	kafkaWriter KafkaWriter
}

// NewWalletService creates a new WalletService. kafkaWriter may be nil.
func NewWalletService(
	tx Transactor,
	wallets WalletStore,
	txns TransactionStore,
	events WebhookEventMarker,
	payments PaymentProvider,
	kafkaWriter KafkaWriter,
) *WalletService {
	return &WalletService{
		tx:          tx,
		wallets:     wallets,
		txns:        txns,
		events:      events,
		payments:    payments,
		kafkaWriter: kafkaWriter,
	}
}

// publishLedgerEvent publishes a balance change to Kafka.
func (s *WalletService) publishLedgerEvent(ctx context.Context, event models.LedgerEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "reference", event.Reference)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger event for Kafka", "reference", event.Reference, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Reference),
		Value: data,
	}

	// The balance change is committed; a client hanging up must not drop its event.
	if err := s.kafkaWriter.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger event to Kafka", "reference", event.Reference, "error", err)
	} else {
		logger.Log.Infow("Ledger event published to Kafka", "reference", event.Reference, "amount", event.Amount)
	}
}

func newLedgerEvent(typ models.TransactionType, reference string, amount int64, userID uuid.UUID) models.LedgerEvent {
	return models.LedgerEvent{
		EventID:   uuid.NewString(),
		Type:      typ,
		Reference: reference,
		Amount:    amount,
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}
}

// InitiateDeposit opens a checkout session for amount minor units.
// A non-empty reference makes the call idempotent for the same payer.
func (s *WalletService) InitiateDeposit(
	ctx context.Context,
	userID uuid.UUID,
	email string,
	amount int64,
	reference string,
) (*models.TransactionDB, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	if reference != "" {
		existing, err := s.replayDeposit(ctx, userID, reference)
		if err != nil || existing != nil {
			return existing, err
		}
	} else {
		ref, err := randomHex(16)
		if err != nil {
			return nil, err
		}
		reference = "dep_" + ref
	}

	checkout, err := s.payments.InitializeTransaction(ctx, email, amount, reference)
	if err != nil {
		metrics.RecordDeposit("initiation_failed")
		return nil, err
	}

	txn := &models.TransactionDB{
		ID:               uuid.New(),
		Reference:        reference,
		Amount:           amount,
		Type:             models.TransactionDeposit,
		Status:           models.StatusPending,
		AuthorizationURL: &checkout.AuthorizationURL,
		UserID:           uuid.NullUUID{UUID: userID, Valid: true},
	}
	if err := s.txns.Create(ctx, txn); err != nil {
		// A concurrent request with the same reference was saved first.
		if errors.Is(err, apperrors.ErrReferenceConflict) {
			existing, lookupErr := s.replayDeposit(ctx, userID, reference)
			if lookupErr != nil || existing != nil {
				return existing, lookupErr
			}
		}
		logger.Log.Errorw("failed to save deposit", "reference", reference, "userID", userID, "error", err)
		return nil, err
	}

	metrics.RecordDeposit("initiated")
	logger.Log.Infow("deposit initiated", "reference", reference, "userID", userID, "amount", amount)
	return txn, nil
}

// replayDeposit returns the stored deposit for reference when userID paid it,
// ErrReferenceConflict when another transaction owns it, and nil when unused.
func (s *WalletService) replayDeposit(ctx context.Context, userID uuid.UUID, reference string) (*models.TransactionDB, error) {
	existing, err := s.txns.GetByReference(ctx, reference)
	if err != nil {
		logger.Log.Errorw("failed to look up deposit reference", "reference", reference, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if existing.Type == models.TransactionDeposit && existing.IsPayer(userID) {
		logger.Log.Infow("deposit replayed", "reference", reference, "userID", userID)
		return existing, nil
	}
	logger.Log.Warnw("deposit reference owned by another transaction", "reference", reference, "userID", userID)
	return nil, apperrors.ErrReferenceConflict
}

// HandleChargeEvent settles a deposit from a payment provider webhook.
// Replayed events, unknown references and non-charge events are no-ops.
func (s *WalletService) HandleChargeEvent(ctx context.Context, event models.ChargeResult) error {
	if !strings.HasPrefix(event.Event, "charge.") {
		logger.Log.Infow("ignoring webhook event", "event", event.Event)
		metrics.RecordWebhookEvent(event.Event, outcomeIgnored)
		return nil
	}
	if event.Reference == "" {
		logger.Log.Warnw("charge event without reference", "event", event.Event)
		metrics.RecordWebhookEvent(event.Event, outcomeInvalid)
		return apperrors.Validation("data.reference is required")
	}

	_, outcome, err := s.settle(ctx, event.Event+":"+event.Reference, event)
	metrics.RecordWebhookEvent(event.Event, outcome)
	return err
}

// DepositStatus returns a deposit of userID, re-verifying it with the
// provider when it is still pending or refresh is set.
func (s *WalletService) DepositStatus(ctx context.Context, userID uuid.UUID, reference string, refresh bool) (*models.TransactionDB, error) {
	txn, err := s.txns.GetByReference(ctx, reference)
	if err != nil {
		logger.Log.Errorw("failed to get deposit", "reference", reference, "error", err)
		return nil, err
	}
	if txn == nil || txn.Type != models.TransactionDeposit {
		return nil, apperrors.ErrTransactionNotFound
	}
	if !txn.IsPayer(userID) {
		return nil, apperrors.ErrNotTransactionOwner
	}

	if txn.Status != models.StatusPending && !refresh {
		return txn, nil
	}

	result, err := s.payments.VerifyTransaction(ctx, reference)
	if err != nil {
		logger.Log.Warnw("deposit verification failed, returning cached status", "reference", reference, "error", err)
		return txn, nil
	}
	result.Reference = reference

	updated, _, err := s.settle(ctx, "", *result)
	if err != nil {
		logger.Log.Errorw("failed to settle verified deposit", "reference", reference, "error", err)
		return txn, nil
	}
	if updated != nil {
		return updated, nil
	}
	return txn, nil
}

// settle applies a provider charge result to a pending deposit in one
// database transaction. An empty marker skips the replay check.
// It returns the deposit as stored after settlement when it was found.
func (s *WalletService) settle(ctx context.Context, marker string, result models.ChargeResult) (*models.TransactionDB, string, error) {
	status, final := result.SettledStatus()
	if !final {
		logger.Log.Infow("charge not final yet", "reference", result.Reference, "status", result.Status)
		return nil, outcomeInFlight, nil
	}

	var (
		stored  *models.TransactionDB
		credit  *models.LedgerEvent
		outcome = outcomeSettled
	)

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if marker != "" {
			fresh, err := s.events.MarkProcessed(ctx, marker)
			if err != nil {
				return err
			}
			if !fresh {
				outcome = outcomeDuplicate
				return nil
			}
		}

		txn, err := s.txns.GetByReferenceForUpdate(ctx, result.Reference)
		if err != nil {
			return err
		}
		if txn == nil {
			logger.Log.Warnw("charge for unknown reference", "reference", result.Reference)
			outcome = outcomeUnknown
			return nil
		}
		stored = txn
		if txn.Type != models.TransactionDeposit || txn.Status != models.StatusPending || !txn.UserID.Valid {
			outcome = outcomeAlreadySettled
			return nil
		}

		amount := result.Amount
		if amount <= 0 {
			amount = txn.Amount
		}

		if status == models.StatusSuccess {
			wallet, err := s.wallets.GetOrCreate(ctx, txn.UserID.UUID)
			if err != nil {
				return err
			}
			balance, err := s.wallets.Credit(ctx, wallet.ID, amount)
			if err != nil {
				return err
			}
			event := newLedgerEvent(models.TransactionDeposit, txn.Reference, amount, txn.UserID.UUID)
			credit = &event
			logger.Log.Infow("wallet credited", "reference", txn.Reference, "walletID", wallet.ID, "amount", amount, "balance", balance)
		}

		if err := s.txns.Settle(ctx, txn.Reference, status, amount, result.PaidAt); err != nil {
			return err
		}

		txn.Status = status
		txn.Amount = amount
		txn.PaidAt = result.PaidAt
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to settle charge", "reference", result.Reference, "error", err)
		return nil, outcomeError, err
	}

	if credit != nil {
		metrics.RecordCredit(credit.Amount)
		s.publishLedgerEvent(ctx, *credit)
	}
	return stored, outcome, nil
}

// Balance returns the user's wallet, creating it when absent.
func (s *WalletService) Balance(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return nil, err
	}
	return wallet, nil
}

// Transfer moves amount from the caller's wallet to the wallet numbered
// walletNumber. Both balance updates and the transaction record commit together.
func (s *WalletService) Transfer(ctx context.Context, userID uuid.UUID, amount int64, walletNumber string) (*models.TransactionDB, error) {
	txn, err := s.transfer(ctx, userID, amount, walletNumber)
	if err != nil {
		if appErr, ok := apperrors.From(err); ok {
			metrics.RecordTransfer(appErr.Code)
		} else {
			metrics.RecordTransfer(outcomeError)
		}
		return nil, err
	}
	metrics.RecordTransfer("success")

	event := newLedgerEvent(models.TransactionTransfer, txn.Reference, txn.Amount, userID)
	event.Counterparty = txn.ReceiverID.UUID.String()
	s.publishLedgerEvent(ctx, event)
	return txn, nil
}

func (s *WalletService) transfer(ctx context.Context, userID uuid.UUID, amount int64, walletNumber string) (*models.TransactionDB, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	ref, err := randomHex(16)
	if err != nil {
		return nil, err
	}

	var txn *models.TransactionDB
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		sender, err := s.wallets.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}

		recipient, err := s.wallets.GetByNumber(ctx, walletNumber)
		if err != nil {
			return err
		}
		if recipient == nil {
			return apperrors.ErrRecipientNotFound
		}
		if recipient.UserID == userID {
			return apperrors.ErrSelfTransferDenied
		}
		if sender.Balance < amount {
			return apperrors.ErrInsufficientFunds
		}

		debit := func() error {
			if _, err := s.wallets.Debit(ctx, sender.ID, amount); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return apperrors.ErrInsufficientFunds
				}
				return err
			}
			return nil
		}
		credit := func() error {
			_, err := s.wallets.Credit(ctx, recipient.ID, amount)
			return err
		}

		// Rows are locked in wallet id order so opposite transfers cannot deadlock.
		steps := []func() error{debit, credit}
		if bytes.Compare(recipient.ID[:], sender.ID[:]) < 0 {
			steps = []func() error{credit, debit}
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}

		txn = &models.TransactionDB{
			ID:         uuid.New(),
			Reference:  "trf_" + ref,
			Amount:     amount,
			Type:       models.TransactionTransfer,
			Status:     models.StatusSuccess,
			SenderID:   uuid.NullUUID{UUID: userID, Valid: true},
			ReceiverID: uuid.NullUUID{UUID: recipient.UserID, Valid: true},
		}
		return s.txns.Create(ctx, txn)
	})
	if err != nil {
		if _, ok := apperrors.From(err); !ok {
			logger.Log.Errorw("transfer failed", "userID", userID, "walletNumber", walletNumber, "amount", amount, "error", err)
		}
		return nil, err
	}

	logger.Log.Infow("transfer completed", "reference", txn.Reference, "userID", userID, "amount", amount)
	return txn, nil
}

// Transactions returns every transaction the user paid, sent or received, newest first.
func (s *WalletService) Transactions(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	txns, err := s.txns.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}
