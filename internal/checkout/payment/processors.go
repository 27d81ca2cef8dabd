package payment

import (
	"context"
	"log/slog"

	"policycore/internal/checkout/models"
	id "policycore/pkg/domain"
)

// CreditCard charges the customer's card.
type CreditCard struct {
	logger *slog.Logger
}

func NewCreditCard(log *slog.Logger) *CreditCard {
	return &CreditCard{logger: orDiscard(log)}
}

func (p *CreditCard) Method() id.PaymentMethod { return id.PaymentMethodCreditCard }

func (p *CreditCard) Process(ctx context.Context, order *models.Order) bool {
	return approve(ctx, p.logger, p.Method(), order)
}

// BankTransfer settles the order by bank transfer.
type BankTransfer struct {
	logger *slog.Logger
}

func NewBankTransfer(log *slog.Logger) *BankTransfer {
	return &BankTransfer{logger: orDiscard(log)}
}

func (p *BankTransfer) Method() id.PaymentMethod { return id.PaymentMethodBankTransfer }

func (p *BankTransfer) Process(ctx context.Context, order *models.Order) bool {
	return approve(ctx, p.logger, p.Method(), order)
}

// QRIS settles the order through a QR code payment.
type QRIS struct {
	logger *slog.Logger
}

func NewQRIS(log *slog.Logger) *QRIS {
	return &QRIS{logger: orDiscard(log)}
}

func (p *QRIS) Method() id.PaymentMethod { return id.PaymentMethodQRIS }

func (p *QRIS) Process(ctx context.Context, order *models.Order) bool {
	return approve(ctx, p.logger, p.Method(), order)
}
