package payment

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policycore/internal/checkout/models"
	"policycore/internal/checkout/ports"
	id "policycore/pkg/domain"
	dErrors "policycore/pkg/domain-errors"
)

var (
	_ ports.PaymentProcessor = (*CreditCard)(nil)
	_ ports.PaymentProcessor = (*BankTransfer)(nil)
	_ ports.PaymentProcessor = (*QRIS)(nil)
)

func TestForMethod(t *testing.T) {
	tests := []struct {
		method id.PaymentMethod
		want   any
	}{
		{id.PaymentMethodCreditCard, &CreditCard{}},
		{id.PaymentMethodBankTransfer, &BankTransfer{}},
		{id.PaymentMethodQRIS, &QRIS{}},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			p, err := ForMethod(tt.method, nil)
			require.NoError(t, err)
			assert.IsType(t, tt.want, p)
		})
	}

	t.Run("unknown method", func(t *testing.T) {
		_, err := ForMethod(id.PaymentMethod("cash"), nil)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestProcessors(t *testing.T) {
	ctx := context.Background()
	processors := []ports.PaymentProcessor{
		NewCreditCard(nil),
		NewBankTransfer(nil),
		NewQRIS(nil),
	}

	for _, p := range processors {
		t.Run(p.(interface{ Method() id.PaymentMethod }).Method().String(), func(t *testing.T) {
			order := models.NewOrder("Andi", decimal.NewFromInt(500000))
			assert.True(t, p.Process(ctx, order))
			assert.Equal(t, models.StatusOpen, order.Status(), "processor must not touch status")

			assert.False(t, p.Process(ctx, models.NewOrder("Andi", decimal.Zero)))
			assert.False(t, p.Process(ctx, models.NewOrder("Andi", decimal.NewFromInt(-5))))
			assert.False(t, p.Process(ctx, nil))
		})
	}
}

func TestProcessorLogsCharge(t *testing.T) {
	var buf bytes.Buffer
	p := NewQRIS(slog.New(slog.NewTextHandler(&buf, nil)))

	p.Process(context.Background(), models.NewOrder("Budi", decimal.RequireFromString("100000.5")))
	assert.Contains(t, buf.String(), "payment processed")
	assert.Contains(t, buf.String(), "method=qris")
	assert.Contains(t, buf.String(), "amount=100000.50")
}
