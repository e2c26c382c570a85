package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionSetStatus(t *testing.T) {
	tests := []struct {
		name       string
		initial    string
		target     string
		wantErr    error
		wantStatus string
	}{
		{
			name:       "pending to paid",
			initial:    StatusPending,
			target:     StatusPaid,
			wantStatus: StatusPaid,
		},
		{
			name:       "paid to shipped",
			initial:    StatusPaid,
			target:     StatusShipped,
			wantStatus: StatusShipped,
		},
		{
			name:       "shipped to delivered",
			initial:    StatusShipped,
			target:     StatusDelivered,
			wantStatus: StatusDelivered,
		},
		{
			name:       "cancel from pending",
			initial:    StatusPending,
			target:     StatusCancelled,
			wantStatus: StatusCancelled,
		},
		{
			name:       "cancel from shipped",
			initial:    StatusShipped,
			target:     StatusCancelled,
			wantStatus: StatusCancelled,
		},
		{
			name:    "skip ahead rejected",
			initial: StatusPending,
			target:  StatusShipped,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "backward rejected",
			initial: StatusShipped,
			target:  StatusPaid,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "delivered is terminal",
			initial: StatusDelivered,
			target:  StatusCancelled,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "cancelled is terminal",
			initial: StatusCancelled,
			target:  StatusPaid,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "unknown status rejected",
			initial: StatusPending,
			target:  "refunded",
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "empty status rejected",
			initial: StatusPending,
			target:  "",
			wantErr: ErrInvalidStatus,
		},
		{
			name:       "idempotent set same status",
			initial:    StatusPaid,
			target:     StatusPaid,
			wantStatus: StatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := &Transaction{
				Reference: "test-ref",
				Status:    tt.initial,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now().Add(-time.Hour),
			}

			err := txn.SetStatus(tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.initial, txn.Status)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, txn.Status)
		})
	}
}

func TestTransactionSetStatusUpdatesTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Hour)
	txn := &Transaction{Status: StatusPending, UpdatedAt: before}

	err := txn.SetStatus(StatusPaid)
	assert.NoError(t, err)
	assert.True(t, txn.UpdatedAt.After(before))
}

func TestTransactionCancel(t *testing.T) {
	t.Run("cancels a pending transaction", func(t *testing.T) {
		txn := &Transaction{Status: StatusPending}
		assert.NoError(t, txn.Cancel())
		assert.Equal(t, StatusCancelled, txn.Status)
	})

	t.Run("idempotent when already cancelled", func(t *testing.T) {
		txn := &Transaction{Status: StatusCancelled}
		assert.NoError(t, txn.Cancel())
		assert.Equal(t, StatusCancelled, txn.Status)
	})

	t.Run("rejected after delivery", func(t *testing.T) {
		txn := &Transaction{Status: StatusDelivered}
		assert.ErrorIs(t, txn.Cancel(), ErrInvalidTransition)
		assert.Equal(t, StatusDelivered, txn.Status)
	})
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidStatus(status), status)
	}
	assert.False(t, ValidStatus("refunded"))
	assert.False(t, ValidStatus(""))
}
