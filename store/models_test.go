package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayStatus(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	future := now.Unix() + 3600
	past := now.Unix() - 3600

	tests := []struct {
		name   string
		intent Intent
		want   Status
	}{
		{
			name:   "fresh intent is pending",
			intent: Intent{Expiry: future},
			want:   StatusPending,
		},
		{
			name:   "deposited before expiry",
			intent: Intent{Expiry: future, Deposited: true},
			want:   StatusDeposited,
		},
		{
			name:   "expired without settlement is failed",
			intent: Intent{Expiry: past},
			want:   StatusFailed,
		},
		{
			name:   "expired and deposited is still failed",
			intent: Intent{Expiry: past, Deposited: true},
			want:   StatusFailed,
		},
		{
			name:   "fulfilled wins over expiry",
			intent: Intent{Expiry: past, Fulfilled: true},
			want:   StatusFulfilled,
		},
		{
			name:   "refunded wins over expiry",
			intent: Intent{Expiry: past, Refunded: true},
			want:   StatusRefunded,
		},
		{
			name:   "fulfilled wins over refunded",
			intent: Intent{Expiry: future, Fulfilled: true, Refunded: true},
			want:   StatusFulfilled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.intent.DisplayStatus(now))
		})
	}
}

func TestIsPending(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	assert.True(t, (&Intent{Expiry: now.Unix() + 1}).IsPending(now))
	assert.True(t, (&Intent{Expiry: now.Unix()}).IsPending(now))
	assert.False(t, (&Intent{Expiry: now.Unix() - 1}).IsPending(now))
	assert.False(t, (&Intent{Expiry: now.Unix() + 1, Fulfilled: true}).IsPending(now))
	assert.False(t, (&Intent{Expiry: now.Unix() + 1, Refunded: true}).IsPending(now))
}
