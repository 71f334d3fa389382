package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrderStatus(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to processing", OrderStatusPending, OrderStatusProcessing, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"pending cannot skip to shipped", OrderStatusPending, OrderStatusShipped, false},
		{"processing to shipped", OrderStatusProcessing, OrderStatusShipped, true},
		{"processing to cancelled", OrderStatusProcessing, OrderStatusCancelled, true},
		{"shipped to completed", OrderStatusShipped, OrderStatusCompleted, true},
		{"shipped cannot be cancelled", OrderStatusShipped, OrderStatusCancelled, false},
		{"completed is terminal", OrderStatusCompleted, OrderStatusPending, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusProcessing, false},
		{"no self transition", OrderStatusPending, OrderStatusPending, false},
		{"unknown source", "draft", OrderStatusPending, false},
		{"unknown target", OrderStatusPending, "refunded", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionOrderStatus(tt.from, tt.to))
		})
	}
}
