package repository

import (
	"errors"
	"fmt"
	"testing"

	"taller360/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestStatusWriteGuard(t *testing.T) {
	contains := func(set []entities.MessageStatus, s entities.MessageStatus) bool {
		for _, v := range set {
			if v == s {
				return true
			}
		}
		return false
	}

	cases := []struct {
		target   entities.MessageStatus
		allowed  []entities.MessageStatus
		rejected []entities.MessageStatus
	}{
		{
			target:   entities.MessageStatusSent,
			allowed:  []entities.MessageStatus{entities.MessageStatusPending, entities.MessageStatusSent},
			rejected: []entities.MessageStatus{entities.MessageStatusDelivered, entities.MessageStatusRead, entities.MessageStatusFailed},
		},
		{
			target:   entities.MessageStatusDelivered,
			allowed:  []entities.MessageStatus{entities.MessageStatusPending, entities.MessageStatusSent, entities.MessageStatusDelivered},
			rejected: []entities.MessageStatus{entities.MessageStatusRead, entities.MessageStatusFailed},
		},
		{
			target:   entities.MessageStatusRead,
			allowed:  []entities.MessageStatus{entities.MessageStatusPending, entities.MessageStatusSent, entities.MessageStatusDelivered, entities.MessageStatusRead},
			rejected: []entities.MessageStatus{entities.MessageStatusFailed},
		},
		{
			target:   entities.MessageStatusFailed,
			allowed:  []entities.MessageStatus{entities.MessageStatusPending, entities.MessageStatusSent, entities.MessageStatusFailed},
			rejected: []entities.MessageStatus{entities.MessageStatusDelivered, entities.MessageStatusRead},
		},
	}

	for _, tc := range cases {
		t.Run(string(tc.target), func(t *testing.T) {
			guard := statusWriteGuard(tc.target)
			for _, s := range tc.allowed {
				if !contains(guard, s) {
					t.Fatalf("expected %s in guard for target %s, got %v", s, tc.target, guard)
				}
			}
			for _, s := range tc.rejected {
				if contains(guard, s) {
					t.Fatalf("did not expect %s in guard for target %s, got %v", s, tc.target, guard)
				}
			}
		})
	}
}

func TestIsConditionalCheckFailed(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		if !isConditionalCheckFailed(&types.ConditionalCheckFailedException{}) {
			t.Fatal("expected conditional failure to be detected")
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("operation error DynamoDB: UpdateItem: %w", &types.ConditionalCheckFailedException{})
		if !isConditionalCheckFailed(err) {
			t.Fatal("expected wrapped conditional failure to be detected")
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		if isConditionalCheckFailed(errors.New("throttled")) {
			t.Fatal("unexpected match")
		}
		if isConditionalCheckFailed(nil) {
			t.Fatal("nil must not match")
		}
	})
}
