package entities

import "testing"

func TestMessageStatusCanAdvanceTo(t *testing.T) {
	t.Run("forward transitions", func(t *testing.T) {
		forward := []struct {
			from, to MessageStatus
		}{
			{MessageStatusPending, MessageStatusSent},
			{MessageStatusPending, MessageStatusDelivered},
			{MessageStatusSent, MessageStatusDelivered},
			{MessageStatusSent, MessageStatusRead},
			{MessageStatusDelivered, MessageStatusRead},
			{MessageStatusPending, MessageStatusFailed},
			{MessageStatusSent, MessageStatusFailed},
		}
		for _, tr := range forward {
			if !tr.from.CanAdvanceTo(tr.to) {
				t.Fatalf("expected %s -> %s to be allowed", tr.from, tr.to)
			}
		}
	})

	t.Run("backward and terminal transitions rejected", func(t *testing.T) {
		rejected := []struct {
			from, to MessageStatus
		}{
			{MessageStatusSent, MessageStatusPending},
			{MessageStatusDelivered, MessageStatusSent},
			{MessageStatusDelivered, MessageStatusFailed},
			{MessageStatusRead, MessageStatusDelivered},
			{MessageStatusRead, MessageStatusFailed},
			{MessageStatusFailed, MessageStatusSent},
			{MessageStatusFailed, MessageStatusDelivered},
			{MessageStatusSent, MessageStatusSent},
		}
		for _, tr := range rejected {
			if tr.from.CanAdvanceTo(tr.to) {
				t.Fatalf("expected %s -> %s to be rejected", tr.from, tr.to)
			}
		}
	})
}

func TestMessageStatusIsTerminal(t *testing.T) {
	if !MessageStatusRead.IsTerminal() {
		t.Fatal("read should be terminal")
	}
	if !MessageStatusFailed.IsTerminal() {
		t.Fatal("failed should be terminal")
	}
	if MessageStatusDelivered.IsTerminal() {
		t.Fatal("delivered should not be terminal")
	}
}

func TestMessageStatusFromProvider(t *testing.T) {
	cases := []struct {
		provider string
		want     MessageStatus
		ok       bool
	}{
		{"queued", MessageStatusPending, true},
		{"sending", MessageStatusPending, true},
		{"accepted", MessageStatusPending, true},
		{"sent", MessageStatusSent, true},
		{"delivered", MessageStatusDelivered, true},
		{"read", MessageStatusRead, true},
		{"failed", MessageStatusFailed, true},
		{"undelivered", MessageStatusFailed, true},
		{"scheduled", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := MessageStatusFromProvider(tc.provider)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("MessageStatusFromProvider(%q) = (%s, %v), want (%s, %v)", tc.provider, got, ok, tc.want, tc.ok)
		}
	}
}
