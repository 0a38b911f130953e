package domain

import (
	"testing"
	"time"
)

// roleOrder lists roles in ascending privilege order.
var roleOrder = []Role{RoleViewer, RoleMember, RoleAdmin, RoleOwner}

func TestRole_AtLeast_TotalOrder(t *testing.T) {
	t.Parallel()

	for i, min := range roleOrder {
		for j, have := range roleOrder {
			want := j >= i
			if got := have.AtLeast(min); got != want {
				t.Errorf("%s.AtLeast(%s) = %v, want %v", have, min, got, want)
			}
		}
	}
}

func TestRole_AtLeast_InvalidRole(t *testing.T) {
	t.Parallel()

	if Role("GUEST").AtLeast(RoleViewer) {
		t.Error("invalid role should rank below VIEWER")
	}
	if !RoleViewer.AtLeast(Role("GUEST")) {
		t.Error("VIEWER should rank above an invalid role")
	}
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	for _, r := range roleOrder {
		if !r.IsValid() {
			t.Errorf("%s should be valid", r)
		}
	}
	for _, r := range []Role{"", "guest", "owner", "SUPERUSER"} {
		if r.IsValid() {
			t.Errorf("%q should be invalid", r)
		}
	}
}

func TestUsageAction_CountsAsConsumption(t *testing.T) {
	t.Parallel()

	cases := map[UsageAction]bool{
		UsageActionUsed:     true,
		UsageActionConsumed: true,
		UsageActionCooked:   true,
		UsageActionWasted:   false,
		UsageActionExpired:  false,
	}
	for action, want := range cases {
		if got := action.CountsAsConsumption(); got != want {
			t.Errorf("%s.CountsAsConsumption() = %v, want %v", action, got, want)
		}
	}
}

func TestInventoryBatch_ExpiresWithin(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 3 * 24 * time.Hour

	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	cases := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{"no expiry date", nil, false},
		{"expires in 2 days", at(2 * 24 * time.Hour), true},
		{"expires exactly at window edge", at(window), true},
		{"expires in 4 days", at(4 * 24 * time.Hour), false},
		{"already expired", at(-time.Hour), false},
		{"expires right now", at(0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := InventoryBatch{ExpiresAt: tc.expiresAt}
			if got := b.ExpiresWithin(now, window); got != tc.want {
				t.Errorf("ExpiresWithin = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFrequency_IsValid(t *testing.T) {
	t.Parallel()

	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly} {
		if !f.IsValid() {
			t.Errorf("%s should be valid", f)
		}
	}
	if Frequency("fortnightly").IsValid() {
		t.Error("unknown frequency should be invalid")
	}
}
