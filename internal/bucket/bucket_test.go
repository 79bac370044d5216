package bucket

import (
	"testing"
	"time"
)

func TestOf(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"zero_pads_month", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), "2024-03"},
		{"december", time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), "2023-12"},
		{"first_of_month", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "2025-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Of(tc.in); got != tc.want {
				t.Errorf("Of(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestWalkBack(t *testing.T) {
	t.Run("oldest_first", func(t *testing.T) {
		anchor := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		got := WalkBack(anchor, 3)
		want := []string{"2024-04", "2024-05", "2024-06"}
		if len(got) != len(want) {
			t.Fatalf("expected %d keys, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("anchor_key_last", func(t *testing.T) {
		anchor := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		got := WalkBack(anchor, 6)
		if got[len(got)-1] != "2024-06" {
			t.Errorf("expected anchor key last, got %q", got[len(got)-1])
		}
	})

	t.Run("thirty_day_steps_can_repeat_keys", func(t *testing.T) {
		// Walking back 30 days from March 31 lands on March 1: the key
		// repeats and February is skipped. This approximation is part of
		// the trend contract.
		anchor := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		got := WalkBack(anchor, 2)
		if got[0] != "2024-03" || got[1] != "2024-03" {
			t.Errorf("expected [2024-03 2024-03], got %v", got)
		}
	})

	t.Run("non_positive_n", func(t *testing.T) {
		if got := WalkBack(time.Now(), 0); got != nil {
			t.Errorf("expected nil for n=0, got %v", got)
		}
	})
}
