package entities

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want PaymentStatus
	}{
		{"approved", PaymentStatusApproved},
		{"APPROVED", PaymentStatusApproved},
		{"processed", PaymentStatusApproved},
		{"canceled", PaymentStatusCancelled},
		{"cancelled", PaymentStatusCancelled},
		{"authorized", PaymentStatusAuthorized},
		{"in_process", PaymentStatusInProcess},
		{"rejected", PaymentStatusRejected},
		{"refunded", PaymentStatusRefunded},
		{"charged_back", PaymentStatusChargedBack},
		{"pending", PaymentStatusPending},
		{"", PaymentStatusPending},
		{"whatever", PaymentStatusPending},
	}

	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			if got := NormalizeStatus(c.raw); got != c.want {
				t.Fatalf("NormalizeStatus(%q) = %q, want %q", c.raw, got, c.want)
			}
		})
	}
}

func TestIsValidSessionTier(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		if !IsValidSessionTier(n) {
			t.Fatalf("expected %d to be a valid tier", n)
		}
	}
	for _, n := range []int{0, 1, 4, 6, 10, -2} {
		if IsValidSessionTier(n) {
			t.Fatalf("expected %d to be rejected", n)
		}
	}
}

func TestPayment_MergeMetadata(t *testing.T) {
	t.Run("nil incoming is a no-op", func(t *testing.T) {
		p := Payment{Metadata: map[string]any{"sessions": 3}}
		p.MergeMetadata(nil)
		if len(p.Metadata) != 1 {
			t.Fatalf("expected metadata untouched, got %v", p.Metadata)
		}
	})

	t.Run("new keys win over recorded ones", func(t *testing.T) {
		p := Payment{Metadata: map[string]any{"sessions": 3, "type": "preapproval"}}
		p.MergeMetadata(map[string]any{"sessions": 5, "reason": "Plano"})

		if p.Metadata["sessions"] != 5 {
			t.Fatalf("expected sessions=5, got %v", p.Metadata["sessions"])
		}
		if p.Metadata["type"] != "preapproval" {
			t.Fatalf("expected type preserved, got %v", p.Metadata["type"])
		}
		if p.Metadata["reason"] != "Plano" {
			t.Fatalf("expected reason merged, got %v", p.Metadata["reason"])
		}
	})

	t.Run("initializes nil map", func(t *testing.T) {
		var p Payment
		p.MergeMetadata(map[string]any{"sessions": 2})
		if p.Metadata["sessions"] != 2 {
			t.Fatalf("expected sessions=2, got %v", p.Metadata)
		}
	})
}
