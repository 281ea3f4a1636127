package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestApprovalBadgeTotalOverTriState(t *testing.T) {
	cases := []struct {
		name     string
		approval *bool
		want     string
	}{
		{"undecided", nil, ReturnBadgePendingApproval},
		{"approved", boolPtr(true), ReturnBadgeRefundApproved},
		{"rejected", boolPtr(false), ReturnBadgeRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &ReturnRequest{SellerApproval: tc.approval}
			assert.Equal(t, tc.want, r.ApprovalBadge())
		})
	}
}

func TestApprovalBadgeIgnoresStatusColumn(t *testing.T) {
	// The coarse status mirror must never influence the badge.
	r := &ReturnRequest{SellerApproval: nil, Status: ReturnStatusApproved}
	assert.Equal(t, ReturnBadgePendingApproval, r.ApprovalBadge())

	r = &ReturnRequest{SellerApproval: boolPtr(false), Status: ReturnStatusPending}
	assert.Equal(t, ReturnBadgeRejected, r.ApprovalBadge())
}

func TestIsDecided(t *testing.T) {
	assert.False(t, (&ReturnRequest{}).IsDecided())
	assert.True(t, (&ReturnRequest{SellerApproval: boolPtr(true)}).IsDecided())
	assert.True(t, (&ReturnRequest{SellerApproval: boolPtr(false)}).IsDecided())
}

func TestRejectedRequestCarriesNoRefund(t *testing.T) {
	r := &ReturnRequest{SellerApproval: boolPtr(false), SellerNotes: "out of window"}
	assert.Nil(t, r.RefundAmount)
	assert.Equal(t, ReturnBadgeRejected, r.ApprovalBadge())
}

func TestIsValidReturnReason(t *testing.T) {
	for _, reason := range ValidReturnReasons {
		assert.True(t, IsValidReturnReason(reason), "reason %s", reason)
	}
	assert.False(t, IsValidReturnReason("buyer_remorse"))
	assert.False(t, IsValidReturnReason(""))
	assert.False(t, IsValidReturnReason("Damaged"), "enum is case sensitive")
}
