package request

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRequest() *Request {
	return &Request{
		ID:          "req-1",
		Type:        TypeLeave,
		PersonnelID: "personnel-1",
		Status:      StatusPending,
		StartDate:   time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
	}
}

func strPtr(s string) *string { return &s }

func TestApprovePendingRequest(t *testing.T) {
	r := pendingRequest()
	now := time.Date(2026, 4, 5, 10, 0, 0, 0, time.UTC)

	err := r.Approve("approver-1", now)
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, r.Status)
	require.NotNil(t, r.ApproverID)
	assert.Equal(t, "approver-1", *r.ApproverID)
	require.NotNil(t, r.ApprovedAt)
	assert.Equal(t, now, *r.ApprovedAt)
}

func TestApproveNonPendingRequest(t *testing.T) {
	for _, status := range []Status{StatusApproved, StatusRejected, StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			r := pendingRequest()
			r.Status = status

			err := r.Approve("approver-1", time.Now())
			assert.ErrorIs(t, err, ErrRequestNotPending)
			assert.Equal(t, status, r.Status)
		})
	}
}

func TestRejectRequiresReason(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{name: "empty reason", reason: ""},
		{name: "whitespace only reason", reason: "   \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := pendingRequest()

			err := r.Reject("approver-1", tt.reason, time.Now())
			assert.ErrorIs(t, err, ErrRejectReasonRequired)
			assert.Equal(t, StatusPending, r.Status, "a refused rejection must not change state")
			assert.Nil(t, r.RejectReason)
		})
	}
}

func TestRejectTrimsReason(t *testing.T) {
	r := pendingRequest()

	err := r.Reject("approver-1", "  insufficient coverage  ", time.Now())
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, r.Status)
	require.NotNil(t, r.RejectReason)
	assert.Equal(t, "insufficient coverage", *r.RejectReason)
}

func TestCancelByOwner(t *testing.T) {
	r := pendingRequest()

	err := r.Cancel(strPtr("personnel-1"), user.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, r.Status)
}

func TestCancelByAdminNonOwner(t *testing.T) {
	r := pendingRequest()

	err := r.Cancel(strPtr("personnel-2"), user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, r.Status)
}

func TestCancelByNonOwner(t *testing.T) {
	r := pendingRequest()

	err := r.Cancel(strPtr("personnel-2"), user.RoleManager)
	assert.ErrorIs(t, err, ErrNotRequestOwner)
	assert.Equal(t, StatusPending, r.Status)
}

func TestCancelNonPendingRequest(t *testing.T) {
	r := pendingRequest()
	r.Status = StatusApproved

	err := r.Cancel(strPtr("personnel-1"), user.RoleEmployee)
	assert.ErrorIs(t, err, ErrRequestNotPending)
	assert.Equal(t, StatusApproved, r.Status)
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(StatusPending))
	assert.False(t, CanCancel(StatusApproved))
	assert.False(t, CanCancel(StatusRejected))
	assert.False(t, CanCancel(StatusCancelled))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestCanManage(t *testing.T) {
	assert.True(t, CanManage(user.RoleAdmin))
	assert.True(t, CanManage(user.RoleManager))
	assert.False(t, CanManage(user.RoleEmployee))
}

func TestOverlaps(t *testing.T) {
	r := pendingRequest()
	day := func(d int) time.Time { return time.Date(2026, 4, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		expects bool
	}{
		{name: "fully inside", start: day(7), end: day(7), expects: true},
		{name: "touching start boundary", start: day(1), end: day(6), expects: true},
		{name: "touching end boundary", start: day(8), end: day(12), expects: true},
		{name: "before range", start: day(1), end: day(5), expects: false},
		{name: "after range", start: day(9), end: day(12), expects: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expects, r.Overlaps(tt.start, tt.end))
		})
	}
}
