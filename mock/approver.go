package mock

import (
	"context"

	"github.com/NekoNekoNiko120/relay"
)

// Interface compliance check.
var _ relay.Approver = (*Approver)(nil)

// Approver is a test double for relay.Approver.
// Set RequestApprovalFn before calling RequestApproval.
type Approver struct {
	RequestApprovalFn func(ctx context.Context, message, targetID string) (bool, error)
}

// RequestApproval delegates to RequestApprovalFn.
func (a *Approver) RequestApproval(ctx context.Context, message, targetID string) (bool, error) {
	return a.RequestApprovalFn(ctx, message, targetID)
}
