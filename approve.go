package relay

import "context"

// Approver answers "may I proceed" for a proposed edit. It may resolve
// synchronously (policy-based auto-approval) or suspend awaiting a human
// decision. The engine obeys the answer; approval policy itself is external.
type Approver interface {
	RequestApproval(ctx context.Context, message, targetID string) (bool, error)
}
