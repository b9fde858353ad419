// Package workflow drives the card request approval flow: operator
// confirmation, submission to the backend and outcome notification, with a
// busy guard so one approval runs at a time.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/devendraInfograins/CardApp/internal/console/gateway"
	"github.com/devendraInfograins/CardApp/internal/models"
)

// State is the approval flow position.
type State string

// Approval states.
const (
	// StateIdle means no approval is in flight.
	StateIdle State = "IDLE"
	// StateConfirming means the operator is being asked to confirm.
	StateConfirming State = "CONFIRMING"
	// StateSubmitting means the approval is on its way to the backend.
	StateSubmitting State = "SUBMITTING"
	// StateApproved means the last approval succeeded.
	StateApproved State = "APPROVED"
	// StateFailed means the last approval was rejected by the backend.
	StateFailed State = "FAILED"
)

// Flow errors.
var (
	// ErrBusy means another approval is already in flight.
	ErrBusy = errors.New("workflow: approval already in progress")
	// ErrNotPending means the request is not in the PENDING status.
	ErrNotPending = errors.New("workflow: card request is not pending")
	// ErrDeclined means the operator declined the confirmation prompt.
	ErrDeclined = errors.New("workflow: approval declined")
)

// Confirmer asks the operator to confirm an approval before submission.
type Confirmer interface {
	Confirm(ctx context.Context, request models.CardRequest) (bool, error)
}

// Notifier surfaces approval outcomes to the operator.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Submitter sends the approval to the backend. *gateway.Client satisfies it.
type Submitter interface {
	ApproveCardRequest(ctx context.Context, payload gateway.ApprovePayload) (*models.CardRequest, error)
}

// Approval runs card request approvals one at a time.
type Approval struct {
	mu        sync.Mutex
	busy      bool
	state     State
	submitter Submitter
	confirmer Confirmer
	notifier  Notifier

	// OnApproved runs with the updated request after a successful
	// approval, letting the list view patch the row in place.
	OnApproved func(models.CardRequest)
}

// NewApproval constructs an approval flow. confirmer and notifier may be nil;
// a nil confirmer auto-confirms.
func NewApproval(submitter Submitter, confirmer Confirmer, notifier Notifier) *Approval {
	return &Approval{submitter: submitter, confirmer: confirmer, notifier: notifier, state: StateIdle}
}

// State returns the current flow position.
func (a *Approval) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Busy reports whether an approval is in flight.
func (a *Approval) Busy() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy
}

// Approve runs the full flow for request: confirm, submit, notify. cardNumber
// may be empty to let the backend assign one. Only PENDING requests are
// accepted, and a request that fails to submit is left unchanged.
func (a *Approval) Approve(ctx context.Context, request models.CardRequest, cardNumber string) error {
	if request.Status != models.CardRequestStatusPending {
		return ErrNotPending
	}

	a.mu.Lock()
	if a.busy {
		a.mu.Unlock()
		return ErrBusy
	}
	a.busy = true
	a.state = StateConfirming
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.busy = false
		a.mu.Unlock()
	}()

	if a.confirmer != nil {
		confirmed, errConfirm := a.confirmer.Confirm(ctx, request)
		if errConfirm != nil {
			a.setState(StateIdle)
			return fmt.Errorf("workflow: confirm: %w", errConfirm)
		}
		if !confirmed {
			a.setState(StateIdle)
			return ErrDeclined
		}
	}

	a.setState(StateSubmitting)
	updated, errSubmit := a.submitter.ApproveCardRequest(ctx, gateway.ApprovePayload{
		CardRequestID:   request.ID,
		MerchantOrderNo: request.MerchantOrderNo,
		HolderID:        request.CardHolderID,
		CardTypeID:      request.CardTypeID,
		Amount:          request.Amount,
		CardNumber:      cardNumber,
	})
	if errSubmit != nil {
		a.setState(StateFailed)
		if a.notifier != nil {
			a.notifier.Failure(failureMessage(errSubmit))
		}
		return errSubmit
	}

	a.setState(StateApproved)
	if a.notifier != nil {
		a.notifier.Success(fmt.Sprintf("Card request %s approved", updated.MerchantOrderNo))
	}
	if a.OnApproved != nil {
		a.OnApproved(*updated)
	}
	return nil
}

// setState records the flow position.
func (a *Approval) setState(state State) {
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()
}

// failureMessage prefers the backend's error text over the transport error.
func failureMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Failed to approve card request"
}
