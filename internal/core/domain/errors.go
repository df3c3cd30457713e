package domain

import "errors"

// Lifecycle and ledger errors. Adapters wrap them with additional context,
// so callers must compare with errors.Is.
var (
	ErrInvalidParameters = errors.New("invalid campaign parameters")
	ErrNotFound          = errors.New("campaign not found")
	ErrCampaignClosed    = errors.New("campaign is closed for contributions")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrUnauthorized      = errors.New("caller is not the campaign organizer")
	ErrTooEarly          = errors.New("campaign deadline has not passed")
	ErrGoalNotReached    = errors.New("campaign goal not reached")
	ErrGoalWasReached    = errors.New("campaign goal was reached")
	ErrAlreadySettled    = errors.New("campaign already settled")
	ErrNothingToWithdraw = errors.New("nothing to withdraw")
	ErrTransferFailed    = errors.New("value transfer failed")
)

// codes maps each sentinel to a stable machine-readable code.
var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidParameters, "INVALID_PARAMETERS"},
	{ErrNotFound, "NOT_FOUND"},
	{ErrCampaignClosed, "CAMPAIGN_CLOSED"},
	{ErrInvalidAmount, "INVALID_AMOUNT"},
	{ErrUnauthorized, "UNAUTHORIZED"},
	{ErrTooEarly, "TOO_EARLY"},
	{ErrGoalNotReached, "GOAL_NOT_REACHED"},
	{ErrGoalWasReached, "GOAL_WAS_REACHED"},
	{ErrAlreadySettled, "ALREADY_SETTLED"},
	{ErrNothingToWithdraw, "NOTHING_TO_WITHDRAW"},
	{ErrTransferFailed, "TRANSFER_FAILED"},
}

// Code returns the machine-readable code of err, or "UNKNOWN" when err does
// not wrap any of the package sentinels.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "UNKNOWN"
}
