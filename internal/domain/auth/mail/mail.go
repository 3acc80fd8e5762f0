package mail

import "context"

// Sender delivers account emails. Implementations must return an error on
// dispatch failure: a registration whose verification mail was lost leaves
// the account stuck unverifiable, so the caller surfaces the failure.
type Sender interface {
	SendVerificationEmail(ctx context.Context, name, email, token string) error

	SendResetPasswordEmail(ctx context.Context, name, email, token string) error
}
