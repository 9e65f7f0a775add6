package ports

import "context"

// AntiForgeryTokenStore issues single-use, time-limited tokens.
//
// ValidateAndConsume reports true at most once per issued token, and only
// before its expiry. Unknown, expired and already consumed tokens report false.
// An error means the store itself failed; callers treat it as a rejection.
type AntiForgeryTokenStore interface {
	Issue(ctx context.Context) (string, error)
	ValidateAndConsume(ctx context.Context, token string) (bool, error)
}
