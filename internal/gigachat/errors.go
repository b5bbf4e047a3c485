package gigachat

import (
	"errors"
	"fmt"
)

// ErrAuthKeyMissing is returned when the GigaChat auth key is not configured.
// It is a configuration error: generation cannot work until an operator
// supplies GIGACHAT_AUTH_KEY, so it must never be retried silently.
var ErrAuthKeyMissing = errors.New("gigachat auth key is not configured")

// ConnectivityError reports a transport-level failure reaching the provider:
// DNS resolution, TLS handshake, connection reset, or timeout. The provider
// was never reached, so the caller may retry with backoff.
type ConnectivityError struct {
	Op  string // logical operation, e.g. "oauth" or "chat/completions"
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("gigachat %s: connectivity error: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// ProviderError reports a non-2xx response from the provider. Status and Body
// are preserved verbatim so the caller can decide on a retry policy.
type ProviderError struct {
	Op     string
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("gigachat %s: provider returned %d: %s", e.Op, e.Status, e.Body)
}

// MalformedResponseError reports a 2xx response whose body does not match the
// expected shape. It is a provider contract violation and is never defaulted
// away, except for the documented empty-choices case in Client.Complete.
type MalformedResponseError struct {
	Op  string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("gigachat %s: malformed response: %v", e.Op, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
