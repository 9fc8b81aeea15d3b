package articles

import "time"

// ExpiryTimeLayout is the format of the expires_at token claim. Second
// granularity, no timezone: the value is always UTC.
const ExpiryTimeLayout = "2006-01-02 15:04:05"

// ExpirationTime returns the expiry claim value for a token issued now
// with the given window.
func ExpirationTime(window time.Duration) string {
	return time.Now().UTC().Add(window).Format(ExpiryTimeLayout)
}

// IsExpired reports whether the expiry claim is in the past. A value that
// does not parse is an error, never a silent false.
func IsExpired(expiresAt string) (bool, error) {
	t, err := time.Parse(ExpiryTimeLayout, expiresAt)
	if err != nil {
		return false, err
	}
	return t.Before(time.Now().UTC()), nil
}
