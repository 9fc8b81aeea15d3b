package articles

import (
	"github.com/goliatone/go-router"
)

// ClaimsFromRouterContext retrieves the validated token claims stored by the
// route middleware under the given context key.
func ClaimsFromRouterContext(c router.Context, key string) (*TokenClaims, error) {
	raw := c.Locals(key)
	if raw == nil {
		return nil, ErrMissingToken
	}

	claims, ok := raw.(*TokenClaims)
	if claims == nil || !ok {
		return nil, ErrUnableToMapClaims
	}

	return claims, nil
}
