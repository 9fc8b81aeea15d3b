package articles

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// Auther orchestrates registration era concerns: credential verification,
// token issuance, current user resolution, and admin checks.
type Auther struct {
	provider        IdentityProvider
	groups          Groups
	signingKey      []byte
	tokenExpiration int
	issuer          string
	logger          Logger
	tokenService    TokenService
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetIssuer(),
		defLogger{},
	)

	return &Auther{
		provider:        provider,
		signingKey:      []byte(opts.GetSigningKey()),
		tokenExpiration: opts.GetTokenExpiration(),
		issuer:          opts.GetIssuer(),
		logger:          defLogger{},
		tokenService:    tokenService,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	s.tokenService = NewTokenService(
		s.signingKey,
		s.tokenExpiration,
		s.issuer,
		logger,
	)
	return s
}

// WithGroups wires the group membership repository used for admin checks
func (s *Auther) WithGroups(groups Groups) *Auther {
	s.groups = groups
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the credentials and issues an access token with a fixed
// window. Credential failures collapse into ErrInvalidCredentials.
func (s *Auther) Login(ctx context.Context, identifier, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, ErrMismatchedHashAndPassword) {
			s.logger.Info("Login rejected", "identifier", identifier)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login verify identity error", "error", err)
		return "", err
	}

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("Login token generation error", "error", err)
		return "", err
	}

	return token, nil
}

// CurrentUser resolves the identity carried by a raw token. The decode and
// expiry checks are two explicit steps: decode failures collapse into
// ErrInvalidCredentials while an elapsed window surfaces as ErrTokenExpired
// so clients can distinguish a stale session from a bad one.
func (s *Auther) CurrentUser(token string) (Identity, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.tokenService.Decode(token)
	if err != nil {
		s.logger.Info("CurrentUser decode failed", "error", err)
		return nil, ErrInvalidCredentials
	}

	expired, err := IsExpired(claims.ExpiresAt)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if expired {
		return nil, ErrTokenExpired
	}

	return IdentityFromClaims(claims)
}

// IsAdmin reports whether the user belongs to the admin group
func (s *Auther) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if s.groups == nil {
		return false, errors.New("authenticator has no groups repository", errors.CategoryInternal)
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return false, errors.Wrap(err, errors.CategoryValidation, "invalid user id")
	}

	return s.groups.IsAdmin(ctx, uid)
}

var _ Authenticator = (*Auther)(nil)
