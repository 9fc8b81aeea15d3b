package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// BaseConfig is the application configuration root. Values load from
// config/app.json and may be overridden by environment variables.
type BaseConfig struct {
	Server      *Server      `json:"server" koanf:"server"`
	Auth        *Auth        `json:"auth" koanf:"auth"`
	Persistence *Persistence `json:"persistence" koanf:"persistence"`
}

func (a *BaseConfig) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Auth),
		validation.Field(&a.Persistence),
	)
}

func (a *BaseConfig) GetServer() *Server {
	if a.Server == nil {
		a.Server = &Server{}
	}
	return a.Server
}

func (a *BaseConfig) GetAuth() *Auth {
	if a.Auth == nil {
		a.Auth = &Auth{}
	}
	return a.Auth
}

func (a *BaseConfig) GetPersistence() *Persistence {
	if a.Persistence == nil {
		a.Persistence = &Persistence{}
	}
	return a.Persistence
}

type Server struct {
	Host string `json:"host" koanf:"host"`
	Port int    `json:"port" koanf:"port"`
}

func (s *Server) GetAddr() string {
	host := s.Host
	port := s.Port
	if port == 0 {
		port = 8080
	}
	return fmt.Sprintf("%s:%d", host, port)
}

type Auth struct {
	SigningKey      string `json:"signing_key" koanf:"signing_key"`
	SigningMethod   string `json:"signing_method" koanf:"signing_method"`
	ContextKey      string `json:"context_key" koanf:"context_key"`
	Issuer          string `json:"issuer" koanf:"issuer"`
	TokenLookup     string `json:"token_lookup" koanf:"token_lookup"`
	AuthScheme      string `json:"auth_scheme" koanf:"auth_scheme"`
	TokenExpiration int    `json:"token_expiration" koanf:"token_expiration"`
}

func (a Auth) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.SigningKey, validation.Required),
	)
}

func (a *Auth) GetSigningKey() string {
	return a.SigningKey
}

func (a *Auth) GetSigningMethod() string {
	if a.SigningMethod == "" {
		return "HS256"
	}
	return a.SigningMethod
}

func (a *Auth) GetContextKey() string {
	if a.ContextKey == "" {
		return "user"
	}
	return a.ContextKey
}

func (a *Auth) GetIssuer() string {
	return a.Issuer
}

func (a *Auth) GetTokenLookup() string {
	return a.TokenLookup
}

func (a *Auth) GetAuthScheme() string {
	if a.AuthScheme == "" {
		return "Bearer"
	}
	return a.AuthScheme
}

// GetTokenExpiration is the token window in minutes
func (a *Auth) GetTokenExpiration() int {
	if a.TokenExpiration == 0 {
		return 60
	}
	return a.TokenExpiration
}

type Persistence struct {
	Driver                string `json:"driver" koanf:"driver"`
	DSN                   string `json:"dsn" koanf:"dsn"`
	Debug                 bool   `json:"debug" koanf:"debug"`
	PingTimeoutExpression string `json:"ping_timeout" koanf:"ping_timeout"`
}

func (p Persistence) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Driver, validation.In("sqlite", "postgres")),
		validation.Field(&p.DSN, is.PrintableASCII),
	)
}

func (p *Persistence) GetDriver() string {
	if p.Driver == "" {
		return "sqlite"
	}
	return p.Driver
}

func (p *Persistence) GetDSN() string {
	if p.DSN == "" {
		return "file::memory:?cache=shared"
	}
	return p.DSN
}

func (p *Persistence) GetServer() string {
	return p.GetDSN()
}

func (p *Persistence) GetOtelIdentifier() string {
	return ""
}

func (p *Persistence) GetDebug() bool {
	return p.Debug
}

func (p *Persistence) GetPingTimeout() time.Duration {
	if p.PingTimeoutExpression == "" {
		return 5 * time.Second
	}
	dur, err := time.ParseDuration(p.PingTimeoutExpression)
	if err != nil {
		panic(
			fmt.Sprintf("unable to parse time: expr %s", p.PingTimeoutExpression),
		)
	}
	return dur
}
