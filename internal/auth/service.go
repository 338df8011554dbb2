package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/0xPexy/sentra-gas-station/internal/config"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spruceid/siwe-go"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Claims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// Service authenticates wallets with Sign-In with Ethereum and issues JWTs
// carrying the wallet address. Whether that address may administer the
// station is decided by the station itself.
type Service struct {
	secret     []byte
	ttl        time.Duration
	nonces     *nonceStore
	domain     string
	uri        string
	statement  string
	chainID    uint64
	devToken   string
	devAddress string
	now        func() time.Time
}

// NewService builds the service. devAddress is the identity granted to the
// configured dev token, if any.
func NewService(cfg config.AuthConfig, devAddress string) *Service {
	return &Service{
		secret:     []byte(cfg.JWTSecret),
		ttl:        cfg.JWTTTL,
		nonces:     newNonceStore(cfg.NonceTTL),
		domain:     strings.TrimSpace(cfg.SIWEDomain),
		uri:        strings.TrimSpace(cfg.SIWEURI),
		statement:  strings.TrimSpace(cfg.SIWEStatement),
		chainID:    cfg.SIWEChainID,
		devToken:   cfg.DevToken,
		devAddress: station.NormalizeAddress(devAddress),
		now:        time.Now,
	}
}

func (s *Service) IssueNonce() (string, error) {
	return s.nonces.Issue()
}

func (s *Service) IsDevToken(token string) bool {
	return s.devToken != "" && token == s.devToken
}

func (s *Service) DevAddress() string { return s.devAddress }

func (s *Service) LoginWithSIWE(message, signature string) (string, error) {
	if strings.TrimSpace(message) == "" || strings.TrimSpace(signature) == "" {
		return "", ErrInvalidCredentials
	}

	parsed, err := siwe.ParseMessage(message)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	nonce := parsed.GetNonce()
	if !s.nonces.Has(nonce) {
		return "", ErrInvalidCredentials
	}
	var domain *string
	if s.domain != "" {
		d := s.domain
		domain = &d
	}
	if s.uri != "" {
		uri := parsed.GetURI()
		if uri.String() != s.uri {
			return "", ErrInvalidCredentials
		}
	}
	if s.statement != "" {
		if stmt := parsed.GetStatement(); stmt == nil || strings.TrimSpace(*stmt) != s.statement {
			return "", ErrInvalidCredentials
		}
	}
	if s.chainID > 0 && parsed.GetChainID() != int(s.chainID) {
		return "", ErrInvalidCredentials
	}
	if _, err := parsed.Verify(signature, domain, &nonce, nil); err != nil {
		return "", ErrInvalidCredentials
	}
	if !s.nonces.Take(nonce) {
		return "", ErrInvalidCredentials
	}
	return s.Issue(parsed.GetAddress().Hex())
}

// Issue signs a token for address.
func (s *Service) Issue(address string) (string, error) {
	addr := station.NormalizeAddress(address)
	now := s.now()
	claims := Claims{
		Address: addr,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   addr,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidCredentials
}
