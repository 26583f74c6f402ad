package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/techxchange/internal/adapter/config"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
)

const payloadClaim = "payload"

type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
	ttl    time.Duration
}

// New creates a v4.local token service. Tokens survive restarts only when conf.Key is set.
func New(conf *config.Token) (port.TokenService, error) {
	// Expiry is checked after decryption so expired tokens get their own error.
	parser := paseto.NewParserWithoutExpiryCheck()

	key := paseto.NewV4SymmetricKey()
	if conf.Key != "" {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(conf.Key)
		if err != nil {
			return nil, fmt.Errorf("invalid token key: %w", err)
		}
	}

	ttl := conf.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	s := PasetoToken{
		parser: &parser,
		key:    &key,
		ttl:    ttl,
	}

	return &s, nil
}

func (p *PasetoToken) CreateToken(user *domain.User) (string, error) {
	now := time.Now()
	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))
	token.SetSubject(user.ID)

	payload := port.TokenPayload{UserID: user.ID, Role: user.Role}
	err := token.Set(payloadClaim, payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	exp, err := parsedToken.GetExpiration()
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if time.Now().After(exp) {
		return nil, domain.ErrExpiredToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get(payloadClaim, &payload)
	if err != nil || payload.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
