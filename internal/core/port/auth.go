package port

import "github.com/MikeRez0/techxchange/internal/core/domain"

type TokenPayload struct {
	UserID string
	Role   domain.Role
}

func (p *TokenPayload) Identity() domain.Identity {
	return domain.Identity{UserID: p.UserID, Role: p.Role}
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
