package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"swiftrider/internal/entities"
)

const issuer = "swiftrider"

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer подписывает и проверяет HS256 токены с полями {userId, email, role}.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (i *Issuer) Issue(identity entities.Identity) (string, error) {
	now := i.now()
	c := claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *Issuer) Parse(raw string) (entities.Identity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return entities.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	role := entities.UserRole(c.Role)
	if c.UserID <= 0 || !role.IsValid() {
		return entities.Identity{}, fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}

	return entities.Identity{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   role,
	}, nil
}
