// Package auth issues OTP grants: short-lived HS256 tokens proving that the
// holder just verified an OTP for a given email. A grant is redeemable once.
package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

const DefaultGrantTTL = 5 * time.Minute

// Claims carries the standard claims plus the verified email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type Grants struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu    sync.Mutex
	spent map[string]time.Time
}

// NewGrants panics on an empty secret.
func NewGrants(secret []byte, ttl time.Duration) *Grants {
	if len(secret) == 0 {
		panic("auth: empty grant secret")
	}
	if ttl <= 0 {
		ttl = DefaultGrantTTL
	}
	return &Grants{secret: secret, ttl: ttl, now: time.Now, spent: make(map[string]time.Time)}
}

// NewEphemeralGrants signs with a random secret that lives only in memory.
func NewEphemeralGrants(ttl time.Duration) *Grants {
	return NewGrants(common.GenerateRandByteArray(32), ttl)
}

func (g *Grants) Issue(email string) (string, error) {
	now := g.now()
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Email: normalize(email),
	})

	return token.SignedString(g.secret)
}

// Redeem validates the grant against email and marks it spent.
func (g *Grants) Redeem(tokenString, email string) error {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(g.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("grant expired: %w", common.ErrInvalidGrant)
		}
		return fmt.Errorf("%v: %w", err, common.ErrInvalidGrant)
	}
	if !token.Valid || claims.ID == "" {
		return common.ErrInvalidGrant
	}
	if claims.Email != normalize(email) {
		return fmt.Errorf("grant bound to another email: %w", common.ErrInvalidGrant)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for id, exp := range g.spent {
		if now.After(exp) {
			delete(g.spent, id)
		}
	}
	if _, used := g.spent[claims.ID]; used {
		return fmt.Errorf("grant already used: %w", common.ErrInvalidGrant)
	}
	g.spent[claims.ID] = claims.ExpiresAt.Time

	return nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
