// Package otp issues and verifies short-lived, single-use numeric codes
// bound to an email address.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/common"
	"golang.org/x/time/rate"
)

const (
	DefaultDigits   = 4
	DefaultValidity = 2 * time.Minute
)

// Challenge is what Issue hands back to the caller for delivery.
type Challenge struct {
	Code       string
	BoundEmail string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

type pending struct {
	codeHash [sha256.Size]byte
	issuedAt time.Time
}

// Authority holds at most one outstanding challenge per email. Issuing for
// an email replaces that email's previous challenge; in single-slot mode it
// replaces every other challenge too.
type Authority struct {
	mu      sync.Mutex
	pending map[string]*pending
	single  bool

	digits   int
	validity time.Duration
	now      func() time.Time
	random   io.Reader
	limiter  *rate.Limiter
}

type Option func(*Authority)

func WithClock(now func() time.Time) Option {
	return func(a *Authority) { a.now = now }
}

func WithValidity(d time.Duration) Option {
	return func(a *Authority) {
		if d > 0 {
			a.validity = d
		}
	}
}

func WithDigits(n int) Option {
	return func(a *Authority) {
		if n > 0 && n < 10 {
			a.digits = n
		}
	}
}

// WithSingleSlot keeps one challenge for the whole authority, which suits a
// single-user local vault.
func WithSingleSlot() Option {
	return func(a *Authority) { a.single = true }
}

func WithRandom(r io.Reader) Option {
	return func(a *Authority) { a.random = r }
}

// WithIssueLimit caps issuance to perSecond with the given burst. Zero
// perSecond leaves issuance unthrottled.
func WithIssueLimit(perSecond float64, burst int) Option {
	return func(a *Authority) {
		if perSecond <= 0 {
			a.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		a.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func NewAuthority(opts ...Option) *Authority {
	a := &Authority{
		digits:   DefaultDigits,
		validity: DefaultValidity,
		now:      time.Now,
		random:   rand.Reader,
		pending:  make(map[string]*pending),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Issue generates a fresh code bound to email and supersedes the prior
// challenge for that email.
func (a *Authority) Issue(email string) (Challenge, error) {
	email = normalizeEmail(email)
	if email == "" {
		return Challenge{}, fmt.Errorf("email is required: %w", common.ErrInvalidRequest)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	if a.limiter != nil && !a.limiter.AllowN(now, 1) {
		return Challenge{}, common.ErrRateLimited
	}

	code, err := a.generate()
	if err != nil {
		return Challenge{}, fmt.Errorf("generate code: %w", err)
	}

	if a.single {
		clear(a.pending)
	} else {
		a.sweep(now)
	}
	a.pending[email] = &pending{
		codeHash: sha256.Sum256([]byte(code)),
		issuedAt: now,
	}

	return Challenge{
		Code:       code,
		BoundEmail: email,
		IssuedAt:   now,
		ExpiresAt:  now.Add(a.validity),
	}, nil
}

// Verify consumes the challenge outstanding for email when the code matches
// within the validity window. A mismatch leaves the challenge in place; an
// expired challenge is discarded.
func (a *Authority) Verify(email, code string) error {
	email = normalizeEmail(email)

	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.pending[email]
	if !ok {
		return common.ErrOTPInvalid
	}

	if a.expired(c, a.now()) {
		delete(a.pending, email)
		return common.ErrOTPExpired
	}

	got := sha256.Sum256([]byte(strings.TrimSpace(code)))
	if subtle.ConstantTimeCompare(got[:], c.codeHash[:]) != 1 {
		return common.ErrOTPInvalid
	}

	delete(a.pending, email)
	return nil
}

// Clear drops the challenge outstanding for email, if any.
func (a *Authority) Clear(email string) {
	email = normalizeEmail(email)

	a.mu.Lock()
	delete(a.pending, email)
	a.mu.Unlock()
}

func (a *Authority) expired(c *pending, now time.Time) bool {
	return now.Sub(c.issuedAt) > a.validity
}

// sweep drops expired challenges. Callers hold mu.
func (a *Authority) sweep(now time.Time) {
	for email, c := range a.pending {
		if a.expired(c, now) {
			delete(a.pending, email)
		}
	}
}

func (a *Authority) generate() (string, error) {
	lo := int64(1)
	for i := 1; i < a.digits; i++ {
		lo *= 10
	}
	hi := lo*10 - 1

	n, err := rand.Int(a.random, big.NewInt(hi-lo+1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", a.digits, n.Int64()+lo), nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
