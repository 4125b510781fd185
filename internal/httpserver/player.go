// internal/httpserver/player.go
//
// Anonymous player identity.
//
// Every request is tied to a player id carried in a signed HS256 JWT, read
// from the wordwonder_player cookie or an Authorization: Bearer header. A
// missing or invalid token gets a fresh player id and a new cookie; the
// request still proceeds.

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const playerCookieName = "wordwonder_player"

type ctxPlayerKey struct{}

// playerFrom returns the player id installed by the player middleware.
func playerFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxPlayerKey{}).(string)
	return id
}

// playerTokens signs and verifies player tokens.
type playerTokens struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func newPlayerTokens(secret string, ttl time.Duration, secure bool, now func() time.Time) *playerTokens {
	return &playerTokens{secret: []byte(secret), ttl: ttl, secure: secure, now: now}
}

// sign creates a token for playerID and returns it with its expiry.
func (p *playerTokens) sign(playerID string) (string, time.Time, error) {
	now := p.now()
	exp := now.Add(p.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   playerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(p.secret)
	return ss, exp, err
}

// verify returns the player id inside a valid token.
func (p *playerTokens) verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.Subject == "" {
		return "", errors.New("invalid player token")
	}
	return claims.Subject, nil
}

// middleware resolves the player id, issuing a new identity when needed.
func (p *playerTokens) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if tok := bearerOrCookie(r); tok != "" {
			if v, err := p.verify(tok); err == nil {
				id = v
			} else {
				log.Debug().Err(err).Msg("rejecting player token")
			}
		}
		if id == "" {
			var err error
			id, err = p.issue(w)
			if err != nil {
				log.Error().Err(err).Msg("issue player token")
				writeError(w, r, http.StatusInternalServerError, "sign_failed")
				return
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxPlayerKey{}, id)))
	})
}

// issue creates a player id and sets its cookie.
func (p *playerTokens) issue(w http.ResponseWriter) (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("player id: %w", err)
	}
	id := u.String()
	tok, exp, err := p.sign(id)
	if err != nil {
		return "", fmt.Errorf("sign player token: %w", err)
	}
	sameSite := http.SameSiteLaxMode
	if p.secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
	return id, nil
}

// bearerOrCookie extracts a token from the Authorization header or the player cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(playerCookieName); err == nil {
		return c.Value
	}
	return ""
}
