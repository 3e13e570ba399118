//
// See the file COPYRIGHT for copyright information.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package auth creates and validates the signed session tokens that keep a
// visitor or admin logged in between requests.
package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "reserve-console-go"

// SessionTokenCookieName is the cookie holding the signed session token.
// Ideally we'd use the "__Host-" prefix, but that would make local development
// with Chrome more difficult :(.
//
// https://developer.mozilla.org/en-US/docs/Web/HTTP/Guides/Cookies#cookie_prefixes
// https://issues.chromium.org/issues/40202941
const SessionTokenCookieName = "session_token"

// LoggedInCookieName is a non-HttpOnly marker cookie. The browser pages read
// it to decide which navigation links to show. It carries no authority, since
// every protected request is still checked against the session token.
const LoggedInCookieName = "is_logged_in"

type JWTer struct {
	SecretKey string
}

// CreateSessionToken makes a signed token for a user who has just proved
// their identity by password. The caller picks the expiration, normally
// time.Now() plus the configured session lifetime.
func (j JWTer) CreateSessionToken(
	userID int64,
	name string,
	email string,
	role string,
	expiration time.Time,
) (string, error) {
	return j.createToken(
		NewSessionClaims().
			WithIssuedAt(time.Now()).
			WithExpiration(expiration).
			WithIssuer(tokenIssuer).
			WithSubject(strconv.FormatInt(userID, 10)).
			WithName(name).
			WithEmail(email).
			WithRole(role),
	)
}

// AuthenticateSessionToken gives session claims for a valid, authenticated
// token string, or returns an error otherwise. A token may be invalid because
// it was signed by a different key, because it has expired, etc.
func (j JWTer) AuthenticateSessionToken(tokenStr string) (*SessionClaims, error) {
	tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")
	if tokenStr == "" {
		return nil, fmt.Errorf("no token provided")
	}
	claims := SessionClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (any, error) {
		return []byte(j.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, fmt.Errorf("[jwt.Parse]: %w", err)
	}
	if tok == nil {
		return nil, fmt.Errorf("token is nil")
	}
	if !tok.Valid {
		return nil, fmt.Errorf("token is invalid")
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("role is required")
	}
	return &claims, nil
}

func (j JWTer) createToken(claims SessionClaims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(j.SecretKey))
	if err != nil {
		return "", fmt.Errorf("[SignedString]: %w", err)
	}
	return token, nil
}
