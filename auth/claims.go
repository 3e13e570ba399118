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

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wildhaven/reserve-console-go/lib/conv"
)

// RoleVisitor and RoleAdmin are the two account roles the console knows about.
// The role is carried inside the session token, not looked up per request.
const (
	RoleVisitor = "visitor"
	RoleAdmin   = "admin"
)

type SessionClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"nam"`
	Email string `json:"ema"`
	Role  string `json:"rol"`
}

func NewSessionClaims() SessionClaims {
	return SessionClaims{}
}

func (c SessionClaims) WithExpiration(t time.Time) SessionClaims {
	c.ExpiresAt = jwt.NewNumericDate(t)
	return c
}

func (c SessionClaims) WithIssuedAt(t time.Time) SessionClaims {
	c.IssuedAt = jwt.NewNumericDate(t)
	return c
}

func (c SessionClaims) WithIssuer(s string) SessionClaims {
	c.Issuer = s
	return c
}

func (c SessionClaims) WithSubject(s string) SessionClaims {
	c.Subject = s
	return c
}

func (c SessionClaims) WithName(s string) SessionClaims {
	c.Name = s
	return c
}

func (c SessionClaims) WithEmail(s string) SessionClaims {
	c.Email = s
	return c
}

func (c SessionClaims) WithRole(s string) SessionClaims {
	c.Role = s
	return c
}

func (c SessionClaims) UserName() string {
	return c.Name
}

func (c SessionClaims) UserEmail() string {
	return c.Email
}

func (c SessionClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// UserID returns the visitor or admin row ID from the token subject.
// It returns -1 if the ID cannot be determined.
func (c SessionClaims) UserID() int64 {
	sub, err := c.GetSubject()
	if err != nil {
		return -1
	}
	subN, err := conv.ParseInt64(sub)
	if err != nil {
		return -1
	}
	return subN
}
