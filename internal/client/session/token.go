package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of the backend's bearer-token payload the client
// cares about. The signature is never verified here: the server stays the
// authority, the client only reads exp to avoid presenting a token it
// already knows is stale.
type Claims struct {
	UserID string
	Exp    int64
}

var tokenParser = jwt.NewParser()

// DecodeToken decodes the payload segment of a three-part JWT without
// verifying the signature. It fails closed: any malformed input (wrong
// segment count, bad base64, invalid JSON) yields nil instead of an error.
// A token without an exp claim decodes to Exp == 0, which IsExpired treats
// as already expired.
func DecodeToken(token string) *Claims {
	claims := jwt.MapClaims{}
	if _, _, err := tokenParser.ParseUnverified(token, claims); err != nil {
		return nil
	}

	c := &Claims{}
	if id, ok := claims["id"].(string); ok {
		c.UserID = id
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		c.Exp = exp.Unix()
	}
	return c
}

// IsExpired reports whether the claims are unusable at the given wall-clock
// time (seconds since epoch). Nil claims and claims whose exp has passed are
// both expired. Pure function.
func IsExpired(c *Claims, nowSeconds int64) bool {
	return c == nil || c.Exp <= nowSeconds
}
