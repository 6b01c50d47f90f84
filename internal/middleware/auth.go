package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"adminconsole/pkg/response"
)

// Context keys set by RequireOperator
const (
	OperatorKey    = "operatorID"
	OperatorRole   = "operatorRole"
	AccessTokenKey = "accessToken"

	accessTokenCookie = "access_token"
)

var (
	ErrMissingToken = errors.New("Authorization is missing")
	ErrTokenFormat  = errors.New("Invalid authorization format. Expected 'Bearer <token>'")
)

// Claims are the identity fields the console reads from an operator token
type Claims struct {
	Subject string
	Role    string
}

// Auth validates HMAC-signed operator tokens
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// Parse validates tokenString and returns its subject and role
func (a *Auth) Parse(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "Invalid token")
	}
	if !token.Valid {
		return Claims{}, errors.New("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("Invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, errors.New("Subject not found in token")
	}
	role, _ := claims["role"].(string)
	return Claims{Subject: sub, Role: role}, nil
}

// TokenFromRequest reads the access token from the cookie, falling back to the Authorization header
func TokenFromRequest(c *gin.Context) (string, error) {
	if tokenString, err := c.Cookie(accessTokenCookie); err == nil && tokenString != "" {
		return tokenString, nil
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrTokenFormat
	}
	return parts[1], nil
}

// RequireOperator Middleware validates the JWT token and stores the operator identity and raw
// token in the context. The raw token is forwarded to the remote API.
func RequireOperator(auth *Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := TokenFromRequest(c)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := auth.Parse(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(OperatorKey, claims.Subject)
		c.Set(OperatorRole, claims.Role)
		c.Set(AccessTokenKey, tokenString)

		c.Next()
	}
}

// Operator returns the authenticated operator id, or "" outside RequireOperator
func Operator(c *gin.Context) string {
	return c.GetString(OperatorKey)
}

func AccessToken(c *gin.Context) string {
	return c.GetString(AccessTokenKey)
}
