package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AnonymousUser is the requester of calls without a bearer token.
	AnonymousUser = "anonymous"

	roleAdmin = "admin"

	requestIDHeader = "X-Request-ID"
)

var (
	errMissingSubject = errors.New("token has no subject")
	errAdminRequired  = errors.New("admin role required")
	errLoginRequired  = errors.New("login required")
)

type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// requestID tags every request with an id, reusing the one sent by the client.
func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("request_id", id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// identify resolves the requester from an optional bearer token.
func (s *Server) identify(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		c.Set("requester", AnonymousUser)
		c.Next()
		return
	}

	tokenString := strings.TrimPrefix(auth, "Bearer ")
	if tokenString == auth {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, errors.New("bearer token expected"))
		return
	}

	claims, err := s.parseToken(tokenString)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
		return
	}

	c.Set("requester", claims.Subject)
	if claims.Role == roleAdmin {
		c.Set("admin", true)
	}
	c.Next()
}

func (s *Server) parseToken(tokenString string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errMissingSubject
	}
	return &claims, nil
}

func (s *Server) requireAdmin(c *gin.Context) {
	if !c.GetBool("admin") {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden, errAdminRequired)
		return
	}
	c.Next()
}

func (s *Server) requireUser(c *gin.Context) {
	if requester(c) == AnonymousUser {
		abortWithEncoding(c, http.StatusUnauthorized, errorUnauthorized, errLoginRequired)
		return
	}
	c.Next()
}

func requester(c *gin.Context) string {
	if id := c.GetString("requester"); id != "" {
		return id
	}
	return AnonymousUser
}
