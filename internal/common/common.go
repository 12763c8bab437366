package common

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/skillbloom/pkg/responses"
)

const (
	// Context keys
	ContextSessionKey   = "session"    // Key to store the *Session in the gin context
	ContextRequestIDKey = "request_id" // Key to store the request id in the gin context
)

var ErrNoSession = errors.New("session not found in context")

// Session is the authenticated caller of a request. It is created by the auth
// middleware and travels with the request's context.Context, so services can
// read it without depending on gin.
type Session struct {
	UserID    uint
	Roles     []string
	RequestID string
}

// HasRole reports whether the session carries any of roles.
func (s *Session) HasRole(roles ...string) bool {
	if s == nil {
		return false
	}
	for _, have := range s.Roles {
		for _, want := range roles {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// SetSession attaches s to both the gin context and the request context.
func SetSession(c *gin.Context, s *Session) {
	c.Set(ContextSessionKey, s)
	if c.Request != nil {
		c.Request = c.Request.WithContext(WithSession(c.Request.Context(), s))
	}
}

// GetSession retrieves the authenticated session from the Gin context.
func GetSession(c *gin.Context) (*Session, error) {
	if v, exists := c.Get(ContextSessionKey); exists {
		if s, ok := v.(*Session); ok && s != nil {
			return s, nil
		}
	}
	if c.Request != nil {
		if s, ok := SessionFromContext(c.Request.Context()); ok {
			return s, nil
		}
	}
	return nil, ErrNoSession
}

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	s, err := GetSession(c)
	if err != nil {
		return 0, err
	}
	if s.UserID == 0 {
		return 0, errors.New("session has no user id")
	}
	return s.UserID, nil
}

// ParseIDParam reads a positive integer path parameter. On failure it writes
// a 400 response and returns false.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		responses.SendError(c, http.StatusBadRequest, "Invalid "+name+" format", nil)
		return 0, false
	}
	return uint(id), true
}

// Pagination reads page and pageSize query parameters, clamping them to sane
// bounds.
func Pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
