package handler

import (
	"context"  // provides context with cancellation for DB calls
	"errors"   // errors.Is matching against auth failure kinds
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timeouts for DB calls and token clocks

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/lost-and-found/internal/auth"       // hashing, tokens, authentication
	"github.com/iliyamo/lost-and-found/internal/config"     // app configuration
	"github.com/iliyamo/lost-and-found/internal/middleware" // CurrentIdentity accessor
	"github.com/iliyamo/lost-and-found/internal/repository" // DB repositories
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Hasher *auth.Hasher
	Auth   *auth.Authenticator
	Tokens *auth.TokenService
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo, hasher *auth.Hasher, authn *auth.Authenticator, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Hasher: hasher, Auth: authn, Tokens: tokens}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"` // optional
	Password string `json:"password"`
}
type loginReq struct {
	Login    string `json:"login"` // username or email per LOGIN_FIELD
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
type authResp struct {
	User   userPart  `json:"user"`
	Access tokenPart `json:"access"`
}

// Register: create user and return a token immediately. The plaintext
// password exists only in this request scope; the repository receives the
// hash the credential hasher produced.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	hash, err := h.Hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "password too long"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username or email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	now := time.Now().UTC()
	token, err := h.Tokens.Issue(uid, now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusCreated, authResp{
		User:   userPart{ID: uid, Username: req.Username, Email: req.Email},
		Access: tokenPart{Token: token, Expires: now.Add(h.accessTTL())},
	})
}

// Login: verify credentials and return a fresh token. Unknown login and
// wrong password produce the same 401 body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Login = strings.ToLower(strings.TrimSpace(req.Login))
	if req.Login == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "login/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Auth.Authenticate(ctx, req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		case errors.Is(err, auth.ErrPasswordTooLong):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "password too long"})
		default:
			// Includes ErrMalformedHash: corrupted stored data is a server
			// problem, not the client's.
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
		}
	}

	now := time.Now().UTC()
	token, err := h.Tokens.Issue(u.ID, now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:   userPart{ID: u.ID, Username: u.Username, Email: u.Email},
		Access: tokenPart{Token: token, Expires: now.Add(h.accessTTL())},
	})
}

// Me: simple protected endpoint returning the resolved identity.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, userPart{ID: identity.ID, Username: identity.Username, Email: identity.Email})
}

func (h *AuthHandler) accessTTL() time.Duration {
	return time.Duration(h.Cfg.AccessTTLMin) * time.Minute
}
