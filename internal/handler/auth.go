package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartprofile/backend/internal/config"
	"github.com/smartprofile/backend/internal/model"
	"github.com/smartprofile/backend/internal/repository"
	"github.com/smartprofile/backend/internal/utils"
)

// UserStore is the slice of the user repository the auth handlers need.
// *repository.UserRepo satisfies it; tests substitute an in-memory store.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthHandler bundles dependencies for the signup and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResp is returned by both signup and login. The token is the only
// session credential; nothing else is stored server-side.
type authResp struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Signup creates an account and returns a session token immediately.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing fields"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing fields"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		c.Logger().Errorf("signup: hash password: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Signup failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "User already exists"})
		}
		c.Logger().Errorf("signup: create user: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Signup failed"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, uid, req.Email, h.Cfg.TokenTTLDays)
	if err != nil {
		c.Logger().Errorf("signup: issue token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Signup failed"})
	}
	return c.JSON(http.StatusOK, authResp{Token: tok.Token, Name: req.Name, Email: req.Email})
}

// Login verifies credentials and returns a fresh session token. Unknown email
// and wrong password produce the same response so accounts cannot be
// enumerated.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing fields"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid credentials"})
		}
		c.Logger().Errorf("login: query user: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Login failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid credentials"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, u.Email, h.Cfg.TokenTTLDays)
	if err != nil {
		c.Logger().Errorf("login: issue token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Login failed"})
	}
	return c.JSON(http.StatusOK, authResp{Token: tok.Token, Name: u.Name, Email: u.Email})
}
