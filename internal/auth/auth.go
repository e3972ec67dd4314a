// Package auth gates the premium tools behind engineer accounts.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"Millcalc/internal/httpx"
	"Millcalc/internal/repo"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	userLoginKey contextKey = "userLogin"

	cookieName = "session_token"
	tokenTTL   = 30 * 24 * time.Hour
	minPassLen = 6
)

type Authenv struct {
	JWTkey []byte
	Repo   repo.Repository
	// InsecureCookie drops the Secure flag for plain HTTP deployments.
	InsecureCookie bool
}

type Claims struct {
	UserID int    `json:"user_id"`
	Login  string `json:"login"`
	jwt.RegisteredClaims
}

type Loginrequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type Registerrequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type tokenResponse struct {
	Token string `json:"token"`
	Login string `json:"login"`
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// UserID returns the authenticated user's id from a request context.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// WithUser returns ctx carrying the user AuthMiddleware would attach.
func WithUser(ctx context.Context, id int, login string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id)
	return context.WithValue(ctx, userLoginKey, login)
}

// Login returns the authenticated user's login from a request context.
func Login(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(userLoginKey).(string)
	return login, ok && login != ""
}

func (env *Authenv) issue(userID int, login string, now time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		Login:  login,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(env.JWTkey)
}

func (env *Authenv) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return env.JWTkey, nil
	})
	if err != nil {
		return nil, err
	}
	if claims.UserID == 0 || claims.Login == "" {
		return nil, errors.New("token carries no user")
	}
	return claims, nil
}

// tokenFrom reads a bearer token first, then the session cookie.
func tokenFrom(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := tokenFrom(r)
		if tok == "" {
			httpx.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		claims, err := env.parse(tok)
		if err != nil {
			log.WithError(err).Debug("rejected token")
			httpx.Error(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), claims.UserID, claims.Login)))
	})
}

func (env *Authenv) addCookie(w http.ResponseWriter, userID int, login string) (string, bool) {
	now := time.Now()
	tokenString, err := env.issue(userID, login, now)
	if err != nil {
		log.WithError(err).Error("token signing failed")
		return "", false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    tokenString,
		Expires:  now.Add(tokenTTL),
		Path:     "/",
		HttpOnly: true,
		Secure:   !env.InsecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return tokenString, true
}

func (env *Authenv) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req Registerrequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	req.Email = strings.TrimSpace(req.Email)
	if req.Login == "" || req.Email == "" || req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "Login, email and password required")
		return
	}
	if len(req.Password) < minPassLen {
		httpx.Error(w, http.StatusBadRequest, "Password too short")
		return
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		log.WithError(err).Error("password hashing failed")
		httpx.Error(w, http.StatusInternalServerError, "Error hashing password")
		return
	}
	id, err := env.Repo.CreateUser(r.Context(), req.Login, req.Email, hashedPassword)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			httpx.Error(w, http.StatusConflict, "User already exists")
			return
		}
		log.WithError(err).WithField("login", req.Login).Error("create user failed")
		httpx.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	tok, ok := env.addCookie(w, id, req.Login)
	if !ok {
		httpx.Error(w, http.StatusInternalServerError, "Session error")
		return
	}
	log.WithField("login", req.Login).Info("user registered")
	httpx.JSON(w, http.StatusCreated, tokenResponse{Token: tok, Login: req.Login})
}

func (env *Authenv) AuthHandler(w http.ResponseWriter, r *http.Request) {
	var req Loginrequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" || req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "Login and password required")
		return
	}

	id, storedHash, err := env.Repo.GetByLogin(r.Context(), req.Login)
	if err != nil {
		log.WithError(err).WithField("login", req.Login).Error("user lookup failed")
		httpx.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	if id == 0 || bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)) != nil {
		httpx.Error(w, http.StatusUnauthorized, "Invalid login or password")
		return
	}
	tok, ok := env.addCookie(w, id, req.Login)
	if !ok {
		httpx.Error(w, http.StatusInternalServerError, "Session error")
		return
	}
	httpx.JSON(w, http.StatusOK, tokenResponse{Token: tok, Login: req.Login})
}
