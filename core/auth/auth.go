package auth

import (
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/DuJao22/Comercio-pro/config"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

// Claims is the JWT payload issued at login and attached to every
// authenticated request. StoreID is nil for superadmins.
type Claims struct {
	UserID  uint   `json:"id"`
	Role    string `json:"role"`
	StoreID *uint  `json:"store_id"`
	Name    string `json:"name"`
	jwt.RegisteredClaims
}

// IsSuperadmin reports whether the actor has the global role.
func (c *Claims) IsSuperadmin() bool {
	return c.Role == entity.RoleSuperadmin
}

// IssueToken signs a token for the user with the configured TTL.
func IssueToken(u *entity.User) (string, error) {
	cfg := config.AppConfig
	claims := &Claims{
		UserID:  u.ID,
		Role:    u.Role,
		StoreID: u.StoreID,
		Name:    u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.TokenTTLHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// Middleware returns the JWT auth middleware for the /api group.
func Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(config.AppConfig.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		Skipper: buildSkipper(),
	})
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

// CurrentUser extracts the verified claims from the request context.
// Returns nil on unauthenticated routes.
func CurrentUser(c echo.Context) *Claims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
