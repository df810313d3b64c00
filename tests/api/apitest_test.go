package apitest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/config"
	"github.com/DuJao22/Comercio-pro/core/auth"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

// The repositories are process-wide singletons bound to the first DB they
// see, so the whole package shares one in-memory database. Tests seed
// distinct rows instead of distinct databases.
var (
	dbOnce   sync.Once
	sharedDB *gorm.DB
	dbErr    error
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbOnce.Do(func() {
		config.LoadAppConfig()
		sharedDB, dbErr = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		if dbErr != nil {
			return
		}
		dbErr = sharedDB.AutoMigrate(entity.All()...)
	})
	if dbErr != nil {
		t.Fatalf("open sqlite: %v", dbErr)
	}
	return sharedDB
}

// asUser mimics the JWT middleware by attaching verified claims directly.
func asUser(claims *auth.Claims) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user", &jwt.Token{Claims: claims})
			return next(c)
		}
	}
}

// newServer mounts one API module under /api, authenticated as claims
// (nil claims leaves the request anonymous).
func newServer(t *testing.T, claims *auth.Claims, register func(g *echo.Group, db *gorm.DB)) *echo.Echo {
	t.Helper()
	e := echo.New()
	g := e.Group("/api")
	if claims != nil {
		g.Use(asUser(claims))
	}
	register(g, testDB(t))
	return e
}

func adminClaims(u *entity.User) *auth.Claims {
	return &auth.Claims{UserID: u.ID, Role: u.Role, StoreID: u.StoreID, Name: u.Name}
}

func superadminClaims(userID uint) *auth.Claims {
	return &auth.Claims{UserID: userID, Role: entity.RoleSuperadmin}
}

func seedStore(t *testing.T, name string) *entity.Store {
	t.Helper()
	s := &entity.Store{Name: name, Location: "Centro"}
	if err := testDB(t).Create(s).Error; err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return s
}

func seedUser(t *testing.T, email string, role string, storeID *uint) *entity.User {
	t.Helper()
	hash, err := auth.HashPassword("senha123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &entity.User{Name: "Usuário " + email, Email: email, Password: hash, Role: role, StoreID: storeID}
	if err := testDB(t).Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedProduct(t *testing.T, storeID uint, name string, qty float64) *entity.Product {
	t.Helper()
	p := &entity.Product{StoreID: storeID, Name: name, Unit: entity.UnitPiece, StockQuantity: qty}
	if err := testDB(t).Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func jsonDecodeList(rec *httptest.ResponseRecorder, out *[]map[string]interface{}) error {
	return json.NewDecoder(rec.Body).Decode(out)
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}
