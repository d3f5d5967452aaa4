package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"reporting/config"
	"reporting/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	for _, h := range handlers {
		app.Use(h)
	}
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(200).SendString("ok")
	})
	return app
}

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	claims := models.JwtClaims{
		UserID: "u1",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	app := makeApp(Authenticate)
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 without a token, got %d", resp.StatusCode)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := makeApp(Authenticate)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "analyst"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for a valid token, got %d", resp.StatusCode)
	}
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := makeApp(Authenticate)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "analyst"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 for a bad signature, got %d", resp.StatusCode)
	}
}

func TestCheckRole(t *testing.T) {
	setRole := func(c *fiber.Ctx) error {
		c.Locals("userRole", "viewer")
		return c.Next()
	}

	app := makeApp(setRole, CheckRole("analyst", "viewer"))
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for an allowed role, got %d", resp.StatusCode)
	}

	app = makeApp(setRole, CheckRole("admin"))
	resp, err = app.Test(httptest.NewRequest("GET", "/test", nil))
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Fatalf("expected 403 for a disallowed role, got %d", resp.StatusCode)
	}
}
