package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogserver/internal/authctx"
	"blogserver/internal/token"
)

const testSecret = "unit-test-secret"

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(JWT(testSecret))
	app.Get("/open", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals(authctx.LocalUserID)})
	})
	app.Get("/protected", RequireAuth(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(authctx.LocalUserID),
			"role":    c.Locals(authctx.LocalRole),
		})
	})
	return app
}

func TestAnonymousPassesOpenRoute(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestAnonymousBlockedOnProtectedRoute(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestBearerTokenSetsIdentity(t *testing.T) {
	app := newTestApp()
	uid := bson.NewObjectID().Hex()
	tok, err := token.Issue(testSecret, uid, "Admin")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["user_id"] != uid || body["role"] != "Admin" {
		t.Errorf("identity = %v", body)
	}
}

func TestCookieTokenAccepted(t *testing.T) {
	app := newTestApp()
	uid := bson.NewObjectID().Hex()
	tok, err := token.Issue(testSecret, uid, "User")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
