package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitbook_backend/internals/configs"
	"fitbook_backend/internals/constants"
	database "fitbook_backend/internals/databases"
	authRoute "fitbook_backend/internals/features/users/auth/route"
	authService "fitbook_backend/internals/features/users/auth/service"
	userModel "fitbook_backend/internals/features/users/user/model"
	helper "fitbook_backend/internals/helpers"
)

func init() {
	configs.JWTSecret = "test-secret"
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(gdb); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	authRoute.AuthRoutes(app, db)
	return app
}

func register(t *testing.T, app *fiber.App, name, email, password, role string) *http.Response {
	t.Helper()
	payload := map[string]string{"name": name, "email": email, "password": password}
	if role != "" {
		payload["role"] = role
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return resp
}

// TestRegisterSingleAdmin allows exactly one administrator account: the
// first admin registration succeeds, the second is refused and leaves no
// row behind.
func TestRegisterSingleAdmin(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	if resp := register(t, app, "First Admin", "admin1@example.com", "password123", constants.RoleAdmin); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first admin status = %d, want 201", resp.StatusCode)
	}
	if resp := register(t, app, "Second Admin", "admin2@example.com", "password123", constants.RoleAdmin); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("second admin status = %d, want 403", resp.StatusCode)
	}

	var admins int64
	db.Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleAdmin).
		Count(&admins)
	if admins != 1 {
		t.Errorf("admin rows = %d, want 1", admins)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	if resp := register(t, app, "Budi", "budi@example.com", "password123", ""); resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", resp.StatusCode)
	}
	if resp := register(t, app, "Budi Again", "budi@example.com", "password123", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", resp.StatusCode)
	}

	var users int64
	db.Model(&userModel.UserModel{}).Count(&users)
	if users != 1 {
		t.Errorf("user rows = %d, want 1", users)
	}
}

func TestLogin(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	hashed, err := authService.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := userModel.UserModel{
		UserName: "Sari",
		Email:    "sari@example.com",
		Password: hashed,
		Role:     constants.RoleMember,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	login := func(password string) *http.Response {
		body, _ := json.Marshal(map[string]string{"email": "sari@example.com", "password": password})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		return resp
	}

	resp := login("wrong-password")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad-password login status = %d, want 401", resp.StatusCode)
	}

	resp = login("password123")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}
	var out struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if out.Data.Token == "" {
		t.Error("login returned an empty token")
	}
	if out.Data.User.Role != constants.RoleMember {
		t.Errorf("role = %q, want member", out.Data.User.Role)
	}

	// The minted token resolves back to the user on /me.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+out.Data.Token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d, want 200", resp.StatusCode)
	}
}
