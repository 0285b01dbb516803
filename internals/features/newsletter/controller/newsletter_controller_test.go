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
	"fitbook_backend/internals/features/newsletter/model"
	newsletterRoute "fitbook_backend/internals/features/newsletter/route"
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
	newsletterRoute.NewsletterRoutes(app, db)
	return app
}

func subscribe(t *testing.T, app *fiber.App, email, name string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "name": name})
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("subscribe %s: %v", email, err)
	}
	return resp
}

func TestSubscribeAndDuplicate(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	if resp := subscribe(t, app, "reader@example.com", "Reader"); resp.StatusCode != http.StatusCreated {
		t.Fatalf("subscribe status = %d, want 201", resp.StatusCode)
	}
	// Same address again, different casing: still one subscriber.
	if resp := subscribe(t, app, "Reader@Example.com", "Reader"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("duplicate subscribe status = %d, want 400", resp.StatusCode)
	}
	if resp := subscribe(t, app, "not-an-email", "Reader"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid email status = %d, want 400", resp.StatusCode)
	}

	var count int64
	db.Model(&model.NewsletterSubscriberModel{}).Count(&count)
	if count != 1 {
		t.Errorf("subscriber rows = %d, want 1", count)
	}
}

func TestSubscriberListIsAdminOnly(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	subscribe(t, app, "a@example.com", "A")
	subscribe(t, app, "b@example.com", "B")

	member := userModel.UserModel{UserName: "Member", Email: "member@example.com", Password: "irrelevant", Role: constants.RoleMember, IsActive: true}
	admin := userModel.UserModel{UserName: "Admin", Email: "admin@example.com", Password: "irrelevant", Role: constants.RoleAdmin, IsActive: true}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	list := func(u userModel.UserModel) *http.Response {
		token, err := authService.CreateAccessToken(u)
		if err != nil {
			t.Fatalf("mint token: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/api/newsletter/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("list subscribers: %v", err)
		}
		return resp
	}

	if resp := list(member); resp.StatusCode != http.StatusForbidden {
		t.Errorf("member list status = %d, want 403", resp.StatusCode)
	}

	resp := list(admin)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin list status = %d, want 200", resp.StatusCode)
	}
	var out struct {
		Data []model.NewsletterSubscriberModel `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode subscribers: %v", err)
	}
	if len(out.Data) != 2 {
		t.Errorf("subscribers listed = %d, want 2", len(out.Data))
	}
}
