package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitbook_backend/internals/configs"
	"fitbook_backend/internals/constants"
	database "fitbook_backend/internals/databases"
	applicationModel "fitbook_backend/internals/features/trainers/application/model"
	trainerModel "fitbook_backend/internals/features/trainers/trainer/model"
	trainerRoute "fitbook_backend/internals/features/trainers/trainer/route"
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
	trainerRoute.TrainerRoutes(app, db)
	return app
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{UserName: name, Email: email, Password: "irrelevant", Role: role, IsActive: true}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func tokenFor(t *testing.T, u userModel.UserModel) string {
	t.Helper()
	tok, err := authService.CreateAccessToken(u)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return tok
}

func applyAsTrainer(t *testing.T, app *fiber.App, bearer string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]any{
		"bio":              "Certified strength coach with a decade of experience.",
		"experience_years": 10,
		"skills":           []string{"strength", "mobility"},
		"available_days":   []string{"Mon", "Wed", "Fri"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/trainers/apply", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearer)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	return resp
}

func reviewApplication(t *testing.T, app *fiber.App, id, bearer, action, feedback string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"action": action, "admin_feedback": feedback})
	req := httptest.NewRequest(http.MethodPatch, "/api/trainers/applications/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearer)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("review application: %v", err)
	}
	return resp
}

// TestApplicationApprovalFlow follows a member from application to approved
// trainer: the user role is promoted, a trainer profile appears with the
// applied skills and my-application reports the final status.
func TestApplicationApprovalFlow(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	applicant := seedUser(t, db, "Applicant", "applicant@example.com", constants.RoleMember)
	admin := seedUser(t, db, "Admin", "admin@example.com", constants.RoleAdmin)

	if resp := applyAsTrainer(t, app, tokenFor(t, applicant)); resp.StatusCode != http.StatusCreated {
		t.Fatalf("apply status = %d, want 201", resp.StatusCode)
	}
	// A second application while one is pending is rejected.
	if resp := applyAsTrainer(t, app, tokenFor(t, applicant)); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("duplicate apply status = %d, want 400", resp.StatusCode)
	}

	var pending applicationModel.TrainerApplicationModel
	if err := db.Where("application_user_id = ?", applicant.ID).First(&pending).Error; err != nil {
		t.Fatalf("load application: %v", err)
	}
	if pending.ApplicationStatus != applicationModel.ApplicationStatusPending {
		t.Fatalf("status = %q, want pending", pending.ApplicationStatus)
	}

	resp := reviewApplication(t, app, pending.ApplicationID.String(), tokenFor(t, admin), "approve", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve status = %d, want 200", resp.StatusCode)
	}

	var user userModel.UserModel
	if err := db.Where("id = ?", applicant.ID).First(&user).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if user.Role != constants.RoleTrainer {
		t.Errorf("user role after approval = %q, want trainer", user.Role)
	}

	var trainer trainerModel.TrainerModel
	if err := db.Where("trainer_user_id = ?", applicant.ID).First(&trainer).Error; err != nil {
		t.Fatalf("trainer profile not created: %v", err)
	}
	if !trainer.TrainerIsApproved {
		t.Errorf("trainer is_approved = false, want true")
	}
	if len(trainer.TrainerSkills) != 2 || trainer.TrainerSkills[0] != "strength" {
		t.Errorf("trainer skills = %v, want the applied skills", trainer.TrainerSkills)
	}

	// my-application reflects the terminal status.
	req := httptest.NewRequest(http.MethodGet, "/api/trainers/my-application", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	appResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("my-application: %v", err)
	}
	if appResp.StatusCode != http.StatusOK {
		t.Fatalf("my-application status = %d, want 200", appResp.StatusCode)
	}
	var out struct {
		Data applicationModel.TrainerApplicationModel `json:"data"`
	}
	if err := json.NewDecoder(appResp.Body).Decode(&out); err != nil {
		t.Fatalf("decode my-application: %v", err)
	}
	if out.Data.ApplicationStatus != applicationModel.ApplicationStatusApproved {
		t.Errorf("my-application status = %q, want approved", out.Data.ApplicationStatus)
	}

	// An approved application has been reviewed; re-review must fail.
	resp = reviewApplication(t, app, pending.ApplicationID.String(), tokenFor(t, admin), "reject", "changed my mind")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("re-review status = %d, want 400", resp.StatusCode)
	}
}

// TestApplicationRejectionCooldown checks that a rejected applicant is
// blocked for one calendar month and admitted again afterwards.
func TestApplicationRejectionCooldown(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	applicant := seedUser(t, db, "Applicant", "applicant@example.com", constants.RoleMember)
	admin := seedUser(t, db, "Admin", "admin@example.com", constants.RoleAdmin)

	if resp := applyAsTrainer(t, app, tokenFor(t, applicant)); resp.StatusCode != http.StatusCreated {
		t.Fatalf("apply status = %d, want 201", resp.StatusCode)
	}

	var pending applicationModel.TrainerApplicationModel
	if err := db.Where("application_user_id = ?", applicant.ID).First(&pending).Error; err != nil {
		t.Fatalf("load application: %v", err)
	}

	// Rejection without feedback is refused.
	resp := reviewApplication(t, app, pending.ApplicationID.String(), tokenFor(t, admin), "reject", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("reject without feedback status = %d, want 400", resp.StatusCode)
	}

	resp = reviewApplication(t, app, pending.ApplicationID.String(), tokenFor(t, admin), "reject", "Not enough experience yet")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reject status = %d, want 200", resp.StatusCode)
	}

	// Inside the cooldown window the re-application is forbidden.
	if resp := applyAsTrainer(t, app, tokenFor(t, applicant)); resp.StatusCode != http.StatusForbidden {
		t.Errorf("re-apply inside cooldown status = %d, want 403", resp.StatusCode)
	}

	// Backdate the rejection past the one-month window.
	if err := db.Model(&applicationModel.TrainerApplicationModel{}).
		Where("application_id = ?", pending.ApplicationID).
		UpdateColumn("application_updated_at", time.Now().AddDate(0, -2, 0)).Error; err != nil {
		t.Fatalf("backdate rejection: %v", err)
	}

	if resp := applyAsTrainer(t, app, tokenFor(t, applicant)); resp.StatusCode != http.StatusCreated {
		t.Errorf("re-apply after cooldown status = %d, want 201", resp.StatusCode)
	}

	var count int64
	db.Model(&applicationModel.TrainerApplicationModel{}).
		Where("application_user_id = ?", applicant.ID).
		Count(&count)
	if count != 2 {
		t.Errorf("application rows = %d, want 2", count)
	}
}
