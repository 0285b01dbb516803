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
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitbook_backend/internals/configs"
	"fitbook_backend/internals/constants"
	database "fitbook_backend/internals/databases"
	bookingModel "fitbook_backend/internals/features/bookings/model"
	classModel "fitbook_backend/internals/features/classes/model"
	paymentModel "fitbook_backend/internals/features/payments/model"
	paymentRoute "fitbook_backend/internals/features/payments/route"
	slotModel "fitbook_backend/internals/features/slots/model"
	trainerModel "fitbook_backend/internals/features/trainers/trainer/model"
	authService "fitbook_backend/internals/features/users/auth/service"
	userModel "fitbook_backend/internals/features/users/user/model"
	helper "fitbook_backend/internals/helpers"
)

func init() {
	configs.JWTSecret = "test-secret"
}

// openTestDB returns an isolated in-file SQLite database in a temp directory.
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
	paymentRoute.PaymentRoutes(app, db)
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

func jsonRequest(method, target, bearer string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return req
}

// seedBookableSlot creates a trainer (with backing user), a class and an
// available slot.
func seedBookableSlot(t *testing.T, db *gorm.DB) (trainerModel.TrainerModel, classModel.ClassModel, slotModel.SlotModel) {
	t.Helper()
	trainerUser := seedUser(t, db, "Coach Rina", "rina@example.com", constants.RoleTrainer)
	trainer := trainerModel.TrainerModel{TrainerUserID: trainerUser.ID, TrainerIsApproved: true}
	if err := db.Create(&trainer).Error; err != nil {
		t.Fatalf("seed trainer: %v", err)
	}
	cls := classModel.ClassModel{ClassName: "Strength Basics", ClassIsActive: true}
	if err := db.Create(&cls).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	slot := slotModel.SlotModel{
		SlotTrainerID: trainer.TrainerID,
		SlotClassID:   cls.ClassID,
		SlotStartTime: time.Now().Add(48 * time.Hour),
	}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	return trainer, cls, slot
}

// TestConfirmBookingWorkflow checks that one confirmation call creates the
// booking, flips the slot to booked, bumps the class counter and records a
// transaction with the trainer-name snapshot, and that a second call on the
// same slot is rejected without touching anything.
func TestConfirmBookingWorkflow(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	member := seedUser(t, db, "Member Budi", "budi@example.com", constants.RoleMember)
	_, cls, slot := seedBookableSlot(t, db)

	body := map[string]any{
		"slot_id":         slot.SlotID,
		"package_type":    "single",
		"amount_idr":      150000,
		"payment_id":      "booking-abc123",
		"gateway_payload": map[string]any{"transaction_status": "settlement"},
	}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/payments/confirm-booking", tokenFor(t, member), body))
	if err != nil {
		t.Fatalf("confirm booking: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("confirm booking status = %d, want 201", resp.StatusCode)
	}

	var booking bookingModel.BookingModel
	if err := db.Where("booking_member_id = ?", member.ID).First(&booking).Error; err != nil {
		t.Fatalf("booking row not found: %v", err)
	}
	if booking.BookingSlotID != slot.SlotID {
		t.Errorf("booking slot = %s, want %s", booking.BookingSlotID, slot.SlotID)
	}
	if booking.BookingPaymentStatus != bookingModel.PaymentStatusCompleted {
		t.Errorf("payment status = %q, want completed", booking.BookingPaymentStatus)
	}
	if booking.BookingStatus != bookingModel.BookingStatusUpcoming {
		t.Errorf("booking status = %q, want upcoming", booking.BookingStatus)
	}

	var gotSlot slotModel.SlotModel
	if err := db.Where("slot_id = ?", slot.SlotID).First(&gotSlot).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if gotSlot.SlotStatus != slotModel.SlotStatusBooked || !gotSlot.SlotIsBooked {
		t.Errorf("slot after booking = (%q, %v), want (booked, true)", gotSlot.SlotStatus, gotSlot.SlotIsBooked)
	}

	var gotClass classModel.ClassModel
	if err := db.Where("class_id = ?", cls.ClassID).First(&gotClass).Error; err != nil {
		t.Fatalf("reload class: %v", err)
	}
	if gotClass.ClassBookingCount != 1 {
		t.Errorf("class booking count = %d, want 1", gotClass.ClassBookingCount)
	}

	var trx paymentModel.TransactionModel
	if err := db.Where("transaction_booking_id = ?", booking.BookingID).First(&trx).Error; err != nil {
		t.Fatalf("transaction row not found: %v", err)
	}
	if trx.TransactionTrainerName != "Coach Rina" {
		t.Errorf("trainer name snapshot = %q, want Coach Rina", trx.TransactionTrainerName)
	}
	if trx.TransactionAmountIDR != 150000 {
		t.Errorf("transaction amount = %d, want 150000", trx.TransactionAmountIDR)
	}

	// Second confirmation on the same slot must fail and leave counts alone.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/payments/confirm-booking", tokenFor(t, member), body))
	if err != nil {
		t.Fatalf("second confirm: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("second confirm status = %d, want 400", resp.StatusCode)
	}

	var bookings int64
	db.Model(&bookingModel.BookingModel{}).Count(&bookings)
	if bookings != 1 {
		t.Errorf("bookings after rejected confirm = %d, want 1", bookings)
	}
	db.Where("class_id = ?", cls.ClassID).First(&gotClass)
	if gotClass.ClassBookingCount != 1 {
		t.Errorf("class booking count after rejected confirm = %d, want 1", gotClass.ClassBookingCount)
	}
}

func TestConfirmBookingUnknownSlot(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	member := seedUser(t, db, "Member Sari", "sari@example.com", constants.RoleMember)

	body := map[string]any{
		"slot_id":      uuid.New(),
		"package_type": "single",
		"amount_idr":   100000,
		"payment_id":   "booking-missing",
	}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/payments/confirm-booking", tokenFor(t, member), body))
	if err != nil {
		t.Fatalf("confirm booking: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var bookings int64
	db.Model(&bookingModel.BookingModel{}).Count(&bookings)
	if bookings != 0 {
		t.Errorf("bookings = %d, want 0", bookings)
	}
}

// TestAdminStatsRevenue checks the aggregate endpoint over seeded
// transactions.
func TestAdminStatsRevenue(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	admin := seedUser(t, db, "Admin", "admin@example.com", constants.RoleAdmin)
	member := seedUser(t, db, "Member", "member@example.com", constants.RoleMember)
	trainer, _, slot := seedBookableSlot(t, db)

	for i, amount := range []int{100000, 250000} {
		booking := bookingModel.BookingModel{
			BookingMemberID:      member.ID,
			BookingTrainerID:     trainer.TrainerID,
			BookingSlotID:        slot.SlotID,
			BookingPackageType:   "single",
			BookingAmountIDR:     amount,
			BookingPaymentID:     "booking-stats",
			BookingPaymentStatus: bookingModel.PaymentStatusCompleted,
		}
		if err := db.Create(&booking).Error; err != nil {
			t.Fatalf("seed booking %d: %v", i, err)
		}
		trx := paymentModel.TransactionModel{
			TransactionBookingID: booking.BookingID,
			TransactionMemberID:  member.ID,
			TransactionTrainerID: trainer.TrainerID,
			TransactionAmountIDR: amount,
			TransactionStatus:    paymentModel.TransactionStatusCompleted,
		}
		if err := db.Create(&trx).Error; err != nil {
			t.Fatalf("seed transaction %d: %v", i, err)
		}
	}

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/payments/admin-stats", tokenFor(t, admin), nil))
	if err != nil {
		t.Fatalf("admin stats: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Status string `json:"status"`
		Data   struct {
			TotalRevenueIDR  int64 `json:"total_revenue_idr"`
			TransactionCount int64 `json:"transaction_count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if out.Data.TotalRevenueIDR != 350000 {
		t.Errorf("total revenue = %d, want 350000", out.Data.TotalRevenueIDR)
	}
	if out.Data.TransactionCount != 2 {
		t.Errorf("transaction count = %d, want 2", out.Data.TransactionCount)
	}

	// Members must not reach the dashboard.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/payments/admin-stats", tokenFor(t, member), nil))
	if err != nil {
		t.Fatalf("admin stats as member: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("member stats status = %d, want 403", resp.StatusCode)
	}
}
