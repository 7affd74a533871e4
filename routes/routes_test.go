package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayspot-api/config"
	"stayspot-api/models"
	"stayspot-api/services"
	"stayspot-api/utils"
)

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Spot{},
		&models.SpotImage{},
		&models.Review{},
		&models.ReviewImage{},
		&models.Booking{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	// Unreachable SMTP endpoint; mail failures are logged, never surfaced
	emailService := services.NewEmailService(&config.Config{
		SMTPHost:  "localhost",
		SMTPPort:  1,
		FromEmail: "noreply@test.local",
		FromName:  "StaySpot Test",
	})

	r := gin.New()
	SetupRoutes(r, db, "test-secret", emailService)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
	return body
}

// signup creates a user through the API and returns its session cookie.
func signup(t *testing.T, r *gin.Engine, firstName, username, email string) string {
	t.Helper()

	body := fmt.Sprintf(`{"firstName":%q,"lastName":"Tester","username":%q,"email":%q,"password":"password123"}`,
		firstName, username, email)
	w := doJSON(t, r, http.MethodPost, "/api/users", body, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed with %d: %s", w.Code, w.Body.String())
	}

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("signup did not set a session cookie")
	return ""
}

func createSpot(t *testing.T, r *gin.Engine, cookie, name string, lat, lng, price float64) string {
	t.Helper()

	body := fmt.Sprintf(`{"address":"123 Main St","city":"Santa Cruz","state":"California","country":"United States","lat":%g,"lng":%g,"name":%q,"description":"A lovely place","price":%g}`,
		lat, lng, name, price)
	w := doJSON(t, r, http.MethodPost, "/api/spots", body, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create spot failed with %d: %s", w.Code, w.Body.String())
	}

	return parseBody(t, w)["id"].(string)
}

func TestSignupAndSessionLifecycle(t *testing.T) {
	r, _ := setupTestServer(t)

	cookie := signup(t, r, "Alice", "alice_host", "alice@example.com")

	// Restore returns the safe user, never the password hash
	w := doJSON(t, r, http.MethodGet, "/api/session", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("restore failed with %d", w.Code)
	}
	body := parseBody(t, w)
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected user object, got %v", body)
	}
	if user["username"] != "alice_host" {
		t.Errorf("unexpected username %v", user["username"])
	}
	if _, leaked := user["hashedPassword"]; leaked {
		t.Error("password hash leaked in session response")
	}

	// Without a session the restore endpoint reports user:null
	w = doJSON(t, r, http.MethodGet, "/api/session", "", "")
	if parseBody(t, w)["user"] != nil {
		t.Error("expected user:null without a session")
	}

	// Duplicate email and username are both reported
	w = doJSON(t, r, http.MethodPost, "/api/users",
		`{"firstName":"Alice","lastName":"Clone","username":"alice_host","email":"alice@example.com","password":"password123"}`, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected duplicate signup rejection, got %d", w.Code)
	}
	errors := parseBody(t, w)["errors"].(map[string]interface{})
	if errors["email"] == nil || errors["username"] == nil {
		t.Errorf("expected both duplicate fields reported, got %v", errors)
	}
}

func TestLoginWithUsernameOrEmail(t *testing.T) {
	r, _ := setupTestServer(t)
	signup(t, r, "Alice", "alice_host", "alice@example.com")

	for _, credential := range []string{"alice_host", "alice@example.com"} {
		body := fmt.Sprintf(`{"credential":%q,"password":"password123"}`, credential)
		w := doJSON(t, r, http.MethodPost, "/api/session", body, "")
		if w.Code != http.StatusOK {
			t.Errorf("login with %q failed: %d %s", credential, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodPost, "/api/session", `{"credential":"alice_host","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", w.Code)
	}
	if parseBody(t, w)["message"] != "Invalid credentials" {
		t.Error("expected Invalid credentials message")
	}
}

func TestBookingConflictEndToEnd(t *testing.T) {
	r, db := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	guestB := signup(t, r, "GuestB", "guest_bee", "b@example.com")
	guestC := signup(t, r, "GuestC", "guest_cee", "c@example.com")

	spotID := createSpot(t, r, hostCookie, "Conflict Cottage", 10, 10, 100)

	w := doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/bookings",
		`{"startDate":"2030-06-01","endDate":"2030-06-05"}`, guestB)
	if w.Code != http.StatusCreated {
		t.Fatalf("first booking failed with %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/bookings",
		`{"startDate":"2030-06-03","endDate":"2030-06-07"}`, guestC)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected booking conflict, got %d: %s", w.Code, w.Body.String())
	}
	body := parseBody(t, w)
	if body["message"] != "Sorry, this spot is already booked for the specified dates" {
		t.Errorf("unexpected conflict message %v", body["message"])
	}
	errors := body["errors"].(map[string]interface{})
	if errors["startDate"] != "Start date conflicts with an existing booking" {
		t.Errorf("expected startDate conflict, got %v", errors)
	}

	var count int64
	db.Model(&models.Booking{}).Where("spot_id = ?", spotID).Count(&count)
	if count != 1 {
		t.Errorf("conflicting booking must not be stored: expected 1, got %d", count)
	}
}

func TestOwnSpotBookingRejected(t *testing.T) {
	r, _ := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	spotID := createSpot(t, r, hostCookie, "My Own Place", 10, 10, 100)

	w := doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/bookings",
		`{"startDate":"2030-06-01","endDate":"2030-06-05"}`, hostCookie)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for own-spot booking, got %d", w.Code)
	}
	if parseBody(t, w)["message"] != "Spot must NOT belong to the current user" {
		t.Error("unexpected own-spot booking message")
	}
}

func TestSpotBookingsVisibility(t *testing.T) {
	r, _ := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	guestCookie := signup(t, r, "Guest", "the_guest", "guest@example.com")
	otherCookie := signup(t, r, "Other", "bystander", "other@example.com")

	spotID := createSpot(t, r, hostCookie, "Lake House", 10, 10, 100)
	w := doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/bookings",
		`{"startDate":"2030-06-01","endDate":"2030-06-05"}`, guestCookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %s", w.Body.String())
	}

	// The owner sees guest identity
	w = doJSON(t, r, http.MethodGet, "/api/spots/"+spotID+"/bookings", "", hostCookie)
	bookings := parseBody(t, w)["Bookings"].([]interface{})
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
	ownerView := bookings[0].(map[string]interface{})
	if ownerView["User"] == nil || ownerView["id"] == nil {
		t.Errorf("owner should see full booking with guest, got %v", ownerView)
	}

	// Everyone else sees dates only
	w = doJSON(t, r, http.MethodGet, "/api/spots/"+spotID+"/bookings", "", otherCookie)
	bookings = parseBody(t, w)["Bookings"].([]interface{})
	guestView := bookings[0].(map[string]interface{})
	if guestView["User"] != nil || guestView["id"] != nil {
		t.Errorf("non-owner must only see dates, got %v", guestView)
	}
	if guestView["startDate"] != "2030-06-01" || guestView["endDate"] != "2030-06-05" {
		t.Errorf("unexpected dates in %v", guestView)
	}
}

func TestDuplicateReviewRejected(t *testing.T) {
	r, db := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	guestCookie := signup(t, r, "Guest", "the_guest", "guest@example.com")

	spotID := createSpot(t, r, hostCookie, "Review Me", 10, 10, 100)

	w := doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/reviews",
		`{"review":"Great stay","stars":4}`, guestCookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("first review failed with %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/reviews",
		`{"review":"Trying again","stars":5}`, guestCookie)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected duplicate review rejection, got %d", w.Code)
	}
	if parseBody(t, w)["message"] != "User already has a review for this spot" {
		t.Error("unexpected duplicate review message")
	}

	var count int64
	db.Model(&models.Review{}).Where("spot_id = ?", spotID).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 review, got %d", count)
	}
}

func TestSpotOwnershipEnforced(t *testing.T) {
	r, db := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	otherCookie := signup(t, r, "Other", "bystander", "other@example.com")

	spotID := createSpot(t, r, hostCookie, "Protected Spot", 10, 10, 100)
	updateBody := `{"address":"456 Side St","city":"Elsewhere","state":"Nevada","country":"United States","lat":20,"lng":20,"name":"Hijacked","description":"Changed","price":1}`

	// Unauthenticated mutation fails before any lookup
	w := doJSON(t, r, http.MethodPut, "/api/spots/"+spotID, updateBody, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without session, got %d", w.Code)
	}

	// Authenticated non-owner gets 403 and the spot is unchanged
	w = doJSON(t, r, http.MethodPut, "/api/spots/"+spotID, updateBody, otherCookie)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-owner, got %d", w.Code)
	}

	var spot models.Spot
	if err := db.First(&spot, "id = ?", spotID).Error; err != nil {
		t.Fatal(err)
	}
	if spot.Name != "Protected Spot" {
		t.Error("non-owner update must not modify the spot")
	}

	w = doJSON(t, r, http.MethodDelete, "/api/spots/"+spotID, "", otherCookie)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-owner delete, got %d", w.Code)
	}

	// Missing resources are 404 regardless of who asks
	w = doJSON(t, r, http.MethodPut, "/api/spots/no-such-spot", updateBody, otherCookie)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing spot, got %d", w.Code)
	}
	if parseBody(t, w)["message"] != "Spot couldn't be found" {
		t.Error("unexpected not-found message")
	}
}

func TestSpotDetailAggregates(t *testing.T) {
	r, _ := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	guestB := signup(t, r, "GuestB", "guest_bee", "b@example.com")
	guestC := signup(t, r, "GuestC", "guest_cee", "c@example.com")

	spotID := createSpot(t, r, hostCookie, "Rated Spot", 10, 10, 100)

	// No reviews yet: sentinel, not zero
	w := doJSON(t, r, http.MethodGet, "/api/spots/"+spotID, "", "")
	detail := parseBody(t, w)
	if detail["avgStarRating"] != "No ratings yet" {
		t.Errorf("expected rating sentinel, got %v", detail["avgStarRating"])
	}
	if detail["numReviews"] != float64(0) {
		t.Errorf("expected numReviews 0, got %v", detail["numReviews"])
	}

	doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/reviews", `{"review":"Good","stars":4}`, guestB)
	doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/reviews", `{"review":"Great","stars":5}`, guestC)

	w = doJSON(t, r, http.MethodGet, "/api/spots/"+spotID, "", "")
	detail = parseBody(t, w)
	if detail["avgStarRating"] != 4.5 {
		t.Errorf("expected avgStarRating 4.5, got %v", detail["avgStarRating"])
	}
	if detail["numReviews"] != float64(2) {
		t.Errorf("expected numReviews 2, got %v", detail["numReviews"])
	}
	if detail["Owner"] == nil || detail["SpotImages"] == nil {
		t.Error("detail view must include Owner and SpotImages")
	}

	// Idempotent without intervening writes
	w = doJSON(t, r, http.MethodGet, "/api/spots/"+spotID, "", "")
	again := parseBody(t, w)
	if again["avgStarRating"] != detail["avgStarRating"] || again["numReviews"] != detail["numReviews"] {
		t.Error("spot detail changed between identical reads")
	}
}

func TestPreviewImageExclusive(t *testing.T) {
	r, db := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	spotID := createSpot(t, r, hostCookie, "Pictured Spot", 10, 10, 100)

	w := doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/images",
		`{"url":"https://example.com/first.jpg","preview":true}`, hostCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("first image failed: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/images",
		`{"url":"https://example.com/second.jpg","preview":true}`, hostCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("second image failed: %s", w.Body.String())
	}

	var previews []models.SpotImage
	db.Where("spot_id = ? AND preview = ?", spotID, true).Find(&previews)
	if len(previews) != 1 {
		t.Fatalf("expected exactly one preview image, got %d", len(previews))
	}
	if previews[0].URL != "https://example.com/second.jpg" {
		t.Errorf("newest preview should win, got %q", previews[0].URL)
	}

	// List view picks up the surviving preview
	w = doJSON(t, r, http.MethodGet, "/api/spots", "", "")
	spots := parseBody(t, w)["Spots"].([]interface{})
	summary := spots[0].(map[string]interface{})
	if summary["previewImage"] != "https://example.com/second.jpg" {
		t.Errorf("unexpected previewImage %v", summary["previewImage"])
	}
	if summary["SpotImages"] != nil || summary["Reviews"] != nil {
		t.Error("list view must not include raw image/review collections")
	}
}

func TestSpotListFilters(t *testing.T) {
	r, _ := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	createSpot(t, r, hostCookie, "Cheap Spot", 10, 10, 50)
	createSpot(t, r, hostCookie, "Pricey Spot", 40, 40, 500)

	w := doJSON(t, r, http.MethodGet, "/api/spots?minPrice=100", "", "")
	spots := parseBody(t, w)["Spots"].([]interface{})
	if len(spots) != 1 {
		t.Fatalf("expected 1 spot over minPrice, got %d", len(spots))
	}
	if spots[0].(map[string]interface{})["name"] != "Pricey Spot" {
		t.Error("price filter returned the wrong spot")
	}

	w = doJSON(t, r, http.MethodGet, "/api/spots?maxLat=20", "", "")
	spots = parseBody(t, w)["Spots"].([]interface{})
	if len(spots) != 1 || spots[0].(map[string]interface{})["name"] != "Cheap Spot" {
		t.Error("latitude filter returned the wrong spots")
	}

	// Invalid filters are rejected with per-field errors
	w = doJSON(t, r, http.MethodGet, "/api/spots?page=0", "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for page=0, got %d", w.Code)
	}
	errors := parseBody(t, w)["errors"].(map[string]interface{})
	if errors["page"] != "Page must be greater than or equal to 1" {
		t.Errorf("unexpected page error %v", errors)
	}

	w = doJSON(t, r, http.MethodGet, "/api/spots?minPrice=-5", "", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative minPrice, got %d", w.Code)
	}
}

func TestBookingUpdateAndDeleteRules(t *testing.T) {
	r, db := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	guestCookie := signup(t, r, "Guest", "the_guest", "guest@example.com")
	otherCookie := signup(t, r, "Other", "bystander", "other@example.com")

	spotID := createSpot(t, r, hostCookie, "Booked Spot", 10, 10, 100)

	w := doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/bookings",
		`{"startDate":"2030-06-01","endDate":"2030-06-05"}`, guestCookie)
	bookingID := parseBody(t, w)["id"].(string)

	// A stranger may neither edit nor cancel
	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+bookingID,
		`{"startDate":"2030-07-01","endDate":"2030-07-05"}`, otherCookie)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-author update, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+bookingID, "", otherCookie)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-author delete, got %d", w.Code)
	}

	// The author can move the dates
	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+bookingID,
		`{"startDate":"2030-07-01","endDate":"2030-07-05"}`, guestCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("author update failed with %d: %s", w.Code, w.Body.String())
	}
	if parseBody(t, w)["startDate"] != "2030-07-01" {
		t.Error("updated startDate not reflected")
	}

	// The spot owner can cancel a guest's booking
	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+bookingID, "", hostCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete failed with %d", w.Code)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("expected booking deleted, got %d remaining", count)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+bookingID, "", guestCookie)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for deleted booking, got %d", w.Code)
	}
}

func TestBookingUpdateRefreshesTimestamp(t *testing.T) {
	r, db := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	guestCookie := signup(t, r, "Guest", "the_guest", "guest@example.com")

	spotID := createSpot(t, r, hostCookie, "Timestamped Spot", 10, 10, 100)
	w := doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/bookings",
		`{"startDate":"2030-06-01","endDate":"2030-06-05"}`, guestCookie)
	bookingID := parseBody(t, w)["id"].(string)

	// Backdate updated_at so a stale in-memory struct is distinguishable
	// from the persisted row.
	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	err := db.Model(&models.Booking{}).Where("id = ?", bookingID).
		UpdateColumn("updated_at", stale).Error
	if err != nil {
		t.Fatal(err)
	}

	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+bookingID,
		`{"startDate":"2030-06-02","endDate":"2030-06-06"}`, guestCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("update failed with %d: %s", w.Code, w.Body.String())
	}
	body := parseBody(t, w)

	var reloaded models.Booking
	if err := db.First(&reloaded, "id = ?", bookingID).Error; err != nil {
		t.Fatal(err)
	}
	if body["updatedAt"] == utils.FormatDateTime(stale) {
		t.Error("response rendered the pre-update timestamp")
	}
	if body["updatedAt"] != utils.FormatDateTime(reloaded.UpdatedAt) {
		t.Errorf("response updatedAt %v does not match the stored row %v",
			body["updatedAt"], utils.FormatDateTime(reloaded.UpdatedAt))
	}
	if body["startDate"] != "2030-06-02" || body["endDate"] != "2030-06-06" {
		t.Errorf("updated dates not reflected: %v .. %v", body["startDate"], body["endDate"])
	}
}

func TestReviewImageCap(t *testing.T) {
	r, _ := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	guestCookie := signup(t, r, "Guest", "the_guest", "guest@example.com")

	spotID := createSpot(t, r, hostCookie, "Snapshot Spot", 10, 10, 100)
	w := doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/reviews",
		`{"review":"Lovely","stars":5}`, guestCookie)
	reviewID := parseBody(t, w)["id"].(string)

	for i := 0; i < models.MaxReviewImages; i++ {
		body := fmt.Sprintf(`{"url":"https://example.com/%d.jpg"}`, i)
		w = doJSON(t, r, http.MethodPost, "/api/reviews/"+reviewID+"/images", body, guestCookie)
		if w.Code != http.StatusOK {
			t.Fatalf("image %d failed with %d: %s", i, w.Code, w.Body.String())
		}
	}

	w = doJSON(t, r, http.MethodPost, "/api/reviews/"+reviewID+"/images",
		`{"url":"https://example.com/too-many.jpg"}`, guestCookie)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected image cap rejection, got %d", w.Code)
	}
	if parseBody(t, w)["message"] != "Maximum number of images for this resource was reached" {
		t.Error("unexpected image cap message")
	}
}

func TestSpotDeleteCascades(t *testing.T) {
	r, db := setupTestServer(t)

	hostCookie := signup(t, r, "Host", "spot_host", "host@example.com")
	guestCookie := signup(t, r, "Guest", "the_guest", "guest@example.com")

	spotID := createSpot(t, r, hostCookie, "Doomed Spot", 10, 10, 100)
	doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/images",
		`{"url":"https://example.com/a.jpg","preview":true}`, hostCookie)
	w := doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/reviews",
		`{"review":"Short lived","stars":3}`, guestCookie)
	reviewID := parseBody(t, w)["id"].(string)
	doJSON(t, r, http.MethodPost, "/api/reviews/"+reviewID+"/images",
		`{"url":"https://example.com/r.jpg"}`, guestCookie)
	doJSON(t, r, http.MethodPost, "/api/spots/"+spotID+"/bookings",
		`{"startDate":"2030-06-01","endDate":"2030-06-05"}`, guestCookie)

	w = doJSON(t, r, http.MethodDelete, "/api/spots/"+spotID, "", hostCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("spot delete failed with %d: %s", w.Code, w.Body.String())
	}

	var spotImages, reviews, reviewImages, bookings int64
	db.Model(&models.SpotImage{}).Where("spot_id = ?", spotID).Count(&spotImages)
	db.Model(&models.Review{}).Where("spot_id = ?", spotID).Count(&reviews)
	db.Model(&models.ReviewImage{}).Where("review_id = ?", reviewID).Count(&reviewImages)
	db.Model(&models.Booking{}).Where("spot_id = ?", spotID).Count(&bookings)

	if spotImages+reviews+reviewImages+bookings != 0 {
		t.Errorf("expected all child rows removed, got spotImages=%d reviews=%d reviewImages=%d bookings=%d",
			spotImages, reviews, reviewImages, bookings)
	}

	w = doJSON(t, r, http.MethodGet, "/api/spots/"+spotID, "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}
