package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sneaker-store/internal/config"
	"github.com/sneaker-store/internal/logger"
	"github.com/sneaker-store/internal/models"
	"github.com/sneaker-store/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type apiFixture struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.L = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: "debug"},
		UserJWT: config.JWTConfig{SecretKey: "api-test-secret-key-with-enough-length", ExpireHours: 1},
		Security: config.SecurityConfig{
			BcryptCost:     bcrypt.MinCost,
			LoginRateLimit: config.LoginRateLimitConfig{WindowSeconds: 60, MaxAttempts: 5},
		},
	}
	container := provider.NewContainer(cfg, db, nil)
	return &apiFixture{t: t, db: db, engine: SetupRouter(cfg, container)}
}

func (f *apiFixture) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	f.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			f.t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) decode(w *httptest.ResponseRecorder, dest interface{}) {
	f.t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		f.t.Fatalf("unmarshal %s failed: %v", w.Body.String(), err)
	}
}

func (f *apiFixture) register(email, password string) string {
	f.t.Helper()
	w := f.do(http.MethodPost, "/auth/register", "", map[string]string{"email": email, "password": password})
	if w.Code != http.StatusCreated {
		f.t.Fatalf("register status want 201 got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	f.decode(w, &resp)
	if resp.AccessToken == "" {
		f.t.Fatalf("register should return access token")
	}
	return resp.AccessToken
}

func (f *apiFixture) createProduct(brand, model string, size float64) *models.Product {
	f.t.Helper()
	product := &models.Product{
		Brand:     brand,
		Model:     model,
		Size:      size,
		ColorName: "Black",
		Price:     models.NewMoneyFromInt(12000),
		InStock:   true,
	}
	if err := f.db.Create(product).Error; err != nil {
		f.t.Fatalf("create product failed: %v", err)
	}
	return product
}

type basketLine struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"sneaker_id"`
	Size      float64 `json:"size"`
	Quantity  int     `json:"quantity"`
}

func (f *apiFixture) basket(token string) []basketLine {
	f.t.Helper()
	w := f.do(http.MethodGet, "/basket", token, nil)
	if w.Code != http.StatusOK {
		f.t.Fatalf("basket status want 200 got %d: %s", w.Code, w.Body.String())
	}
	var lines []basketLine
	f.decode(w, &lines)
	return lines
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp map[string]string
	f.decode(w, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("status want ok got %s", resp["status"])
	}
}

func TestUnknownRouteReturnsJSONError(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(http.MethodGet, "/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status want 404 got %d", w.Code)
	}
	var resp map[string]string
	f.decode(w, &resp)
	if resp["error"] == "" {
		t.Fatalf("error message should not be empty")
	}
}

func TestRegisterThenProfileHidesPassword(t *testing.T) {
	f := newAPIFixture(t)
	token := f.register("buyer@example.com", "secret1")

	w := f.do(http.MethodGet, "/auth/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile status want 200 got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("profile must not expose password fields: %s", w.Body.String())
	}
	var profile map[string]interface{}
	f.decode(w, &profile)
	if profile["email"] != "buyer@example.com" {
		t.Fatalf("email want buyer@example.com got %v", profile["email"])
	}

	dup := f.do(http.MethodPost, "/auth/register", "", map[string]string{"email": "buyer@example.com", "password": "other"})
	if dup.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status want 400 got %d", dup.Code)
	}
}

func TestRegisterOverlongPasswordIsBadRequest(t *testing.T) {
	f := newAPIFixture(t)
	password := strings.Repeat("a", 80)

	w := f.do(http.MethodPost, "/auth/register", "", map[string]string{"email": "long@example.com", "password": password})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("register status want 400 got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	f.decode(w, &resp)
	if resp["error"] != "Password must be at most 72 bytes" {
		t.Fatalf("unexpected error message: %q", resp["error"])
	}

	login := f.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "long@example.com", "password": password})
	if login.Code != http.StatusUnauthorized {
		t.Fatalf("login status want 401 got %d", login.Code)
	}
}

func TestUpdateProfile(t *testing.T) {
	f := newAPIFixture(t)
	token := f.register("profile@example.com", "secret1")

	w := f.do(http.MethodPut, "/auth/profile", token, map[string]string{"first_name": "Ann", "email": "hijack@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("update status want 200 got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string                 `json:"message"`
		User    map[string]interface{} `json:"user"`
	}
	f.decode(w, &resp)
	if resp.User["first_name"] != "Ann" {
		t.Fatalf("first_name want Ann got %v", resp.User["first_name"])
	}
	if resp.User["email"] != "profile@example.com" {
		t.Fatalf("email must stay unchanged, got %v", resp.User["email"])
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newAPIFixture(t)
	f.register("login@example.com", "secret1")

	wrongPassword := f.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "login@example.com", "password": "nope"})
	unknownEmail := f.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "ghost@example.com", "password": "nope"})
	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401/401 got %d/%d", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("bodies differ: %s vs %s", wrongPassword.Body.String(), unknownEmail.Body.String())
	}

	ok := f.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "login@example.com", "password": "secret1"})
	if ok.Code != http.StatusOK {
		t.Fatalf("login status want 200 got %d", ok.Code)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "x@example.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
}

func TestProfileRequiresToken(t *testing.T) {
	f := newAPIFixture(t)
	if w := f.do(http.MethodGet, "/auth/profile", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token status want 401 got %d", w.Code)
	}
	if w := f.do(http.MethodGet, "/auth/profile", "garbage", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token status want 401 got %d", w.Code)
	}
}

func TestCatalogListAndDetail(t *testing.T) {
	f := newAPIFixture(t)
	first := f.createProduct("Nike", "Air Max 90", 42)
	f.createProduct("Adidas", "Samba", 41)

	w := f.do(http.MethodGet, "/catalog", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status want 200 got %d", w.Code)
	}
	var items []map[string]interface{}
	f.decode(w, &items)
	if len(items) != 2 {
		t.Fatalf("catalog size want 2 got %d", len(items))
	}

	if items[0]["model"] != "Air Max 90" {
		t.Fatalf("catalog should be ordered by id, first model got %v", items[0]["model"])
	}

	detail := f.do(http.MethodGet, fmt.Sprintf("/catalog/%d", first.ID), "", nil)
	if detail.Code != http.StatusOK {
		t.Fatalf("detail status want 200 got %d", detail.Code)
	}
	var product map[string]interface{}
	f.decode(detail, &product)
	if product["model"] != "Air Max 90" {
		t.Fatalf("model want Air Max 90 got %v", product["model"])
	}
	if product["price"] != 12000.0 {
		t.Fatalf("price want 12000 got %v", product["price"])
	}

	if missing := f.do(http.MethodGet, "/catalog/9999", "", nil); missing.Code != http.StatusNotFound {
		t.Fatalf("missing product status want 404 got %d", missing.Code)
	}
}

func TestBasketMergesSameProductAndSize(t *testing.T) {
	f := newAPIFixture(t)
	token := f.register("basket@example.com", "secret1")
	product := f.createProduct("Nike", "Dunk Low", 42)

	for _, qty := range []int{2, 3} {
		w := f.do(http.MethodPost, "/basket", token, map[string]interface{}{"sneaker_id": product.ID, "size": 42, "quantity": qty})
		if w.Code != http.StatusCreated {
			t.Fatalf("add status want 201 got %d: %s", w.Code, w.Body.String())
		}
	}
	f.do(http.MethodPost, "/basket", token, map[string]interface{}{"sneaker_id": product.ID, "size": 43})

	lines := f.basket(token)
	if len(lines) != 2 {
		t.Fatalf("basket lines want 2 got %d", len(lines))
	}
	if lines[0].Quantity != 5 || lines[0].Size != 42 {
		t.Fatalf("merged line want size 42 qty 5 got size %v qty %d", lines[0].Size, lines[0].Quantity)
	}
	if lines[1].Quantity != 1 {
		t.Fatalf("default quantity want 1 got %d", lines[1].Quantity)
	}

	if w := f.do(http.MethodPost, "/basket", token, map[string]interface{}{"sneaker_id": 9999, "size": 42}); w.Code != http.StatusNotFound {
		t.Fatalf("unknown product status want 404 got %d", w.Code)
	}
}

func TestBasketLinesAreScopedToOwner(t *testing.T) {
	f := newAPIFixture(t)
	owner := f.register("owner@example.com", "secret1")
	other := f.register("other@example.com", "secret1")
	product := f.createProduct("Puma", "Suede", 40)

	f.do(http.MethodPost, "/basket", owner, map[string]interface{}{"sneaker_id": product.ID, "size": 40})
	lines := f.basket(owner)
	if len(lines) != 1 {
		t.Fatalf("owner basket want 1 line got %d", len(lines))
	}
	path := fmt.Sprintf("/basket/%d", lines[0].ID)

	if w := f.do(http.MethodPut, path, other, map[string]int{"quantity": 7}); w.Code != http.StatusNotFound {
		t.Fatalf("foreign update status want 404 got %d", w.Code)
	}
	if w := f.do(http.MethodDelete, path, other, nil); w.Code != http.StatusNotFound {
		t.Fatalf("foreign delete status want 404 got %d", w.Code)
	}
	if got := f.basket(owner); len(got) != 1 || got[0].Quantity != 1 {
		t.Fatalf("owner line must be untouched, got %+v", got)
	}
	if len(f.basket(other)) != 0 {
		t.Fatalf("other basket should be empty")
	}
}

func TestBasketUpdateNonPositiveRemovesLine(t *testing.T) {
	f := newAPIFixture(t)
	token := f.register("update@example.com", "secret1")
	product := f.createProduct("Asics", "Gel-Lyte III", 44)

	f.do(http.MethodPost, "/basket", token, map[string]interface{}{"sneaker_id": product.ID, "size": 44})
	lineID := f.basket(token)[0].ID
	path := fmt.Sprintf("/basket/%d", lineID)

	if w := f.do(http.MethodPut, path, token, map[string]int{"quantity": 4}); w.Code != http.StatusOK {
		t.Fatalf("update status want 200 got %d", w.Code)
	}
	if got := f.basket(token)[0].Quantity; got != 4 {
		t.Fatalf("quantity want 4 got %d", got)
	}

	if w := f.do(http.MethodPut, path, token, map[string]int{"quantity": 0}); w.Code != http.StatusOK {
		t.Fatalf("zero quantity status want 200 got %d", w.Code)
	}
	if len(f.basket(token)) != 0 {
		t.Fatalf("line should be removed when quantity is 0")
	}
	if w := f.do(http.MethodDelete, path, token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("delete removed line status want 404 got %d", w.Code)
	}
}

func TestClearBasketIsIdempotent(t *testing.T) {
	f := newAPIFixture(t)
	token := f.register("clear@example.com", "secret1")
	product := f.createProduct("Vans", "Old Skool", 42)

	if w := f.do(http.MethodDelete, "/basket", token, nil); w.Code != http.StatusOK {
		t.Fatalf("clear empty basket status want 200 got %d", w.Code)
	}
	f.do(http.MethodPost, "/basket", token, map[string]interface{}{"sneaker_id": product.ID, "size": 42})
	if w := f.do(http.MethodDelete, "/basket", token, nil); w.Code != http.StatusOK {
		t.Fatalf("clear status want 200 got %d", w.Code)
	}
	if len(f.basket(token)) != 0 {
		t.Fatalf("basket should be empty after clear")
	}
}

func TestLocalizedErrorMessage(t *testing.T) {
	f := newAPIFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/catalog/9999?lang=ru-RU", nil)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	var resp map[string]string
	f.decode(w, &resp)
	en := f.do(http.MethodGet, "/catalog/9999", "", nil)
	var enResp map[string]string
	f.decode(en, &enResp)
	if resp["error"] == "" || resp["error"] == enResp["error"] {
		t.Fatalf("ru message should differ from en, got %q vs %q", resp["error"], enResp["error"])
	}
}
