package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mdnaeem95/purifai-mobile/src/database"
	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/mdnaeem95/purifai-mobile/src/processors"
	"github.com/mdnaeem95/purifai-mobile/src/services"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router http.Handler
	selfID string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	now := func() time.Time { return time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC) }

	db, err := database.Open(filepath.Join(t.TempDir(), "handlers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	members := database.NewMemberRepository(db)
	records := services.NewCachedRecordRepository(database.NewRecordRepository(db), cache.New(time.Minute, time.Minute))
	nisab, err := services.NewNisabService(ctx, models.DefaultNisab(), database.NewNisabRepository(db), now)
	require.NoError(t, err)
	family := services.NewFamilyService(members, records, now)
	self, err := family.EnsureSelf(ctx, "Self")
	require.NoError(t, err)

	calc := services.NewCalculatorService(records, members, nisab, processors.NewZakatProcessor(), "SGD")
	portfolio := services.NewPortfolioService(records, members, processors.NewPortfolioProcessor())

	r := chi.NewRouter()
	r.Use(ContextualLoggerMiddleware)
	r.Route("/api", APIRoutes(
		NewNisabHandler(nisab),
		NewCalculatorHandler(calc),
		NewMemberHandler(family),
		NewPortfolioHandler(portfolio),
	))
	return &testServer{router: r, selfID: self.ID}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rr := s.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestNisabEndpoints(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/api/nisab", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.DefaultNisab(), decode[models.NisabReference](t, rr))

	rr = s.do(t, http.MethodPut, "/api/nisab", `{"monetaryThreshold":18000,"goldWeightThreshold":85,"goldPricePerGram":211.76}`)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode[models.NisabReference](t, rr)
	assert.Equal(t, 18000.0, updated.MonetaryThreshold)
	assert.Equal(t, "2026-02-08", updated.UpdatedDate)

	rr = s.do(t, http.MethodPut, "/api/nisab", `{"monetaryThreshold":0,"goldWeightThreshold":85,"goldPricePerGram":211.76}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(t, http.MethodPut, "/api/nisab", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCatalogue(t *testing.T) {
	s := newTestServer(t)
	rr := s.do(t, http.MethodGet, "/api/calculators", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]processors.CalculatorMeta](t, rr), len(models.AssetClasses))
}

func TestSaveRecordAndTotal(t *testing.T) {
	s := newTestServer(t)
	base := "/api/members/" + s.selfID

	rr := s.do(t, http.MethodPut, base+"/records/cash", `{"accounts":[{"id":"1","name":"DBS","lowestAmountInYear":"20,000"}]}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	summary := decode[models.CalculationSummary](t, rr)
	assert.True(t, summary.IsAboveNisab)
	assert.InDelta(t, 500.0, summary.ZakatDue, 1e-6)

	rr = s.do(t, http.MethodGet, base+"/total", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.InDelta(t, 500.0, decode[totalResponse](t, rr).TotalZakatDue, 1e-6)

	rr = s.do(t, http.MethodGet, base+"/records", "")
	require.Equal(t, http.StatusOK, rr.Code)
	set := decode[models.RecordSet](t, rr)
	require.NotNil(t, set.Cash)
	assert.True(t, set.Cash.Calculated)

	rr = s.do(t, http.MethodGet, base+"/payment-summary", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "S$500.00", decode[models.PaymentSummary](t, rr).Formatted)

	rr = s.do(t, http.MethodDelete, base+"/records/cash", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(t, http.MethodGet, base+"/total", "")
	assert.Equal(t, 0.0, decode[totalResponse](t, rr).TotalZakatDue)
}

func TestPreviewDoesNotSave(t *testing.T) {
	s := newTestServer(t)
	base := "/api/members/" + s.selfID

	rr := s.do(t, http.MethodPost, base+"/records/etf/preview",
		`{"calculationMethod":"ratio_25","holdings":[{"id":"1","name":"A","numberOfUnits":100,"pricePerUnit":10}]}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.InDelta(t, 250.0, decode[models.CalculationSummary](t, rr).TotalAssets, 1e-6)

	rr = s.do(t, http.MethodGet, base+"/records", "")
	assert.Nil(t, decode[models.RecordSet](t, rr).ETF)
}

func TestRecordRequestErrors(t *testing.T) {
	s := newTestServer(t)
	base := "/api/members/" + s.selfID

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{"unknown class", http.MethodPut, base + "/records/stamps", `{}`, http.StatusBadRequest},
		{"unknown sub-type", http.MethodPut, base + "/records/sukuk", `{"sukukType":"al_wakalah"}`, http.StatusBadRequest},
		{"malformed body", http.MethodPut, base + "/records/cash", `{"accounts":`, http.StatusBadRequest},
		{"wrong field type", http.MethodPut, base + "/records/gold", `{"applyZakatOnPersonalGold":"yes"}`, http.StatusBadRequest},
		{"malformed preview", http.MethodPost, base + "/records/etf/preview", `[1,2`, http.StatusBadRequest},
		{"unknown member", http.MethodPut, "/api/members/missing/records/cash", `{}`, http.StatusNotFound},
		{"unknown member total", http.MethodGet, "/api/members/missing/total", ``, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := s.do(t, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.code, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), `"error"`)
		})
	}
}

func TestMemberEndpoints(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/api/members", `{"name":"Maryam","relationship":"wife"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	wife := decode[models.ZakatMember](t, rr)
	assert.Equal(t, models.RelationshipWife, wife.Relationship)

	rr = s.do(t, http.MethodPost, "/api/members", `{"name":"Me again","relationship":"self"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(t, http.MethodPatch, "/api/members/"+wife.ID, `{"name":"Maryam A."}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Maryam A.", decode[models.ZakatMember](t, rr).Name)

	rr = s.do(t, http.MethodGet, "/api/members", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.ZakatMember](t, rr), 2)

	rr = s.do(t, http.MethodPut, "/api/members/active", `{"memberId":"`+wife.ID+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, wife.ID, decode[models.ZakatMember](t, rr).ID)

	rr = s.do(t, http.MethodDelete, "/api/members/"+s.selfID, "")
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = s.do(t, http.MethodDelete, "/api/members/"+wife.ID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/members/active", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, s.selfID, decode[models.ZakatMember](t, rr).ID)
}

func TestPortfolioEndpoints(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/api/members", `{"name":"Ali","relationship":"son"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	son := decode[models.ZakatMember](t, rr)

	rr = s.do(t, http.MethodPut, "/api/members/"+s.selfID+"/records/commodity", `{"commodityName":"Palm oil","premiumPaid":30000}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = s.do(t, http.MethodPut, "/api/members/"+son.ID+"/records/commodity", `{"commodityName":"Wheat","premiumPaid":5000}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = s.do(t, http.MethodGet, "/api/members/"+son.ID+"/portfolio", "")
	require.Equal(t, http.StatusOK, rr.Code)
	mine := decode[[]models.PortfolioItem](t, rr)
	require.Len(t, mine, 1)
	assert.InDelta(t, 5000.0, mine[0].AssetValue, 1e-6)
	assert.Equal(t, 0.0, mine[0].ZakatAmount)

	rr = s.do(t, http.MethodGet, "/api/family/portfolio", "")
	require.Equal(t, http.StatusOK, rr.Code)
	family := decode[[]models.FamilyPortfolioItem](t, rr)
	require.Len(t, family, 1)
	assert.InDelta(t, 35000.0, family[0].AssetValue, 1e-6)
	assert.InDelta(t, 750.0, family[0].ZakatAmount, 1e-6)
	assert.Len(t, family[0].MemberContributions, 2)
}

func TestCORSMiddleware(t *testing.T) {
	h := CORSMiddleware([]string{"http://localhost:8081"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/nisab", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:8081", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/nisab", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitMiddleware(t *testing.T) {
	h := RateLimitMiddleware(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
