package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/propfin/affordability/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const affordabilityBody = `{
	"grossIncome": 120000,
	"coApplicant": true,
	"coApplicantIncome": 30000,
	"utilities": 5000,
	"groceries": 12000,
	"subscriptions": 2000,
	"otherMonthly": 3000,
	"insurance": 24000,
	"schoolFees": 60000,
	"propertyTax": 12000,
	"otherYearly": 12000,
	"existingEMIs": 10000,
	"monthlySavings": 15000,
	"totalSavings": 800000,
	"downPayment": 1500000,
	"creditScoreBand": "700-749",
	"age": 34,
	"workExperienceYears": 8,
	"interestRate": 8.5,
	"loanTenure": 20,
	"loanType": "fixed",
	"loanRequired": true
}`

const quickBody = `{
	"netIncome": 100000,
	"variablePay": 120000,
	"existingEMIs": 10000,
	"creditCard": 5000,
	"rent": 20000,
	"schoolFees": 60000,
	"otherExpense": 5000,
	"creditBand": "good",
	"incomeStability": "high",
	"employmentType": "salaried",
	"age": 32,
	"loanTenure": 20,
	"downPayment": 1000000,
	"loanRequired": true
}`

const comparisonBody = `{
	"propertyPrice": 10000000,
	"availableCash": 4000000,
	"contribution": 2000000,
	"interestRate": 8.5,
	"loanTenure": 20,
	"investmentGrowthRate": 12,
	"appreciationRate": 6
}`

func newTestHandler(opts Options) http.Handler {
	return NewHandler(nil, opts)
}

func TestHandleAffordability(t *testing.T) {
	h := newTestHandler(Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/affordability", strings.NewReader(affordabilityBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 150000.0, result["totalMonthlyIncome"])
	assert.Equal(t, 56000.0, result["totalMonthlyObligations"])
	assert.Greater(t, result["maxLoanAmount"], 0.0)
	assert.NotEmpty(t, result["guidance"])
}

func TestHandleAffordabilityValidationError(t *testing.T) {
	h := newTestHandler(Options{})

	body := strings.Replace(affordabilityBody, `"grossIncome": 120000`, `"grossIncome": 0`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/affordability", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var result struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "validation failed", result.Error)
	require.NotEmpty(t, result.Fields)
	assert.Equal(t, "grossIncome", result.Fields[0].Field)
}

func TestHandleAffordabilityMethodNotAllowed(t *testing.T) {
	h := newTestHandler(Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/affordability", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleAffordabilityBodyTooLarge(t *testing.T) {
	h := newTestHandler(Options{MaxBodySize: 16})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/affordability", strings.NewReader(affordabilityBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleQuick(t *testing.T) {
	h := newTestHandler(Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/affordability/quick", strings.NewReader(quickBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 110000.0, result["monthlyIncome"])
	assert.Equal(t, 8.25, result["interestRate"])
	assert.Greater(t, result["maxHomePrice"], 0.0)
}

func TestHandleComparison(t *testing.T) {
	h := newTestHandler(Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison", strings.NewReader(comparisonBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 8000000.0, result["loanComponent"])
	assert.NotEmpty(t, result["recommendation"])
}

func TestHandleComparisonValidationError(t *testing.T) {
	h := newTestHandler(Options{})

	// Contribution below the mandatory 20% down payment.
	body := strings.Replace(comparisonBody, `"contribution": 2000000`, `"contribution": 1000000`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleVersion(t *testing.T) {
	h := newTestHandler(Options{Version: "1.2.3"})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "1.2.3", result["version"])
}

func TestCachedResponses(t *testing.T) {
	mem := cache.NewMemory()
	h := newTestHandler(Options{Cache: mem, CacheTTL: time.Minute})

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/v1/affordability", strings.NewReader(affordabilityBody)))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/v1/affordability", strings.NewReader(affordabilityBody)))
	require.Equal(t, http.StatusOK, second.Code)

	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestRateLimiting(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	h := newTestHandler(Options{RateLimiter: limiter})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different client has its own bucket.
	other := httptest.NewRecorder()
	otherReq := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	otherReq.RemoteAddr = "10.0.0.2:1234"
	h.ServeHTTP(other, otherReq)
	assert.Equal(t, http.StatusOK, other.Code)
}
