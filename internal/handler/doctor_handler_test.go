package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDoctorRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := newTestDB(t)
	doctorService, _, authService := newTestServices(db)
	h := NewDoctorHandler(doctorService, authService)

	r := gin.New()
	r.POST("/api/v1/doctors/register", h.Register)
	r.POST("/api/v1/doctors/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDoctorRegisterEndpoint(t *testing.T) {
	r := setupDoctorRouter(t)

	body := `{"name":"Dr. Alice","email":"alice@clinic.test","password":"secret1","specialization":"Cardiology"}`
	w := postJSON(r, "/api/v1/doctors/register", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "alice@clinic.test", data["email"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "password_hash")

	// Same email again conflicts
	w = postJSON(r, "/api/v1/doctors/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDoctorRegisterValidation(t *testing.T) {
	r := setupDoctorRouter(t)

	w := postJSON(r, "/api/v1/doctors/register", `{"name":"Dr. No Email","password":"secret1","specialization":"GP"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDoctorLoginMasksFailureCause(t *testing.T) {
	r := setupDoctorRouter(t)

	w := postJSON(r, "/api/v1/doctors/register",
		`{"name":"Dr. Alice","email":"alice@clinic.test","password":"secret1","specialization":"Cardiology"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPw := postJSON(r, "/api/v1/doctors/login", `{"email":"alice@clinic.test","password":"wrong"}`)
	unknown := postJSON(r, "/api/v1/doctors/login", `{"email":"nobody@clinic.test","password":"secret1"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	// Identical bodies: a caller cannot probe which emails are registered
	assert.Equal(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestDoctorLoginSuccess(t *testing.T) {
	r := setupDoctorRouter(t)

	w := postJSON(r, "/api/v1/doctors/register",
		`{"name":"Dr. Alice","email":"alice@clinic.test","password":"secret1","specialization":"Cardiology"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/v1/doctors/login", `{"email":"alice@clinic.test","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])

	// Refresh token travels as an HttpOnly cookie
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	found := false
	for _, c := range cookies {
		if c.Name == "refresh_token" {
			found = true
			assert.True(t, c.HttpOnly)
			assert.NotEmpty(t, c.Value)
		}
	}
	assert.True(t, found)
}
