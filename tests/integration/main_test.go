package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/api/middleware"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/config"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/config/db"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/testutils"

	_ "github.com/lib/pq"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgresForIntegration()

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	router = testutils.SetupRouter(gormDB)

	// setup: one admin, two departments, the usual cast of roles
	registerUserForTests(`{"username":"root","password":"123456","email":"root@campus.edu","full_name":"Root","role":"ADMIN"}`)
	adminToken := loginForTests("root", "123456")
	createDepartmentForTests(adminToken, "Computer Science", "CS")
	createDepartmentForTests(adminToken, "Electrical Engineering", "EE")

	registerUserForTests(`{"username":"f.rao","password":"123456","email":"f.rao@campus.edu","full_name":"Prof Rao","role":"FACULTY","department_id":1}`)
	registerUserForTests(`{"username":"h.cs","password":"123456","email":"h.cs@campus.edu","full_name":"HOD CS","role":"HOD","department_id":1}`)
	registerUserForTests(`{"username":"h.ee","password":"123456","email":"h.ee@campus.edu","full_name":"HOD EE","role":"HOD","department_id":2}`)
	registerUserForTests(`{"username":"d.ean","password":"123456","email":"d.ean@campus.edu","full_name":"The Dean","role":"DEAN"}`)
	registerUserForTests(`{"username":"s.kumar","password":"123456","email":"s.kumar@campus.edu","full_name":"S Kumar","role":"STUDENT","department_id":1,"mentor_id":2}`)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

// --- Helper functions ---

// doRequest sends a JSON (or empty) request through the router and asserts
// the status code when expectStatus is non-zero.
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success, "body=%s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func registerUserForTests(reqBody string) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		fmt.Printf("setup register failed: %d %s\n", w.Code, w.Body.String())
	}
}

func loginForTests(username, password string) string {
	w := httptest.NewRecorder()
	reqBody := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	var data struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(env.Data, &data)
	return data.Token
}

func createDepartmentForTests(token, name, code string) {
	w := httptest.NewRecorder()
	reqBody := fmt.Sprintf(`{"name":%q,"code":%q}`, name, code)
	req, _ := http.NewRequest("POST", "/departments", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		fmt.Printf("setup department failed: %d %s\n", w.Code, w.Body.String())
	}
}

func loginUser(t *testing.T, username, password string) string {
	resp := doRequest(t, "POST", "/login", "", map[string]string{
		"username": username,
		"password": password,
	}, http.StatusOK)

	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, resp, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}
