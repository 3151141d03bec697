package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	resp := doRequest(t, "POST", "/login", "", map[string]string{
		"username": "s.kumar",
		"password": "123456",
	}, http.StatusOK)

	var data struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	decodeData(t, resp, &data)
	require.NotEmpty(t, data.Token)
	require.Equal(t, "s.kumar", data.User.Username)
	require.Equal(t, "STUDENT", data.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	doRequest(t, "POST", "/login", "", map[string]string{
		"username": "s.kumar",
		"password": "wrong",
	}, http.StatusUnauthorized)
}

func TestRegisterValidation(t *testing.T) {
	// missing email and full name
	resp := doRequest(t, "POST", "/register", "", map[string]string{
		"username": "incomplete",
		"password": "123456",
	}, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "email")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	doRequest(t, "POST", "/register", "", map[string]interface{}{
		"username":  "s.kumar",
		"password":  "123456",
		"email":     "dup@campus.edu",
		"full_name": "Dup",
	}, http.StatusConflict)
}

func TestListUsersRequiresAdmin(t *testing.T) {
	studentToken := loginUser(t, "s.kumar", "123456")
	doRequest(t, "GET", "/users", studentToken, nil, http.StatusForbidden)

	adminToken := loginUser(t, "root", "123456")
	resp := doRequest(t, "GET", "/users", adminToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "s.kumar")
}

func TestUnauthenticatedRejected(t *testing.T) {
	doRequest(t, "GET", "/applications", "", nil, http.StatusUnauthorized)
}

func TestAssignMentor(t *testing.T) {
	adminToken := loginUser(t, "root", "123456")

	// register a fresh student without a mentor, then point them at f.rao
	doRequest(t, "POST", "/register", "", map[string]interface{}{
		"username":      "m.patel",
		"password":      "123456",
		"email":         "m.patel@campus.edu",
		"full_name":     "M Patel",
		"role":          "STUDENT",
		"department_id": 1,
	}, http.StatusCreated)

	var users []struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	}
	resp := doRequest(t, "GET", "/users", adminToken, nil, http.StatusOK)
	decodeData(t, resp, &users)

	var studentID, facultyID uint
	for _, u := range users {
		switch u.Username {
		case "m.patel":
			studentID = u.ID
		case "f.rao":
			facultyID = u.ID
		}
	}
	require.NotZero(t, studentID)
	require.NotZero(t, facultyID)

	path := fmt.Sprintf("/users/%d/mentor", studentID)
	resp = doRequest(t, "PUT", path, adminToken, map[string]uint{"mentor_id": facultyID}, http.StatusOK)

	var updated struct {
		MentorID *uint `json:"mentor_id"`
	}
	decodeData(t, resp, &updated)
	require.NotNil(t, updated.MentorID)
	require.Equal(t, facultyID, *updated.MentorID)

	// students cannot use the admin endpoint
	studentToken := loginUser(t, "m.patel", "123456")
	doRequest(t, "PUT", path, studentToken, map[string]uint{"mentor_id": facultyID}, http.StatusForbidden)
}

func TestListDepartments(t *testing.T) {
	token := loginUser(t, "s.kumar", "123456")
	resp := doRequest(t, "GET", "/departments", token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "CS")
	require.Contains(t, resp.Body.String(), "EE")
}

func TestCreateDepartmentConflict(t *testing.T) {
	adminToken := loginUser(t, "root", "123456")
	doRequest(t, "POST", "/departments", adminToken, map[string]string{
		"name": "Computer Science Again",
		"code": "CS",
	}, http.StatusConflict)
}
