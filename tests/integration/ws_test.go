package integration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// The stream pushes the same visibility-filtered list the GET endpoint
// serves: a student's snapshot carries their own records and nobody else's.
func TestApplicationStreamVisibility(t *testing.T) {
	doRequest(t, "POST", "/register", "", map[string]interface{}{
		"username":      "w.stream",
		"password":      "123456",
		"email":         "w.stream@campus.edu",
		"full_name":     "W Stream",
		"role":          "STUDENT",
		"department_id": 1,
	}, http.StatusCreated)

	streamer := loginUser(t, "w.stream", "123456")
	other := loginUser(t, "s.kumar", "123456")

	submitApplication(t, streamer, "Stream own record")
	submitApplication(t, other, "Stream foreign record")

	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/applications"
	header := http.Header{"Authorization": []string{"Bearer " + streamer}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var snapshot []applicationView
	require.NoError(t, conn.ReadJSON(&snapshot))

	titles := make([]string, 0, len(snapshot))
	for _, v := range snapshot {
		require.Equal(t, "W Stream", v.SubmittedBy)
		titles = append(titles, v.Title)
	}
	require.Contains(t, titles, "Stream own record")
	require.NotContains(t, titles, "Stream foreign record")

	// the snapshot matches what the list endpoint serves the same principal
	resp := doRequest(t, "GET", "/applications", streamer, nil, http.StatusOK)
	var listed []applicationView
	decodeData(t, resp, &listed)
	require.Len(t, snapshot, len(listed))
}

func TestApplicationStreamRequiresAuth(t *testing.T) {
	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/applications"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
