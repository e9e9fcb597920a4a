package analytics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/identity"
	"github.com/gnomelab/gnome-horoscope-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	testutil.SetupDB(t)
	require.NoError(t, PrimeDB())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/analytics/user", GetUserAnalytics)
	return r
}

func TestTrackIsBestEffort(t *testing.T) {
	testutil.SetupDB(t)
	require.NoError(t, PrimeDB())

	// 正常写入
	Track(1, "get_horoscope", map[string]interface{}{"sign": "Лев"})
	Track(1, "get_horoscope", nil)

	events, err := Recent(1, 10)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestCountsByAction(t *testing.T) {
	testutil.SetupDB(t)
	require.NoError(t, PrimeDB())

	for i := 0; i < 3; i++ {
		Track(5, "get_horoscope", nil)
	}
	Track(5, "add_favorite", nil)
	Track(6, "get_horoscope", nil) // 其他用户不计入

	stats, err := CountsByAction(5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats["get_horoscope"])
	assert.Equal(t, int64(1), stats["add_favorite"])
	assert.Len(t, stats, 2)
}

func TestGetUserAnalytics(t *testing.T) {
	r := setupRouter(t)

	// 匿名身份写入12条日志，最近列表应当只保留10条
	for i := 0; i < 12; i++ {
		Track(identity.AnonymousUserID, "get_horoscope", map[string]interface{}{"seq": i})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/user?init_data=x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		UserID           int64            `json:"user_id"`
		ActionStatistics map[string]int64 `json:"action_statistics"`
		RecentActions    []struct {
			Action    string      `json:"action"`
			Data      interface{} `json:"data"`
			Timestamp string      `json:"timestamp"`
		} `json:"recent_actions"`
		TotalActions int64 `json:"total_actions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, identity.AnonymousUserID, resp.UserID)
	assert.Equal(t, int64(12), resp.ActionStatistics["get_horoscope"])
	assert.Equal(t, int64(12), resp.TotalActions)
	require.Len(t, resp.RecentActions, 10)
	for _, action := range resp.RecentActions {
		assert.Equal(t, "get_horoscope", action.Action)
		assert.NotEmpty(t, action.Timestamp)
	}
}

func TestGetUserAnalyticsEmpty(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/user?init_data=x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["total_actions"])
}

func TestRecentOrder(t *testing.T) {
	testutil.SetupDB(t)
	require.NoError(t, PrimeDB())

	for i := 0; i < 3; i++ {
		Track(9, fmt.Sprintf("action_%d", i), nil)
	}

	events, err := Recent(9, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	// 最近的行为排在最前面
	assert.False(t, events[0].Timestamp.Before(events[2].Timestamp))
}
