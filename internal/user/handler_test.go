package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/analytics"
	"github.com/gnomelab/gnome-horoscope-backend/internal/identity"
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
	"github.com/gnomelab/gnome-horoscope-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	testutil.SetupDB(t)
	require.NoError(t, PrimeDB())
	require.NoError(t, analytics.PrimeDB())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/user/settings", SaveSettings)
	r.GET("/api/user/settings", GetUserSettings)
	return r
}

func TestGetSettingsDefaultForUnknownUser(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user/settings?init_data=x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.ZodiacSign)
	assert.Nil(t, resp.BirthTime)
	assert.Equal(t, "09:00", resp.NotificationTime)
	assert.False(t, resp.Premium)
	assert.Equal(t, "ru", resp.Language)
	assert.Equal(t, "light", resp.Theme)
	assert.Nil(t, resp.CreatedAt)
}

func TestSaveSettingsMissingBody(t *testing.T) {
	r := setupRouter(t)

	cases := []string{
		`{}`,
		`{"initData":"x"}`,
		`{"settings":{"zodiac_sign":"Лев"}}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/user/settings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestSaveSettingsUpsert(t *testing.T) {
	r := setupRouter(t)

	save := func(body string) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/settings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// 先后保存两次：第二次覆盖第一次而不是追加新行
	save(`{"initData":"x","settings":{"zodiac_sign":"Лев","notification_time":"10:30"}}`)
	save(`{"initData":"x","settings":{"zodiac_sign":"Дева","notification_time":"08:00","premium":true}}`)

	var count int64
	require.NoError(t, database.DB.Model(&Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := GetSettings(identity.AnonymousUserID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Дева", stored.ZodiacSign)
	assert.Equal(t, "08:00", stored.NotificationTime)
	assert.True(t, stored.Premium)
}

func TestSaveThenGetSettings(t *testing.T) {
	r := setupRouter(t)

	body := `{"initData":"x","settings":{"zodiac_sign":"Рыбы","birth_time":"06:15","birth_location":"Киев"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/user/settings?init_data=x", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.ZodiacSign)
	assert.Equal(t, "Рыбы", *resp.ZodiacSign)
	require.NotNil(t, resp.BirthTime)
	assert.Equal(t, "06:15", *resp.BirthTime)
	// 未显式给出的字段落到默认值
	assert.Equal(t, "09:00", resp.NotificationTime)
	assert.Equal(t, "ru", resp.Language)
	assert.NotNil(t, resp.CreatedAt)
}

func TestListNotifiable(t *testing.T) {
	testutil.SetupDB(t)
	require.NoError(t, PrimeDB())

	require.NoError(t, UpsertSettings(&Settings{UserID: 1, ZodiacSign: "Лев", NotificationTime: "09:00"}))
	require.NoError(t, UpsertSettings(&Settings{UserID: 2, NotificationTime: "09:00"}))
	require.NoError(t, UpsertSettings(&Settings{UserID: 3, ZodiacSign: "Рак", NotificationTime: "10:00"}))

	rows, err := ListNotifiable()
	require.NoError(t, err)
	// 没有选择星座的用户不出现在推送扫描里
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.NotEmpty(t, row.ZodiacSign)
	}
}
