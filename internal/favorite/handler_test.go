package favorite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/analytics"
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
	r.POST("/api/favorites", AddFavorite)
	r.GET("/api/favorites", GetFavorites)
	return r
}

func TestAddFavoriteMissingFields(t *testing.T) {
	r := setupRouter(t)

	cases := []string{
		`{}`,
		`{"initData":"x"}`,
		`{"initData":"x","type":"horoscope"}`,
		`{"type":"horoscope","content":{"a":1}}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestFavoritesAccumulateMostRecentFirst(t *testing.T) {
	r := setupRouter(t)

	// 连续添加N条收藏
	const n = 5
	for i := 0; i < n; i++ {
		body := fmt.Sprintf(`{"initData":"x","type":"horoscope","content":{"seq":%d}}`, i)
		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// 列表应当恰好有N条，且按最近优先排序
	req := httptest.NewRequest(http.MethodGet, "/api/favorites?init_data=x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Favorites []FavoriteResponse `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Favorites, n)

	for i, entry := range resp.Favorites {
		content, ok := entry.Content.(map[string]interface{})
		require.True(t, ok)
		// 最新的收藏排在最前面
		assert.Equal(t, float64(n-1-i), content["seq"])
	}
}

func TestFavoritesAllowDuplicates(t *testing.T) {
	r := setupRouter(t)
	body := `{"initData":"x","type":"day_card","content":{"title":"Гном-повар"}}`

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/favorites?init_data=x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Favorites []FavoriteResponse `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Favorites, 2)
}
