package horoscope

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateForDeterministic(t *testing.T) {
	first := templateFor("Лев", "2025-09-01")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, templateFor("Лев", "2025-09-01"))
	}
	assert.Contains(t, templates, first)
}

func TestTemplateForVariesByInput(t *testing.T) {
	// 不同的 (星座, 日期) 组合应当覆盖到池中的多个模板
	seen := make(map[string]bool)
	for _, sign := range []string{"Овен", "Лев", "Рыбы", "Весы"} {
		for _, date := range []string{"2025-09-01", "2025-09-02", "2025-09-03"} {
			seen[templateFor(sign, date)] = true
		}
	}
	assert.Greater(t, len(seen), 1)
}

func TestTextForWithoutAPIKey(t *testing.T) {
	p := NewProvider("")

	text, source := p.TextFor("Дева", "2025-09-01")
	assert.Equal(t, SourceTemplate, source)
	assert.Equal(t, templateFor("Дева", "2025-09-01"), text)
}

func TestTextForExternalSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "virgo", r.URL.Query().Get("sign"))
		assert.Equal(t, "today", r.URL.Query().Get("day"))
		w.Write([]byte(`{"description":"A fine day for digging."}`))
	}))
	defer server.Close()

	p := NewProvider("test-key")
	p.baseURL = server.URL

	text, source := p.TextFor("Дева", "2025-09-01")
	assert.Equal(t, SourceRealAPI, source)
	assert.Equal(t, "Гномы читают звезды: A fine day for digging.", text)
}

func TestTextForExternalFailureFallsBack(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"非200响应", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
		{"缺少description", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}},
		{"非法JSON", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`nope`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			p := NewProvider("test-key")
			p.baseURL = server.URL

			text, source := p.TextFor("Рак", "2025-09-01")
			assert.Equal(t, SourceTemplate, source)
			assert.Equal(t, templateFor("Рак", "2025-09-01"), text)
		})
	}
}

func TestGeneratePremium(t *testing.T) {
	aspects := GeneratePremium("Лев", "2025-09-01", "", "")

	assert.Equal(t, templateFor("Лев", "2025-09-01"), aspects.DetailedForecast)
	require.Len(t, aspects.LuckyNumbers, 3)
	for _, n := range aspects.LuckyNumbers {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 50)
	}
	assert.Contains(t, luckyColors, aspects.LuckyColors)
	assert.NotEmpty(t, aspects.MoonInfluence)
	assert.Empty(t, aspects.BirthChartInsight)
}

func TestGeneratePremiumWithBirthTime(t *testing.T) {
	aspects := GeneratePremium("Лев", "2025-09-01", "08:30", "Москва")
	assert.Contains(t, aspects.BirthChartInsight, "08:30")
}

func TestIsValidSign(t *testing.T) {
	assert.True(t, IsValidSign("Овен"))
	assert.True(t, IsValidSign("Рыбы"))
	assert.False(t, IsValidSign("Дракон"))
	assert.False(t, IsValidSign(""))
	assert.False(t, IsValidSign("aries"))
}
