package params_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"planit-api/core/params"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func queryContext(rawQuery string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestNewQueryParamsDefaults(t *testing.T) {
	p := params.NewQueryParams(queryContext(""))

	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 20, p.PageSize)
	assert.Empty(t, p.Search)
	assert.Equal(t, 0, p.Offset())
}

func TestNewQueryParamsParsesValues(t *testing.T) {
	p := params.NewQueryParams(queryContext("page=3&pageSize=15&search=standup"))

	assert.Equal(t, 3, p.PageNumber)
	assert.Equal(t, 15, p.PageSize)
	assert.Equal(t, "standup", p.Search)
	assert.Equal(t, 30, p.Offset())
}

func TestNewQueryParamsClampsAndRejects(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"page size over max", "pageSize=500", 1, 100},
		{"zero values ignored", "page=0&pageSize=0", 1, 20},
		{"negative values ignored", "page=-2&pageSize=-5", 1, 20},
		{"non-numeric ignored", "page=abc&pageSize=xyz", 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params.NewQueryParams(queryContext(tt.query))
			assert.Equal(t, tt.page, p.PageNumber)
			assert.Equal(t, tt.pageSize, p.PageSize)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	p := params.NewQueryParams(queryContext("page=2&pageSize=10&search=retro"))
	p.Add("teamId", "abc-123")

	encoded := p.Encode()
	assert.Contains(t, encoded, "page=2")
	assert.Contains(t, encoded, "pageSize=10")
	assert.Contains(t, encoded, "search=retro")
	assert.Contains(t, encoded, "teamId=abc-123")
}
