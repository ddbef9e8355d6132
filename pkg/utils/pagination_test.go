package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	e := echo.New()

	cases := []struct {
		query string
		want  PaginationParams
	}{
		{"", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{"?page=3&limit=10", PaginationParams{Page: 3, PageSize: 10, Offset: 20}},
		{"?page=-1&limit=500", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{"?page=abc", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{"?page=9223372036854775807", PaginationParams{Page: math.MaxInt/20 + 1, PageSize: 20, Offset: math.MaxInt / 20 * 20}},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, tc.want, GetPaginationParams(c), tc.query)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, NewPaginationParams(1, 2)))
	assert.Equal(t, []int{5}, Paginate(items, NewPaginationParams(3, 2)))
	assert.Equal(t, []int{}, Paginate(items, NewPaginationParams(4, 2)))
	assert.Equal(t, []int{}, Paginate([]int(nil), NewPaginationParams(1, 2)))
}

func TestPaginateHugePage(t *testing.T) {
	p := NewPaginationParams(math.MaxInt, 20)

	assert.GreaterOrEqual(t, p.Offset, 0)
	assert.Equal(t, []int{}, Paginate([]int{1, 2, 3}, p))
	assert.Equal(t, []int{}, Paginate([]int{1, 2, 3}, PaginationParams{Page: 1, PageSize: 20, Offset: -40}))
}
