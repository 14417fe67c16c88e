package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/worlds"+query, nil)
	return c
}

func TestNewPaginationDefaults(t *testing.T) {
	p := utils.NewPagination(paginationContext(t, ""))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestNewPaginationComputesOffset(t *testing.T) {
	p := utils.NewPagination(paginationContext(t, "?page=3&limit=25"))

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset)
}

func TestNewPaginationRejectsBadValues(t *testing.T) {
	p := utils.NewPagination(paginationContext(t, "?page=0&limit=-5"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = utils.NewPagination(paginationContext(t, "?page=abc&limit=xyz"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestNewPaginationCapsLimit(t *testing.T) {
	p := utils.NewPagination(paginationContext(t, "?page=2&limit=500"))

	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 100, p.Offset)
}

func TestSetTotalComputesLastPage(t *testing.T) {
	p := utils.NewPagination(paginationContext(t, "?limit=10"))

	p.SetTotal(0)
	assert.Equal(t, int64(0), p.Total)
	assert.Equal(t, 0, p.LastPage)

	p.SetTotal(10)
	assert.Equal(t, 1, p.LastPage)

	p.SetTotal(11)
	assert.Equal(t, 2, p.LastPage)

	p.SetTotal(95)
	assert.Equal(t, 10, p.LastPage)
}

func TestGetPaginationParams(t *testing.T) {
	page, limit := utils.GetPaginationParams(paginationContext(t, ""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = utils.GetPaginationParams(paginationContext(t, "?page=4&limit=50"))
	assert.Equal(t, 4, page)
	assert.Equal(t, 50, limit)

	page, limit = utils.GetPaginationParams(paginationContext(t, "?page=-1&limit=1000"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}
