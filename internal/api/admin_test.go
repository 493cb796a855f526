package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"donation_platform/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func adminRouter(db *gorm.DB, rdb *redis.Client, isProd bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/users", ListUsersHandler(db, rdb))
	r.DELETE("/admin/users", ResetUsersHandler(db, isProd))
	return r
}

func deletePath(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func expectUserListing(mock sqlmock.Sqlmock, rows *sqlmock.Rows, total int64) {
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(total))
	mock.ExpectQuery("SELECT \\* FROM `users` ORDER BY total_donated desc").
		WillReturnRows(rows)
}

type listUsersResponse struct {
	Users      []DonorAdminResponse `json:"users"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	Total      int64                `json:"total"`
	TotalPages int                  `json:"total_pages"`
	Cached     bool                 `json:"cached"`
}

func TestListUsersMapsTiersAndPagination(t *testing.T) {
	db, mock := newTestDB(t)
	rdb := newTestRedis(t)
	r := adminRouter(db, rdb, false)

	rows := sqlmock.NewRows(donationUserColumns).
		AddRow(2, "morgan", "morgan@example.com", "Morgan", "hash", "user", 1200.0, 48, 2000.0, 0).
		AddRow(1, "alex", "alex@example.com", "Alex", "hash", "user", 150.0, 6, 500.0, 0)
	expectUserListing(mock, rows, 2)

	w := getPath(t, r, "/admin/users")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listUsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "Zeus", resp.Users[0].TierName)
	assert.Equal(t, 1200.0, resp.Users[0].TotalDonated)
	assert.Equal(t, "Poseidon", resp.Users[1].TierName)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.PageSize)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
	assert.False(t, resp.Cached)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsersSecondReadComesFromCache(t *testing.T) {
	db, mock := newTestDB(t)
	rdb := newTestRedis(t)
	r := adminRouter(db, rdb, false)

	expectUserListing(mock, donationUserRow(150, 6), 1)

	w := getPath(t, r, "/admin/users")
	require.Equal(t, http.StatusOK, w.Code)

	// No further DB expectations: the second read must hit the cache
	w = getPath(t, r, "/admin/users")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listUsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "Poseidon", resp.Users[0].TierName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsersCustomPageSizeRefreshesAfterDonation(t *testing.T) {
	db, mock := newTestDB(t)
	rdb := newTestRedis(t)
	r := adminRouter(db, rdb, false)

	expectUserListing(mock, donationUserRow(150, 6), 1)
	w := getPath(t, r, "/admin/users?page_size=50")
	require.Equal(t, http.StatusOK, w.Code)

	// A donation invalidates listings regardless of their pagination shape
	utils.InvalidateDonorCache(context.Background(), rdb, 1)

	expectUserListing(mock, donationUserRow(300, 12), 1)
	w = getPath(t, r, "/admin/users?page_size=50")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listUsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Cached)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, 300.0, resp.Users[0].TotalDonated)
	assert.Equal(t, 50, resp.PageSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetUsersDeletesAllRows(t *testing.T) {
	db, mock := newTestDB(t)
	r := adminRouter(db, newTestRedis(t), false)

	mock.ExpectExec("DELETE FROM `users`").
		WillReturnResult(sqlmock.NewResult(0, 3))

	w := deletePath(t, r, "/admin/users")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Deleted int64 `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetUsersRefusedInProduction(t *testing.T) {
	db, mock := newTestDB(t)
	r := adminRouter(db, newTestRedis(t), true)

	// No DB expectations: production resets never reach the database
	w := deletePath(t, r, "/admin/users")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "disabled in production")
	assert.NoError(t, mock.ExpectationsWereMet())
}
