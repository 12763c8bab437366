package listing

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillbloom/internal/common"
	"github.com/DhavalSuthar-24/skillbloom/internal/testutil"
)

func headerAuth(c *gin.Context) {
	id, err := strconv.Atoi(c.GetHeader("X-User-ID"))
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	common.SetSession(c, &common.Session{UserID: uint(id), Roles: strings.Split(c.GetHeader("X-Roles"), ",")})
	c.Next()
}

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t, &Listing{})
	r := gin.New()
	RegisterListingRoutes(r.Group("/api"), db, headerAuth)
	return r, db
}

func do(r http.Handler, method, path, user, roles string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
		req.Header.Set("X-Roles", roles)
	}
	rsp := httptest.NewRecorder()
	r.ServeHTTP(rsp, req)
	return rsp
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, l := range sample() {
		l.Model = gorm.Model{}
		l.HomemakerID = 7
		l.IsActive = true
		require.NoError(t, db.Create(&l).Error)
	}
	hidden := Listing{HomemakerID: 7, Title: "Old pickles", Category: "Cooking"}
	require.NoError(t, db.Create(&hidden).Error)
	require.NoError(t, db.Model(&hidden).Update("is_active", false).Error)
}

type listPage struct {
	Data       []Listing `json:"data"`
	Pagination struct {
		TotalItems int64 `json:"total_items"`
	} `json:"pagination"`
}

func TestFindActiveMatchesFilter(t *testing.T) {
	db := testutil.DB(t, &Listing{})
	seed(t, db)
	repo := NewListingRepository(db)

	var all []Listing
	require.NoError(t, db.Where("is_active = ?", true).Find(&all).Error)

	for _, c := range []Criteria{
		{},
		{Category: "All Categories"},
		{Category: "baking"},
		{Category: "Baking", Subcategory: "CAKES"},
		{Category: "  "},
		{Category: "all categories", Subcategory: "All Categories"},
		{Search: "wool"},
		{Search: "WOOL"},
		{Search: "  Cake "},
		{Sort: SortPriceAsc},
		{Category: "BAKING", Sort: SortPriceDesc},
		{Sort: SortRating},
		{Sort: SortNewest},
		{Sort: "bogus"},
	} {
		got, total, err := repo.FindActive(context.Background(), c, 1, 50)
		require.NoError(t, err)
		want := Filter(all, c)
		assert.Equal(t, int64(len(want)), total, "%+v", c)
		if c.Sort != "" {
			assert.Equal(t, titles(want), titles(got), "%+v", c)
		} else {
			assert.ElementsMatch(t, titles(want), titles(got), "%+v", c)
		}
	}
}

func TestFindActiveSearchTreatsWildcardsLiterally(t *testing.T) {
	db := testutil.DB(t, &Listing{})
	repo := NewListingRepository(db)
	for _, title := range []string{"50% off cake", "500 gram cake", "Jam_jar", "Jam and jelly", `Back\slash`} {
		require.NoError(t, db.Create(&Listing{HomemakerID: 7, Title: title, Category: "Cooking", IsActive: true}).Error)
	}

	var all []Listing
	require.NoError(t, db.Find(&all).Error)

	for search, want := range map[string][]string{
		"50%":  {"50% off cake"},
		"m_j":  {"Jam_jar"},
		"%":    {"50% off cake"},
		"_":    {"Jam_jar"},
		`k\s`: {`Back\slash`},
	} {
		got, total, err := repo.FindActive(context.Background(), Criteria{Search: search}, 1, 50)
		require.NoError(t, err)
		assert.Equal(t, want, titles(got), search)
		assert.Equal(t, int64(len(want)), total, search)
		assert.Equal(t, titles(Filter(all, Criteria{Search: search})), titles(got), search)
	}
}

func TestGetListingsEndpoint(t *testing.T) {
	r, db := newRouter(t)
	seed(t, db)

	rsp := do(r, http.MethodGet, "/api/listings?category=All%20Categories&sort=price_desc", "", "", nil)
	require.Equal(t, http.StatusOK, rsp.Code)
	var page listPage
	require.NoError(t, json.Unmarshal(rsp.Body.Bytes(), &page))
	assert.Equal(t, int64(4), page.Pagination.TotalItems)
	assert.Equal(t, "Birthday cake", page.Data[0].Title)

	rsp = do(r, http.MethodGet, "/api/listings?category=crafts", "", "", nil)
	require.NoError(t, json.Unmarshal(rsp.Body.Bytes(), &page))
	assert.Equal(t, []string{"Knitted scarf"}, titles(page.Data))
}

func TestListingOwnership(t *testing.T) {
	r, _ := newRouter(t)

	rsp := do(r, http.MethodPost, "/api/listings", "7", "homemaker", gin.H{
		"title": "Jam jars", "category": "Cooking", "price": 120, "tags": []string{"jam", "homemade"},
	})
	require.Equal(t, http.StatusCreated, rsp.Code, rsp.Body.String())
	var created struct {
		Data Listing `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rsp.Body.Bytes(), &created))
	assert.Equal(t, "INR", created.Data.Currency)
	assert.Equal(t, []string{"jam", "homemade"}, []string(created.Data.Tags))
	path := "/api/listings/" + strconv.Itoa(int(created.Data.ID))

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/listings", "7", "homemaker", gin.H{"title": "Jam", "category": "Cooking", "price": -1}).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/api/listings", "9", "customer", gin.H{"title": "Jam jars", "category": "Cooking"}).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPut, path, "8", "homemaker", gin.H{"price": 1}).Code)

	rsp = do(r, http.MethodPut, path, "7", "homemaker", gin.H{"price": 150, "is_active": false})
	require.Equal(t, http.StatusOK, rsp.Code)
	assert.Contains(t, rsp.Body.String(), `"price":150`)

	rsp = do(r, http.MethodGet, "/api/listings", "", "", nil)
	var page listPage
	require.NoError(t, json.Unmarshal(rsp.Body.Bytes(), &page))
	assert.Zero(t, page.Pagination.TotalItems, "inactive listings are hidden")

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, path, "1", "admin", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, path, "", "", nil).Code)
}
