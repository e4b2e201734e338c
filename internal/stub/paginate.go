package stub

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/emkr-13/sim-admin/internal/models"
)

type listParams struct {
	page      int
	limit     int
	sortBy    string
	sortOrder string
	search    string
}

func parseListParams(c echo.Context) listParams {
	p := listParams{page: 1, limit: 10, sortOrder: "asc"}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		p.limit = v
	}
	if v := c.QueryParam("sortBy"); v != "" {
		p.sortBy = v
	}
	if v := c.QueryParam("sortOrder"); v != "" {
		p.sortOrder = v
	}
	p.search = c.QueryParam("search")
	return p
}

// paginate computes the slice bounds for one page and fills the
// pagination block the dashboard contract expects: total_data as a
// string, prev/next 0 when there is no such page, and detail as a window
// of up to five page numbers that always contains current.
func paginate(total, page, limit int) (start, end int, pg *models.PaginationData) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	totalPage := (total + limit - 1) / limit
	if totalPage == 0 {
		totalPage = 1
	}
	if page > totalPage {
		page = totalPage
	}

	start = (page - 1) * limit
	end = start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	prev, next := page-1, page+1
	if page == 1 {
		prev = 0
	}
	if page >= totalPage {
		next = 0
	}

	lo, hi := page-2, page+2
	if lo < 1 {
		lo = 1
	}
	if hi > totalPage {
		hi = totalPage
	}
	for hi-lo < 4 && (lo > 1 || hi < totalPage) {
		if lo > 1 {
			lo--
		} else {
			hi++
		}
	}
	detail := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		detail = append(detail, p)
	}

	pg = &models.PaginationData{
		TotalData:    strconv.Itoa(total),
		TotalPage:    totalPage,
		TotalDisplay: end - start,
		FirstPage:    page == 1,
		LastPage:     page == totalPage,
		Prev:         prev,
		Current:      page,
		Next:         next,
		Detail:       detail,
	}
	return start, end, pg
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
