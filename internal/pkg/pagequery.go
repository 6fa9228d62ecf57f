package pkg

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// reservedParams lists query parameter names used for pagination/search,
// not for filtering.
var reservedParams = map[string]bool{
	"page":        true,
	"page_size":   true,
	"keyword":     true,
	"target_type": true,
	"target_uuid": true,
}

// validFilterName matches only lowerCamelCase identifiers, the shape the
// upstream API accepts as filter fields.
var validFilterName = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

// ParsePageQuery extracts pagination, search, and filter parameters from
// the request's query string. Unknown parameters become upstream filter
// predicates; names that cannot be upstream fields are silently ignored.
func ParsePageQuery(c *gin.Context) domain.PageQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	var filters map[string]string
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] || len(values) == 0 || values[0] == "" {
			continue
		}
		if !validFilterName.MatchString(key) {
			continue
		}
		if filters == nil {
			filters = make(map[string]string)
		}
		filters[key] = values[0]
	}

	q := domain.PageQuery{
		Page:       page,
		PageSize:   pageSize,
		Keyword:    c.Query("keyword"),
		TargetType: c.Query("target_type"),
		TargetUUID: c.Query("target_uuid"),
		Filters:    filters,
	}
	return q.Normalize(defaultPageSize, maxPageSize)
}
