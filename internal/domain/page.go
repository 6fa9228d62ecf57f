package domain

// PageQuery describes one page request against an upstream list endpoint.
// It is a value object: callers build a fresh one per fetch and supersede it
// on every user-driven change (search, filter, page change).
type PageQuery struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Keyword  string `json:"keyword,omitempty"`

	// Target scopes a related-reports query to one entity.
	TargetType string `json:"targetType,omitempty"`
	TargetUUID string `json:"targetUuid,omitempty"`

	// Filters are entity-specific predicates (gender, status, verification).
	// They are always pushed upstream with the query, never applied to an
	// already-fetched page.
	Filters map[string]string `json:"filters,omitempty"`
}

// Normalize clamps the query to valid bounds: page ≥ 1, pageSize > 0.
func (q PageQuery) Normalize(defaultPageSize, maxPageSize int) PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if maxPageSize > 0 && q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q
}

// Page holds one fetched page of records together with the server-side
// pagination metadata. TotalCount is authoritative for pagination controls;
// len(Items) is not.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	TotalPage  int `json:"totalPage"`
}
