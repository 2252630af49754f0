package usecase

import "net/url"

// ListFilter is the set of recognized equality filters for listing
// appointment services. Nil fields are not applied; supplied fields compose
// conjunctively (logical AND). An empty filter matches every record,
// including soft-deleted ones.
type ListFilter struct {
	IsPublic *bool
	IsRemove *bool
	ShopID   *string
	ID       *string
}

// IsEmpty reports whether no filter field is set.
func (f ListFilter) IsEmpty() bool {
	return f.IsPublic == nil && f.IsRemove == nil && f.ShopID == nil && f.ID == nil
}

// FilterFromQuery builds a ListFilter from raw query-string values.
// Boolean filters accept the literal string "true"; any other value means
// false, for compatibility with query-string transport. Unrecognized keys
// are ignored, not rejected.
func FilterFromQuery(q url.Values) ListFilter {
	var f ListFilter
	if q.Has("isPublic") {
		b := q.Get("isPublic") == "true"
		f.IsPublic = &b
	}
	if q.Has("isRemove") {
		b := q.Get("isRemove") == "true"
		f.IsRemove = &b
	}
	if q.Has("shopId") {
		s := q.Get("shopId")
		f.ShopID = &s
	}
	if q.Has("id") {
		s := q.Get("id")
		f.ID = &s
	}
	return f
}
