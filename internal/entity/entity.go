// Package entity holds the self-validating value objects of the forum core.
//
// Constructors take payload structs with untyped fields, populated by the
// handler from the decoded request body (or by storage from scanned rows).
// Keeping the fields untyped lets a constructor tell a missing property
// apart from a wrongly typed one and fail with the matching code.
package entity

import (
	"time"
)

// Placeholder content substituted for soft-deleted records in every
// detail projection. The original text is never exposed once deleted.
const (
	DeletedCommentContent = "**komentar telah dihapus**"
	DeletedReplyContent   = "**balasan telah dihapus**"
)

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// asTime accepts time.Time directly or an RFC3339 string coming from the
// database driver.
func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
