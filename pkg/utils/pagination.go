package utils

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ClampPerPage falls back to DefaultPerPage below 1 and caps at MaxPerPage.
func ClampPerPage(perPage int) int {
	switch {
	case perPage < 1:
		return DefaultPerPage
	case perPage > MaxPerPage:
		return MaxPerPage
	default:
		return perPage
	}
}

// PageOffset is the row offset of a 1-based page; pages below 1 start at 0.
func PageOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * ClampPerPage(perPage)
}

func PageCount(total int64, perPage int) int {
	if total <= 0 {
		return 0
	}
	size := int64(ClampPerPage(perPage))
	return int((total + size - 1) / size)
}
