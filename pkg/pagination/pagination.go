package pagination

// PageSize is the fixed number of rows returned per listing page.
const PageSize = 10

// NormalizePage coerces raw page input to a 1-based page number.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset converts a 1-based page number into a row offset.
func Offset(page int) int {
	return (NormalizePage(page) - 1) * PageSize
}
