package service

// Listing defaults match the API contract: offset 0, limit 100.
const defaultListLimit = 100

func normalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return offset, limit
}
