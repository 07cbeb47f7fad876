package gorm

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

// pageToLimitAndOffset 1始まりのページ指定をlimit/offsetに変換します
func pageToLimitAndOffset(page, perPage int) (limit, offset int) {
	if perPage <= 0 {
		perPage = defaultPerPage
	} else if perPage > maxPerPage {
		perPage = maxPerPage
	}
	if page < 1 {
		page = 1
	}
	return perPage, (page - 1) * perPage
}
