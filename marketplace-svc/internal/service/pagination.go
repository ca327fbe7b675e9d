package service

import "foodmarket/marketplace-svc/internal/domain"

const DefaultPageSize = 10

var allowedPageSizes = map[int]bool{10: true, 15: true, 20: true}

// NormalisePage defaults page to 1 and clamps size to one of 10, 15 or 20.
func NormalisePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if !allowedPageSizes[size] {
		size = DefaultPageSize
	}
	return page, size
}

func pageOffset(page, size int) int {
	return (page - 1) * size
}

func newPagedCollection[T any](data []T, total, page, size int) domain.PagedCollection[T] {
	if data == nil {
		data = []T{}
	}
	if total == 0 {
		return domain.PagedCollection[T]{Data: data}
	}

	totalPages := (total + size - 1) / size
	collection := domain.PagedCollection[T]{
		TotalPages: totalPages,
		PageNumber: page,
		PageSize:   size,
		TotalCount: total,
		Data:       data,
	}
	if page < totalPages {
		next := page + 1
		collection.NextPage = &next
	}
	return collection
}
