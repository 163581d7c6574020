package services

import (
	"shoply/internal/apperr"
	"shoply/internal/repos"
)

// Page is the listing envelope shared by every resource.
type Page[T any] struct {
	PageNumber      int  `json:"page_number"`
	PageSize        int  `json:"page_size"`
	Count           int  `json:"count"`
	TotalPages      int  `json:"total_pages"`
	HasPreviousPage bool `json:"has_previous_page"`
	HasNextPage     bool `json:"has_next_page"`
	Data            []T  `json:"data"`
}

// resolvePage fills defaults and checks the page bounds before the page query
// runs. PageSize defaults to the total matching count, i.e. unpaginated. An
// empty collection still yields one (empty) page so page_number=1 stays valid.
func resolvePage(p *repos.ListParams, total int) (int, error) {
	if p.PageNumber <= 0 {
		p.PageNumber = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = total
	}
	if p.PageSize <= 0 {
		p.PageSize = 1
	}
	totalPages := (total + p.PageSize - 1) / p.PageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if p.PageNumber > totalPages {
		return 0, apperr.New(apperr.Validation, "page_number over a limit")
	}
	return totalPages, nil
}

// listPage runs the count + bounds check + page query sequence shared by the
// products, orders and users listings.
func listPage[T any](count func(string) (int, error), list func(repos.ListParams) ([]T, error), p repos.ListParams) (Page[T], error) {
	total, err := count(p.Search)
	if err != nil {
		return Page[T]{}, err
	}
	totalPages, err := resolvePage(&p, total)
	if err != nil {
		return Page[T]{}, err
	}
	items, err := list(p)
	if err != nil {
		return Page[T]{}, err
	}
	return Page[T]{
		PageNumber:      p.PageNumber,
		PageSize:        p.PageSize,
		Count:           len(items),
		TotalPages:      totalPages,
		HasPreviousPage: p.PageNumber != 1,
		HasNextPage:     p.PageNumber != totalPages,
		Data:            items,
	}, nil
}
