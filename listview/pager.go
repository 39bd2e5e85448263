package listview

// Page is the pager output for one filtered list.
type Page struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	Total       int   `json:"total"`
	StartIndex  int   `json:"start_index"`
	EndIndex    int   `json:"end_index"`
	PageNumbers []int `json:"page_numbers"`
}

// Paginate computes the slice boundaries of currentPage. Out of range pages
// are clamped, never rejected.
func Paginate(filteredCount, pageSize, currentPage int) Page {

	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if filteredCount < 0 {
		filteredCount = 0
	}

	totalPages := TotalPages(filteredCount, pageSize)
	currentPage = ClampPage(currentPage, totalPages)

	start := (currentPage - 1) * pageSize
	end := start + pageSize
	if end > filteredCount {
		end = filteredCount
	}

	numbers := make([]int, totalPages)
	for i := range numbers {
		numbers[i] = i + 1
	}

	return Page{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		Total:       filteredCount,
		StartIndex:  start,
		EndIndex:    end,
		PageNumbers: numbers,
	}
}

func TotalPages(count, pageSize int) int {
	if pageSize < 1 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func (p Page) Next() int {
	return ClampPage(p.CurrentPage+1, p.TotalPages)
}

func (p Page) Previous() int {
	return ClampPage(p.CurrentPage-1, p.TotalPages)
}

// Window returns the page buttons actually displayed: the first max pages.
func (p Page) Window(max int) []int {
	if max <= 0 || max >= len(p.PageNumbers) {
		return append([]int{}, p.PageNumbers...)
	}
	return append([]int{}, p.PageNumbers[:max]...)
}

// From is the 1-based position of the first visible record, 0 when empty.
func (p Page) From() int {
	if p.EndIndex <= p.StartIndex {
		return 0
	}
	return p.StartIndex + 1
}

func (p Page) To() int {
	return p.EndIndex
}
