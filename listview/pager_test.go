package listview

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestPaginate(t *testing.T) {

	Alternative("Paginate", func(a *A) {

		a.Alternative("Two matches, one page", func(a *A) {
			p := Paginate(2, 10, 1)
			AssertEqual(p.TotalPages, 1)
			AssertEqual(p.StartIndex, 0)
			AssertEqual(p.EndIndex, 2)
			AssertEqual(p.PageNumbers, []int{1})
		})

		a.Alternative("Last partial page", func(a *A) {
			p := Paginate(25, 10, 3)
			AssertEqual(p.TotalPages, 3)
			AssertEqual(p.StartIndex, 20)
			AssertEqual(p.EndIndex, 25)
			AssertEqual(p.From(), 21)
			AssertEqual(p.To(), 25)
		})

		a.Alternative("Empty list", func(a *A) {
			p := Paginate(0, 10, 1)
			AssertEqual(p.TotalPages, 1)
			AssertEqual(p.CurrentPage, 1)
			AssertEqual(p.StartIndex, 0)
			AssertEqual(p.EndIndex, 0)
			AssertEqual(p.From(), 0)
		})

		a.Alternative("Page beyond the end is clamped", func(a *A) {
			p := Paginate(25, 10, 99)
			AssertEqual(p.CurrentPage, 3)
			AssertEqual(p.StartIndex, 20)
		})

		a.Alternative("Page below one is clamped", func(a *A) {
			p := Paginate(25, 10, -4)
			AssertEqual(p.CurrentPage, 1)
			AssertEqual(p.StartIndex, 0)
			AssertEqual(p.EndIndex, 10)
		})

		a.Alternative("Next and previous clamp", func(a *A) {
			first := Paginate(25, 10, 1)
			AssertEqual(first.Previous(), 1)
			AssertEqual(first.Next(), 2)

			last := Paginate(25, 10, 3)
			AssertEqual(last.Next(), 3)
			AssertEqual(last.Previous(), 2)
		})

		a.Alternative("Window shows the first pages only", func(a *A) {
			p := Paginate(95, 10, 1)
			AssertEqual(p.TotalPages, 10)
			AssertEqual(len(p.PageNumbers), 10)
			AssertEqual(p.Window(5), []int{1, 2, 3, 4, 5})
			AssertEqual(p.Window(0), p.PageNumbers)
		})
	})
}

func TestPaginate_PagesPartitionTheList(t *testing.T) {

	for _, total := range []int{1, 7, 10, 11, 25, 100, 101} {
		for _, size := range []int{1, 3, 10, 50} {

			seen := make([]int, total)
			sum := 0

			totalPages := TotalPages(total, size)
			for page := 1; page <= totalPages; page++ {
				p := Paginate(total, size, page)
				sum += p.EndIndex - p.StartIndex
				for i := p.StartIndex; i < p.EndIndex; i++ {
					seen[i]++
				}
			}

			AssertEqual(sum, total)
			for _, n := range seen {
				AssertEqual(n, 1)
			}
		}
	}
}
