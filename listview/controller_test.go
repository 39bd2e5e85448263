package listview

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/fulldump/biff"
)

func TestController(t *testing.T) {

	Alternative("Controller with 25 records", func(a *A) {

		source := &testSource{records: manyRecords(25)}
		sink := &testSink{}
		c, err := New[testRecord](testConfig(), source, sink)
		AssertNil(err)

		s := c.State()
		AssertEqual(s.Page.CurrentPage, 1)
		AssertEqual(s.Page.TotalPages, 3)
		AssertEqual(len(s.Records), 10)
		AssertEqual(s.Total, 25)
		AssertEqual(s.Filter.Categorical, map[string]string{"status": All})

		a.Alternative("Go to page 3", func(a *A) {
			c.GotoPage(3)
			s := c.State()
			AssertEqual(s.Page.StartIndex, 20)
			AssertEqual(s.Page.EndIndex, 25)
			AssertEqual(len(s.Records), 5)
			AssertEqual(s.Records[0].ID, "APP021")
		})

		a.Alternative("Navigation clamps", func(a *A) {
			c.PreviousPage()
			AssertEqual(c.State().Page.CurrentPage, 1)

			c.GotoPage(50)
			AssertEqual(c.State().Page.CurrentPage, 3)

			c.NextPage()
			AssertEqual(c.State().Page.CurrentPage, 3)
		})

		a.Alternative("Search resets page and selection", func(a *A) {
			c.Toggle("APP001", true)
			c.Toggle("APP002", true)
			AssertEqual(c.State().Selected, []string{"APP001", "APP002"})

			c.GotoPage(2)
			c.Toggle("APP011", true)
			c.SetSearch("applicant 1")

			s := c.State()
			AssertEqual(s.Page.CurrentPage, 1)
			AssertEqual(s.Selected, []string{})
			AssertEqual(s.Page.Total, 11) // 1, 10..19
		})

		a.Alternative("Editing search clears a page 1 selection", func(a *A) {
			c.Toggle("APP001", true)
			c.Toggle("APP002", true)
			c.SetSearch("x")

			s := c.State()
			AssertEqual(s.Selected, []string{})
			AssertEqual(s.Page.CurrentPage, 1)
		})

		a.Alternative("Toggle ignores records outside the page", func(a *A) {
			c.GotoPage(3)
			c.Toggle("APP021", true)
			c.Toggle("APP022", true)
			c.Toggle("APP023", true)
			c.Toggle("APP024", true)
			c.Toggle("APP001", true) // page 1
			c.Toggle("GHOST", true)

			s := c.State()
			AssertEqual(s.Selected, []string{"APP021", "APP022", "APP023", "APP024"})
			AssertFalse(s.AllSelected)

			dispatchedIDs, err := c.Dispatch(context.Background(), "approve")
			AssertNil(err)
			AssertEqual(dispatchedIDs, []string{"APP021", "APP022", "APP023", "APP024"})
			AssertEqual(sink.calls, []dispatched{{Action: "approve", IDs: []string{"APP021", "APP022", "APP023", "APP024"}}})
		})

		a.Alternative("Toggle a filtered out record", func(a *A) {
			c.SetSearch("applicant 2")
			c.Toggle("APP003", true)
			AssertEqual(c.State().Selected, []string{})

			_, err := c.Dispatch(context.Background(), "approve")
			AssertEqual(err, ErrEmptySelection)
			AssertEqual(len(sink.calls), 0)
		})

		a.Alternative("Select all acts on the visible page", func(a *A) {
			c.GotoPage(3)
			c.SelectAll(true)

			s := c.State()
			AssertEqual(s.Selected, []string{"APP021", "APP022", "APP023", "APP024", "APP025"})
			AssertTrue(s.AllSelected)

			c.SelectAll(false)
			AssertEqual(c.State().Selected, []string{})
		})

		a.Alternative("Changing page clears the selection", func(a *A) {
			c.SelectAll(true)
			c.NextPage()
			AssertEqual(c.State().Selected, []string{})
		})

		a.Alternative("Dispatch", func(a *A) {
			c.Toggle("APP003", true)
			c.Toggle("APP004", true)

			dispatchedIDs, err := c.Dispatch(context.Background(), "approve")
			AssertNil(err)
			AssertEqual(dispatchedIDs, []string{"APP003", "APP004"})
			AssertEqual(sink.calls, []dispatched{{Action: "approve", IDs: []string{"APP003", "APP004"}}})
			AssertEqual(c.State().Selected, []string{})
		})

		a.Alternative("Dispatch clears the selection even if the sink fails", func(a *A) {
			sink.err = errSinkDown
			c.Toggle("APP003", true)

			_, err := c.Dispatch(context.Background(), "reject")
			AssertTrue(errors.Is(err, errSinkDown))
			AssertEqual(c.State().Selected, []string{})
		})

		a.Alternative("Dispatch unknown action", func(a *A) {
			c.Toggle("APP003", true)

			_, err := c.Dispatch(context.Background(), "delete")
			AssertTrue(errors.Is(err, ErrUnknownAction))
			AssertEqual(len(sink.calls), 0)
			AssertEqual(c.State().Selected, []string{"APP003"})
		})

		a.Alternative("Dispatch without selection", func(a *A) {
			_, err := c.Dispatch(context.Background(), "approve")
			AssertEqual(err, ErrEmptySelection)
			AssertEqual(len(sink.calls), 0)
		})

		a.Alternative("Reload keeps page and prunes selection", func(a *A) {
			c.GotoPage(3)
			c.Toggle("APP021", true)
			c.Toggle("APP025", true)

			source.records = source.records[:22]
			AssertNil(c.Reload())

			s := c.State()
			AssertEqual(s.Page.CurrentPage, 3)
			AssertEqual(len(s.Records), 2)
			AssertEqual(s.Selected, []string{"APP021"})
		})

		a.Alternative("Reload shrinking the list clamps the page", func(a *A) {
			c.GotoPage(3)
			source.records = source.records[:5]
			AssertNil(c.Reload())
			AssertEqual(c.State().Page.CurrentPage, 1)
		})

		a.Alternative("Reload error keeps previous records", func(a *A) {
			source.err = errSinkDown
			AssertNotNil(c.Reload())
			AssertEqual(c.State().Total, 25)
		})

		a.Alternative("Find ignores filters", func(a *A) {
			c.SetFilter("status", "approved")
			r, ok := c.Find("APP007")
			AssertTrue(ok)
			AssertEqual(r.RecordID(), "APP007")

			_, ok = c.Find("NOPE")
			AssertFalse(ok)
		})

		a.Alternative("Snapshot", func(a *A) {
			snapshot := c.Snapshot()
			AssertEqual(snapshot.View, "applications")
			AssertEqual(len(snapshot.Records), 10)
			AssertEqual(snapshot.Records[0].RecordID(), "APP001")
			AssertEqual(snapshot.Window, []int{1, 2, 3})
			AssertEqual(snapshot.From, 1)
			AssertEqual(snapshot.To, 10)
		})
	})
}

func TestController_StatusScenario(t *testing.T) {

	c, err := New[testRecord](testConfig(), &testSource{records: fiveRecords()}, nil)
	AssertNil(err)

	c.SetFilter("status", "pending")

	s := c.State()
	AssertEqual(ids(s.Records), []string{"APP001", "APP004"})
	AssertEqual(s.Page.TotalPages, 1)
	AssertEqual(s.Page.StartIndex, 0)
	AssertEqual(s.Page.EndIndex, 2)

	c.ResetFilters()
	AssertEqual(len(c.State().Records), 5)
}

func TestController_EmptyResult(t *testing.T) {

	c, err := New[testRecord](testConfig(), &testSource{records: fiveRecords()}, nil)
	AssertNil(err)

	c.SetSearch("nobody")
	c.SelectAll(true)

	s := c.State()
	AssertEqual(s.Page.TotalPages, 1)
	AssertEqual(s.Page.CurrentPage, 1)
	AssertEqual(len(s.Records), 0)
	AssertFalse(s.AllSelected)
}

func TestController_InvalidConfig(t *testing.T) {

	config := testConfig()
	config.PageSize = -1

	_, err := New[testRecord](config, &testSource{}, nil)
	AssertTrue(errors.Is(err, ErrInvalidConfig))
}

func TestController_SourceError(t *testing.T) {

	_, err := New[testRecord](testConfig(), &testSource{err: errSinkDown}, nil)
	AssertTrue(errors.Is(err, errSinkDown))
}

func TestController_ExportAndSummary(t *testing.T) {

	config := testConfig()
	config.Columns = []string{"id", "name", "status"}
	c, err := New[testRecord](config, &testSource{records: fiveRecords()}, nil)
	AssertNil(err)

	c.SetFilter("status", "approved")

	buf := &bytes.Buffer{}
	AssertNil(c.Export(buf))
	AssertEqual(buf.String(), "id,name,status\nAPP002,Jane Smith,approved\nAPP005,David Brown,approved\n")

	AssertEqual(c.Summary("status"), map[string]int{"pending": 2, "approved": 2, "rejected": 1})
}
