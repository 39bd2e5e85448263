package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	. "github.com/fulldump/biff"
)

func run(args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd := newCommand()
	cmd.Writer = buf
	err := cmd.Run(context.Background(), append([]string{"registryctl"}, args...))
	return buf.String(), err
}

func TestRegistryctl(t *testing.T) {

	Alternative("Embedded seeds", func(a *A) {

		a.Alternative("Views", func(a *A) {
			out, err := run("views")
			AssertNil(err)
			AssertTrue(strings.Contains(out, "applications"))
			AssertTrue(strings.Contains(out, "approve, reject, request_info"))
		})

		a.Alternative("List with filter", func(a *A) {
			out, err := run("list", "--view", "applications", "--filter", "status=approved")
			AssertNil(err)
			AssertTrue(strings.Contains(out, "APP002"))
			AssertFalse(strings.Contains(out, "APP001"))
		})

		a.Alternative("List clamps the page", func(a *A) {
			out, err := run("list", "--view", "applications", "--page", "99")
			AssertNil(err)
			AssertTrue(strings.Contains(out, "page 2 of 2"))
		})

		a.Alternative("Export", func(a *A) {
			out, err := run("export", "--view", "applications", "--search", "APP003")
			AssertNil(err)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			AssertEqual(len(lines), 2)
			AssertTrue(strings.HasPrefix(lines[1], "APP003,"))
		})

		a.Alternative("Summary", func(a *A) {
			out, err := run("summary", "--view", "applications", "--field", "status")
			AssertNil(err)
			AssertTrue(strings.Contains(out, "pending"))
		})

		a.Alternative("Counters", func(a *A) {
			out, err := run("counters", "--view", "notifications")
			AssertNil(err)
			AssertTrue(strings.Contains(out, "high_priority"))
		})

		a.Alternative("Unknown view", func(a *A) {
			_, err := run("list", "--view", "nope")
			AssertNotNil(err)
		})

		a.Alternative("Malformed filter", func(a *A) {
			_, err := run("list", "--view", "applications", "--filter", "status")
			AssertNotNil(err)
		})
	})
}

func TestParseFilters(t *testing.T) {

	filters, err := parseFilters([]string{"status=pending", "category=", "x=a=b"})
	AssertNil(err)
	AssertEqual(filters, [][2]string{{"status", "pending"}, {"category", ""}, {"x", "a=b"}})

	_, err = parseFilters([]string{"=pending"})
	AssertNotNil(err)
}
