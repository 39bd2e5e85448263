package utils

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestGetKeys(t *testing.T) {
	AssertEqual(GetKeys(map[string]int{"b": 1, "a": 2, "c": 3}), []string{"a", "b", "c"})
	AssertEqual(GetKeys(map[string]int{}), []string(nil))
}
