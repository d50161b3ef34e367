package ir

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// SortRecords orders records by book (lexicographic), chapter (numeric)
// and verse. Verse labels are compared as strings, so "10" sorts before
// "2"; downstream consumers depend on this order.
func SortRecords(records []VerseRecord) {
	slices.SortStableFunc(records, CompareRecords)
}

// CompareRecords is the comparison used by SortRecords.
func CompareRecords(a, b VerseRecord) int {
	if c := strings.Compare(a.Book, b.Book); c != 0 {
		return c
	}
	if c := compareChapter(a.Chapter, b.Chapter); c != 0 {
		return c
	}
	return strings.Compare(a.Verse, b.Verse)
}

// compareChapter compares chapters numerically. Labels that are not
// integers sort after numeric ones and among themselves as strings.
func compareChapter(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
