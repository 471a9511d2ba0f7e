package bible

import "fmt"

// chronologicalBooks is a fixed permutation of the canon used by
// chronological plans. Same chapter membership as the sequential order,
// different traversal.
var chronologicalBooks = []string{
	"gn", "job", "ex", "lv", "nm", "dt", "jos", "jg", "ru", "1sa",
	"2sa", "1ch", "ps", "pr", "ec", "sg", "1ki", "2ki", "2ch", "ob",
	"joe", "jon", "am", "ho", "isa", "mic", "na", "zep", "hab", "jer",
	"lam", "eze", "dan", "ezr", "hag", "zec", "es", "ne", "mal", "mt",
	"mk", "lk", "joh", "ac", "jas", "ga", "1th", "2th", "1co", "2co",
	"ro", "col", "phm", "eph", "php", "1ti", "tit", "1pe", "2pe", "2ti",
	"heb", "jude", "1jo", "2jo", "3jo", "re",
}

func chapterKeys(books []Book) []string {
	keys := make([]string, 0, totalChapters)
	for _, book := range books {
		for chapter := 1; chapter <= book.Chapters; chapter++ {
			keys = append(keys, Key(book.Abbrev, chapter))
		}
	}
	return keys
}

// SequentialOrder returns every chapter key in canonical book order.
func SequentialOrder() []string {
	return chapterKeys(canon)
}

// ChronologicalOrder returns every chapter key in the fixed chronological
// book order.
func ChronologicalOrder() []string {
	books := make([]Book, 0, len(chronologicalBooks))
	for _, abbrev := range chronologicalBooks {
		book, ok := byName[abbrev]
		if !ok {
			panic("bible: chronological table references unknown book " + abbrev)
		}
		books = append(books, book)
	}
	return chapterKeys(books)
}

// CustomOrder returns the sequential order right-rotated so that it begins
// at the first chapter of startBookAbbrev and wraps through the remainder
// of the canon.
func CustomOrder(startBookAbbrev string) ([]string, error) {
	book, ok := Lookup(startBookAbbrev)
	if !ok {
		return nil, fmt.Errorf("bible: unknown start book %q", startBookAbbrev)
	}

	sequential := SequentialOrder()
	start := 0
	first := Key(book.Abbrev, 1)
	for i, key := range sequential {
		if key == first {
			start = i
			break
		}
	}

	rotated := make([]string, 0, len(sequential))
	rotated = append(rotated, sequential[start:]...)
	rotated = append(rotated, sequential[:start]...)
	return rotated, nil
}
