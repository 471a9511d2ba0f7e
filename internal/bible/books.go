package bible

import (
	"fmt"
	"strings"
)

type Book struct {
	Name     string
	Abbrev   string
	Chapters int
}

// canon lists the 66 books in canonical sequential order. Abbreviations are
// the lowercase short forms used in canonical chapter keys ("gn-1").
var canon = []Book{
	{"Genesis", "gn", 50},
	{"Exodus", "ex", 40},
	{"Leviticus", "lv", 27},
	{"Numbers", "nm", 36},
	{"Deuteronomy", "dt", 34},
	{"Joshua", "jos", 24},
	{"Judges", "jg", 21},
	{"Ruth", "ru", 4},
	{"1 Samuel", "1sa", 31},
	{"2 Samuel", "2sa", 24},
	{"1 Kings", "1ki", 22},
	{"2 Kings", "2ki", 25},
	{"1 Chronicles", "1ch", 29},
	{"2 Chronicles", "2ch", 36},
	{"Ezra", "ezr", 10},
	{"Nehemiah", "ne", 13},
	{"Esther", "es", 10},
	{"Job", "job", 42},
	{"Psalms", "ps", 150},
	{"Proverbs", "pr", 31},
	{"Ecclesiastes", "ec", 12},
	{"Song of Solomon", "sg", 8},
	{"Isaiah", "isa", 66},
	{"Jeremiah", "jer", 52},
	{"Lamentations", "lam", 5},
	{"Ezekiel", "eze", 48},
	{"Daniel", "dan", 12},
	{"Hosea", "ho", 14},
	{"Joel", "joe", 3},
	{"Amos", "am", 9},
	{"Obadiah", "ob", 1},
	{"Jonah", "jon", 4},
	{"Micah", "mic", 7},
	{"Nahum", "na", 3},
	{"Habakkuk", "hab", 3},
	{"Zephaniah", "zep", 3},
	{"Haggai", "hag", 2},
	{"Zechariah", "zec", 14},
	{"Malachi", "mal", 4},
	{"Matthew", "mt", 28},
	{"Mark", "mk", 16},
	{"Luke", "lk", 24},
	{"John", "joh", 21},
	{"Acts", "ac", 28},
	{"Romans", "ro", 16},
	{"1 Corinthians", "1co", 16},
	{"2 Corinthians", "2co", 13},
	{"Galatians", "ga", 6},
	{"Ephesians", "eph", 6},
	{"Philippians", "php", 4},
	{"Colossians", "col", 4},
	{"1 Thessalonians", "1th", 5},
	{"2 Thessalonians", "2th", 3},
	{"1 Timothy", "1ti", 6},
	{"2 Timothy", "2ti", 4},
	{"Titus", "tit", 3},
	{"Philemon", "phm", 1},
	{"Hebrews", "heb", 13},
	{"James", "jas", 5},
	{"1 Peter", "1pe", 5},
	{"2 Peter", "2pe", 3},
	{"1 John", "1jo", 5},
	{"2 John", "2jo", 1},
	{"3 John", "3jo", 1},
	{"Jude", "jude", 1},
	{"Revelation", "re", 22},
}

var (
	byName        map[string]Book
	totalChapters int
)

func init() {
	byName = make(map[string]Book, len(canon)*2)
	for _, book := range canon {
		byName[strings.ToLower(book.Name)] = book
		byName[strings.ToLower(book.Abbrev)] = book
		totalChapters += book.Chapters
	}
}

// Lookup resolves a book by full name or abbreviation, case-insensitively.
func Lookup(nameOrAbbrev string) (Book, bool) {
	book, ok := byName[strings.ToLower(strings.TrimSpace(nameOrAbbrev))]
	return book, ok
}

func Books() []Book {
	books := make([]Book, len(canon))
	copy(books, canon)
	return books
}

// TotalChapters is the number of chapters across the whole canon.
func TotalChapters() int {
	return totalChapters
}

// Key builds the canonical chapter key "<abbrev>-<chapter>".
func Key(abbrev string, chapter int) string {
	return fmt.Sprintf("%s-%d", abbrev, chapter)
}
