package plan

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"unicode"

	"bibleplan/backend/internal/bible"
)

var (
	ErrEmptyReference    = errors.New("plan: empty reference")
	ErrUnknownBook       = errors.New("plan: unknown book")
	ErrChapterOutOfRange = errors.New("plan: chapter out of range")
)

// Standardize parses free-form chapter-reference text ("Genesis 3", "gn 3",
// "1 Samuel 12") into the canonical key "<abbrev>-<chapter>". Text with no
// separable chapter number is treated as a book name and defaults to
// chapter 1.
func Standardize(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyReference
	}

	bookPart := text
	chapter := 1
	if idx := strings.LastIndexFunc(text, unicode.IsSpace); idx >= 0 {
		if parsed, err := strconv.Atoi(strings.TrimSpace(text[idx+1:])); err == nil {
			bookPart = strings.TrimSpace(text[:idx])
			chapter = parsed
		} else {
			log.Printf("plan: no chapter number in %q, defaulting to 1", raw)
		}
	} else if _, ok := bible.Lookup(text); ok {
		log.Printf("plan: no chapter number in %q, defaulting to 1", raw)
	}

	book, ok := bible.Lookup(bookPart)
	if !ok {
		return "", ErrUnknownBook
	}
	if chapter < 1 || chapter > book.Chapters {
		return "", ErrChapterOutOfRange
	}
	return bible.Key(book.Abbrev, chapter), nil
}
