// Package dict stores the candidate dictionary in SQLite. Words carry a
// frequency used to rank lookup results; the store satisfies the
// vietnamese.Dictionary interface.
package dict

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"

	"github.com/hieple7985/hip-key/pkg/ime"
)

// ErrNotFound is returned when a word is not in the dictionary.
var ErrNotFound = errors.New("dict: word not found")

// Schema for the hip-key dictionary.
const schema = `
CREATE TABLE IF NOT EXISTS words (
    id          TEXT PRIMARY KEY,
    word        TEXT NOT NULL UNIQUE,
    annotation  TEXT NOT NULL DEFAULT '',
    freq        INTEGER NOT NULL DEFAULT 0,
    created_at  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_words_freq ON words(freq);
`

// Entry is one dictionary row.
type Entry struct {
	ID         string
	Word       string
	Annotation string
	Freq       int64
	CreatedAt  int64
}

// Store is the SQLite-backed dictionary.
type Store struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Open opens or creates the dictionary database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Add inserts a word or updates its annotation and frequency if it
// already exists.
func (s *Store) Add(word, annotation string, freq int64) (*Entry, error) {
	if word == "" {
		return nil, fmt.Errorf("dict: empty word")
	}

	_, err := s.db.Exec(`
		INSERT INTO words (id, word, annotation, freq, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(word) DO UPDATE SET
			annotation = excluded.annotation,
			freq = excluded.freq`,
		s.newID(), word, annotation, freq, time.Now().UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert word: %w", err)
	}

	return s.Get(word)
}

// Get retrieves a word entry. Returns ErrNotFound if the word is not in
// the dictionary.
func (s *Store) Get(word string) (*Entry, error) {
	var e Entry

	err := s.db.QueryRow(`
		SELECT id, word, annotation, freq, created_at
		FROM words WHERE word = ?`, word,
	).Scan(&e.ID, &e.Word, &e.Annotation, &e.Freq, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get word: %w", err)
	}

	return &e, nil
}

// IncrementFreq bumps a word's frequency by one. Unknown words are a
// no-op, not an error, so commit hooks can call this blindly.
func (s *Store) IncrementFreq(word string) error {
	_, err := s.db.Exec(`UPDATE words SET freq = freq + 1 WHERE word = ?`, word)
	if err != nil {
		return fmt.Errorf("increment frequency: %w", err)
	}
	return nil
}

// Delete removes a word from the dictionary.
func (s *Store) Delete(word string) error {
	result, err := s.db.Exec(`DELETE FROM words WHERE word = ?`, word)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of words in the dictionary.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// Lookup returns candidates whose word starts with prefix, ordered by
// frequency. Confidence is each word's frequency relative to the best
// match in the result set; with no frequency data every candidate gets
// the default confidence.
func (s *Store) Lookup(prefix string, limit int) ([]ime.Candidate, error) {
	if prefix == "" || limit <= 0 {
		return nil, nil
	}

	pattern := escapeLike(prefix) + "%"
	rows, err := s.db.Query(`
		SELECT word, annotation, freq
		FROM words
		WHERE word LIKE ? ESCAPE '\'
		ORDER BY freq DESC, word ASC
		LIMIT ?`, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("lookup words: %w", err)
	}
	defer rows.Close()

	type match struct {
		word       string
		annotation string
		freq       int64
	}
	var matches []match

	for rows.Next() {
		var m match
		if err := rows.Scan(&m.word, &m.annotation, &m.freq); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}

	if len(matches) == 0 {
		return nil, nil
	}

	topFreq := matches[0].freq

	candidates := make([]ime.Candidate, 0, len(matches))
	for _, m := range matches {
		confidence := ime.DefaultConfidence
		if topFreq > 0 {
			confidence = float64(m.freq) / float64(topFreq)
		}
		candidates = append(candidates, ime.NewCandidate(m.word, m.annotation, confidence))
	}

	return candidates, nil
}

// escapeLike escapes LIKE wildcards so a prefix matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
