package dict

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// dictSchema validates JSON dictionary files before anything reaches
// the database.
const dictSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["words"],
  "properties": {
    "words": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["word"],
        "properties": {
          "word": {"type": "string", "minLength": 1},
          "annotation": {"type": "string"},
          "freq": {"type": "integer", "minimum": 0}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func wordFileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("dict.schema.json", strings.NewReader(dictSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("dict.schema.json")
	})
	return compiledSchema, schemaErr
}

// wordFile mirrors the JSON dictionary format:
//
//	{"words": [{"word": "chào", "annotation": "hello", "freq": 100}]}
type wordFile struct {
	Words []wordEntry `json:"words"`
}

type wordEntry struct {
	Word       string `json:"word"`
	Annotation string `json:"annotation,omitempty"`
	Freq       int64  `json:"freq,omitempty"`
}

// ImportFile loads words from a dictionary file into the store and
// returns how many entries were written. JSON files are validated
// against the dictionary schema; any other extension is read as
// tab-separated lines of word, annotation, and frequency.
func (s *Store) ImportFile(path string) (int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return s.importJSON(path)
	default:
		return s.importTSV(path)
	}
}

func (s *Store) importJSON(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read dictionary: %w", err)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return 0, fmt.Errorf("parse dictionary: %w", err)
	}

	sch, err := wordFileSchema()
	if err != nil {
		return 0, fmt.Errorf("compile dictionary schema: %w", err)
	}
	if err := sch.Validate(instance); err != nil {
		return 0, fmt.Errorf("invalid dictionary file: %w", err)
	}

	var file wordFile
	if err := json.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse dictionary: %w", err)
	}

	return s.importEntries(file.Words)
}

func (s *Store) importTSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	var entries []wordEntry

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Split(text, "\t")
		entry := wordEntry{Word: strings.TrimSpace(fields[0])}
		if entry.Word == "" {
			continue
		}
		if len(fields) > 1 {
			entry.Annotation = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			freq, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
			if err != nil {
				return 0, fmt.Errorf("line %d: bad frequency %q", line, fields[2])
			}
			entry.Freq = freq
		}

		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read dictionary: %w", err)
	}

	return s.importEntries(entries)
}

func (s *Store) importEntries(entries []wordEntry) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO words (id, word, annotation, freq, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(word) DO UPDATE SET
			annotation = excluded.annotation,
			freq = excluded.freq`)
	if err != nil {
		return 0, fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UnixNano()
	for _, e := range entries {
		if _, err := stmt.Exec(s.newID(), e.Word, e.Annotation, e.Freq, now); err != nil {
			return 0, fmt.Errorf("import %q: %w", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return len(entries), nil
}
