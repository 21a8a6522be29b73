// Package seed loads the read-only mock content shown next to the forms: the
// chat transcript, the article history and the page copy. The content is data,
// not code, so a different fixture can be supplied without rebuilding.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixture []byte

// ChatEntry is one line of the call page transcript.
type ChatEntry struct {
	ID      int    `yaml:"id"`
	Text    string `yaml:"text"`
	Time    string `yaml:"time"`
	FromBot bool   `yaml:"fromBot"`
}

// HistoryEntry is one previously generated article.
type HistoryEntry struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

// Stat is a dashboard figure on the call page.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// CallPage is the copy and transcript for the call request page.
type CallPage struct {
	Product  string      `yaml:"product"`
	Nav      []string    `yaml:"nav"`
	Title    string      `yaml:"title"`
	Subtitle string      `yaml:"subtitle"`
	Intro    string      `yaml:"intro"`
	Stats    []Stat      `yaml:"stats"`
	Chat     []ChatEntry `yaml:"chat"`
}

// ArticlePage is the copy and history for the article generator page.
type ArticlePage struct {
	Product string         `yaml:"product"`
	Nav     []string       `yaml:"nav"`
	Title   string         `yaml:"title"`
	Intro   string         `yaml:"intro"`
	History []HistoryEntry `yaml:"history"`
}

// Fixture bundles both pages.
type Fixture struct {
	Call    CallPage    `yaml:"call"`
	Article ArticlePage `yaml:"article"`
}

// Default returns the fixture compiled into the binary.
func Default() (Fixture, error) {
	return Parse(defaultFixture)
}

// Load reads a fixture from path. An empty path selects the default fixture.
func Load(path string) (Fixture, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read seed fixture: %w", err)
	}
	fixture, err := Parse(data)
	if err != nil {
		return Fixture{}, fmt.Errorf("seed fixture %s: %w", path, err)
	}
	return fixture, nil
}

// Parse decodes and validates a YAML fixture.
func Parse(data []byte) (Fixture, error) {
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("parse seed fixture: %w", err)
	}
	if err := fixture.Validate(); err != nil {
		return Fixture{}, err
	}
	return fixture, nil
}

// Marshal renders a fixture back to YAML.
func Marshal(f Fixture) ([]byte, error) {
	return yaml.Marshal(f)
}

// Validate rejects entries that would render as empty rows.
func (f Fixture) Validate() error {
	var errs []error
	for i, entry := range f.Call.Chat {
		if strings.TrimSpace(entry.Text) == "" {
			errs = append(errs, fmt.Errorf("call.chat[%d]: text is empty", i))
		}
	}
	for i, entry := range f.Article.History {
		if strings.TrimSpace(entry.Title) == "" {
			errs = append(errs, fmt.Errorf("article.history[%d]: title is empty", i))
		}
	}
	return errors.Join(errs...)
}

// Transcript returns a copy of the chat entries.
func (p CallPage) Transcript() []ChatEntry {
	return append([]ChatEntry(nil), p.Chat...)
}

// Entries returns a copy of the history entries.
func (p ArticlePage) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), p.History...)
}
