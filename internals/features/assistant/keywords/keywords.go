// Package keywords holds the phrase lists the assistant matches queries against.
// Lists are lowercase, ordered and deduplicated; they can be replaced from a YAML file.
package keywords

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Phrases: daftar frasa lowercase, urutan dipertahankan.
type Phrases []string

// In melaporkan apakah salah satu frasa muncul sebagai substring dari lowered.
func (p Phrases) In(lowered string) bool {
	for _, ph := range p {
		if strings.Contains(lowered, ph) {
			return true
		}
	}
	return false
}

type Set struct {
	OffTopic Phrases `yaml:"off_topic"`
	Greeting Phrases `yaml:"greeting"`
	Summary  Phrases `yaml:"summary"`
	Table    Phrases `yaml:"table"`
}

func Defaults() Set {
	return Set{
		OffTopic: Phrases{
			"model are you",
			"act as",
			"ignore previous",
			"tell me about yourself",
			"who created you",
			"prompt",
			"system prompt",
			"/users",
			"call the",
			"external api",
			"fetch",
			"post to",
			"execute code",
			"show hidden",
			"reveal",
			"system instructions",
			"hidden rules",
			"developer note",
			"bypass",
		},
		Greeting: Phrases{
			"hello",
			"hi",
			"hey",
			"good morning",
			"good afternoon",
			"good evening",
			"kumusta",
			"kumusta ka",
			"maayong buntag",
			"maayong hapon",
			"maayong gabii",
			"maayong adlaw",
		},
		Summary: Phrases{"summary", "summarize", "overview", "about", "explain", "synopsis"},
		Table: Phrases{
			"list of books",
			"here are the books",
			"available books",
			"browse",
			"books we have",
			"following books",
		},
	}
}

// Load membaca file YAML. Path kosong atau list kosong → default.
func Load(path string) (Set, error) {
	def := Defaults()
	if strings.TrimSpace(path) == "" {
		return def, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("read keywords file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Set, error) {
	def := Defaults()
	var s Set
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return def, fmt.Errorf("parse keywords: %w", err)
	}
	return Set{
		OffTopic: orDefault(s.OffTopic, def.OffTopic),
		Greeting: orDefault(s.Greeting, def.Greeting),
		Summary:  orDefault(s.Summary, def.Summary),
		Table:    orDefault(s.Table, def.Table),
	}, nil
}

func orDefault(p, def Phrases) Phrases {
	n := normalize(p)
	if len(n) == 0 {
		return def
	}
	return n
}

func normalize(p Phrases) Phrases {
	seen := make(map[string]struct{}, len(p))
	out := make(Phrases, 0, len(p))
	for _, ph := range p {
		ph = strings.ToLower(strings.TrimSpace(ph))
		if ph == "" {
			continue
		}
		if _, ok := seen[ph]; ok {
			continue
		}
		seen[ph] = struct{}{}
		out = append(out, ph)
	}
	return out
}
