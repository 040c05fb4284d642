package pairfile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/hasbyte1/go-textpair/pair"
	"github.com/hasbyte1/go-textpair/text"
)

// File is the decoded form of a pair file.
type File struct {
	Pairs []Entry `toml:"pair"`
}

// Entry is one [[pair]] table. Omitted fields fall back to [DefaultRule];
// at defaults to 1 only when sep is empty.
type Entry struct {
	Line   string        `toml:"line"`
	At     *int          `toml:"at"`
	Sep    string        `toml:"sep"`
	First  TransformName `toml:"first"`
	Second TransformName `toml:"second"`
}

// Rule resolves the entry's split rule.
func (e Entry) Rule() Rule {
	r := DefaultRule()
	r.Sep = e.Sep
	switch {
	case e.At != nil:
		r.At = *e.At
	case e.Sep != "":
		r.At = 0
	}
	if e.First != "" {
		r.First = e.First
	}
	if e.Second != "" {
		r.Second = e.Second
	}
	return r
}

// Parse decodes a pair file and builds every entry.
func Parse(data []byte) ([]*pair.SelfSustained[text.Cow], error) {
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("pairfile: parse failed: %w", err)
	}
	out := make([]*pair.SelfSustained[text.Cow], 0, len(f.Pairs))
	for i, e := range f.Pairs {
		p, err := e.Rule().Build(e.Line)
		if err != nil {
			return nil, fmt.Errorf("pairfile: pair %d (%q): %w", i, e.Line, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Load reads and parses the pair file at path.
func Load(path string) ([]*pair.SelfSustained[text.Cow], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pairfile: load failed (%s): %w", path, err)
	}
	return Parse(data)
}
