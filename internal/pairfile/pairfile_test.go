package pairfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-textpair/internal/pairfile"
	"github.com/hasbyte1/go-textpair/pair"
	"github.com/hasbyte1/go-textpair/text"
)

func formatAll(ps []*pair.SelfSustained[text.Cow]) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = pair.Format[text.Cow](p)
	}
	return out
}

func TestLookupTransform(t *testing.T) {
	v := text.ViewOf("mIx")
	cases := map[pairfile.TransformName]string{
		"":              "mIx",
		pairfile.Borrow: "mIx",
		pairfile.Upper:  "MIX",
		pairfile.Lower:  "mix",
		pairfile.Copy:   "mIx",
	}
	for name, want := range cases {
		fn, err := pairfile.LookupTransform(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, fn(v).Borrow(), name)
	}

	borrowed, _ := pairfile.LookupTransform(pairfile.Borrow)
	assert.True(t, borrowed(v).IsBorrowed())
	copied, _ := pairfile.LookupTransform(pairfile.Copy)
	assert.True(t, copied(v).IsOwned())
}

func TestLookupTransformUnknown(t *testing.T) {
	_, err := pairfile.LookupTransform("reverse")
	assert.ErrorIs(t, err, pairfile.ErrUnknownTransform)
}

func TestTransformNames(t *testing.T) {
	assert.Equal(t,
		[]pairfile.TransformName{pairfile.Borrow, pairfile.Copy, pairfile.Lower, pairfile.Upper},
		pairfile.TransformNames())
}

func TestDefaultRuleBuild(t *testing.T) {
	p, err := pairfile.DefaultRule().Build("Ab")
	require.NoError(t, err)
	assert.Equal(t, "A", p.First().Borrow())
	assert.Equal(t, "B", p.Second().Borrow())
	assert.True(t, p.First().IsBorrowed())
	assert.True(t, p.Second().IsOwned())
}

func TestRuleSeparator(t *testing.T) {
	r := pairfile.Rule{Sep: "=", First: pairfile.Borrow, Second: pairfile.Borrow}
	p, err := r.Build("key=value=x")
	require.NoError(t, err)
	assert.Equal(t, `"key" "value=x"`, pair.Format[text.Cow](p))

	_, err = r.Build("novalue")
	assert.ErrorIs(t, err, pairfile.ErrSeparatorNotFound)
}

func TestRuleErrors(t *testing.T) {
	_, err := pairfile.Rule{At: 1, Sep: ":"}.Build("a:b")
	assert.ErrorIs(t, err, pairfile.ErrAmbiguousSplit)

	_, err = pairfile.Rule{At: -1}.Build("ab")
	assert.ErrorIs(t, err, text.ErrOutOfRange)

	_, err = pairfile.Rule{At: 5}.Build("ab")
	assert.ErrorIs(t, err, text.ErrOutOfRange)

	_, err = pairfile.Rule{At: 1, First: "nope"}.Build("ab")
	assert.ErrorIs(t, err, pairfile.ErrUnknownTransform)
}

func TestSplitLines(t *testing.T) {
	ps, err := pairfile.SplitLines(strings.NewReader("ab\n\ncd\nef\n"), pairfile.DefaultRule())
	require.NoError(t, err)
	assert.Equal(t, []string{`"a" "B"`, `"c" "D"`, `"e" "F"`}, formatAll(ps))
}

func TestSplitLinesLongLine(t *testing.T) {
	long := "x" + strings.Repeat("y", 70_000)
	ps, err := pairfile.SplitLines(strings.NewReader(long+"\nab\n"), pairfile.Rule{At: 1, Second: pairfile.Copy})
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "x", ps[0].First().Borrow())
	assert.Len(t, ps[0].Second().Borrow(), 70_000)
	assert.Equal(t, `"a" "b"`, pair.Format[text.Cow](ps[1]))
}

func TestSplitLinesCRLFAndNoTrailingNewline(t *testing.T) {
	ps, err := pairfile.SplitLines(strings.NewReader("ab\r\ncd"), pairfile.DefaultRule())
	require.NoError(t, err)
	assert.Equal(t, []string{`"a" "B"`, `"c" "D"`}, formatAll(ps))
}

func TestSplitLinesReportsLine(t *testing.T) {
	_, err := pairfile.SplitLines(strings.NewReader("a=b\nnosep\n"), pairfile.Rule{Sep: "="})
	require.Error(t, err)
	assert.ErrorIs(t, err, pairfile.ErrSeparatorNotFound)
	assert.Contains(t, err.Error(), "line 2")
}

const sample = `
[[pair]]
line = "ab"

[[pair]]
line = "name: Ada"
sep = ": "
second = "upper"

[[pair]]
line = "XYz"
at = 2
first = "lower"
second = "copy"
`

func TestParse(t *testing.T) {
	ps, err := pairfile.Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{`"a" "B"`, `"name" "ADA"`, `"xy" "z"`}, formatAll(ps))
	assert.Equal(t, "name: Ada", ps[1].Line())
}

func TestParseErrors(t *testing.T) {
	_, err := pairfile.Parse([]byte("[[pair]\n"))
	assert.Error(t, err)

	_, err = pairfile.Parse([]byte("[[pair]]\nline = \"ab\"\nfirst = \"rot13\"\n"))
	assert.ErrorIs(t, err, pairfile.ErrUnknownTransform)
	assert.Contains(t, err.Error(), "pair 0")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	ps, err := pairfile.Load(path)
	require.NoError(t, err)
	assert.Len(t, ps, 3)

	_, err = pairfile.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEntryRule(t *testing.T) {
	zero := 0
	assert.Equal(t, pairfile.DefaultRule(), pairfile.Entry{}.Rule())
	assert.Equal(t, 0, pairfile.Entry{Sep: ","}.Rule().At)
	assert.Equal(t, 0, pairfile.Entry{At: &zero}.Rule().At)
}
