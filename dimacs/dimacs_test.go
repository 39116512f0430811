package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satcore/satcore/cnf"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want [][2]string // (name, positive) pairs per literal, flattened clause list not needed here
	}{
		{
			name: "single unit clause",
			text: "c a comment\np cnf 1 1\n1 0\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(tt.text))
			require.NoError(t, err)
			require.Len(t, f.Clauses, 1)
			require.Equal(t, cnf.NewLiteral("1", true), f.Clauses[0][0])
		})
	}
}

func TestParseCommentsAnywhere(t *testing.T) {
	text := "p cnf 2 2\n1 2 0\nc a mid-stream comment\n-1 -2 0\n"
	f, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, f.Clauses, 2)
}

func TestParseMissingProblemLine(t *testing.T) {
	text := "1 2 0\n-1 0\n"
	_, err := Parse(strings.NewReader(text))
	require.Error(t, err)
	var malformed *MalformedInput
	require.ErrorAs(t, err, &malformed)
}

func TestParseMalformedProblemLine(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf not-a-number 1\n1 0\n"))
	require.Error(t, err)
	var malformed *MalformedInput
	require.ErrorAs(t, err, &malformed)
}

func TestParseInvalidToken(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 1 1\nfoo 0\n"))
	require.Error(t, err)
}

func TestParseMidClauseEOF(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 1 1\n1 2"))
	require.Error(t, err)
}

func TestParseAllCollectsEveryError(t *testing.T) {
	// Two independent invalid tokens on separate lines.
	text := "p cnf 2 2\nfoo 0\nbar 0\n"
	_, err := ParseAll(strings.NewReader(text))
	require.Error(t, err)
	require.Contains(t, err.Error(), "foo")
	require.Contains(t, err.Error(), "bar")
}

func TestWriteRoundTrip(t *testing.T) {
	f := cnf.NewFormula([]cnf.Clause{
		{cnf.NewLiteral("1", true), cnf.NewLiteral("3", true)},
		{cnf.NewLiteral("2", false)},
	})
	var b strings.Builder
	require.NoError(t, Write(&b, f))

	reparsed, err := Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Equal(t, f.Clauses, reparsed.Clauses)
}

func TestSortedNamesNumeric(t *testing.T) {
	f := cnf.NewFormula([]cnf.Clause{
		{cnf.NewLiteral("10", true), cnf.NewLiteral("2", true), cnf.NewLiteral("1", true)},
	})
	require.Equal(t, []string{"1", "2", "10"}, SortedNames(f))
}

func TestSortedNamesLexicographic(t *testing.T) {
	f := cnf.NewFormula([]cnf.Clause{
		{cnf.NewLiteral("charlie", true), cnf.NewLiteral("alpha", true), cnf.NewLiteral("bravo", true)},
	})
	require.Equal(t, []string{"alpha", "bravo", "charlie"}, SortedNames(f))
}
