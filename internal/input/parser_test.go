package input

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knapsack/internal/domain"
)

func TestParse_ReferenceLayout(t *testing.T) {
	p, err := Parse(strings.NewReader("10\n4\n5 10\n4 40\n6 30\n3 50\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, p.Capacity)
	require.Len(t, p.Items, 4)
	assert.Equal(t, domain.Item{Weight: 3, Value: 50, Index: 4, Ratio: 50.0 / 3.0}, p.Items[3])
}

func TestParse_HeaderOnOneLineWithComments(t *testing.T) {
	src := `# capacity items
50 3

10 60   # first
20 100
30 120
`
	p, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 50, p.Capacity)
	assert.Equal(t, []domain.Pair{{Weight: 10, Value: 60}, {Weight: 20, Value: 100}, {Weight: 30, Value: 120}}, p.Items.Pairs())
}

func TestParse_EmptyItemList(t *testing.T) {
	p, err := Parse(strings.NewReader("7 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 7, p.Capacity)
	assert.Empty(t, p.Items)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"empty", "", domain.ErrInvalidInput},
		{"missing count", "10\n", domain.ErrInvalidInput},
		{"not a number", "10\n1\nfive 3\n", domain.ErrInvalidInput},
		{"three fields", "10\n1\n1 2 3\n", domain.ErrInvalidInput},
		{"count mismatch", "10\n2\n1 2\n", domain.ErrInvalidInput},
		{"negative capacity", "-1\n1\n1 2\n", domain.ErrInvalidCapacity},
		{"negative weight", "10\n1\n-1 2\n", domain.ErrInvalidItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWrite_RoundTrips(t *testing.T) {
	orig := Problem{Capacity: 10, Items: domain.MustItemSet(domain.Pair{Weight: 5, Value: 10}, domain.Pair{Weight: 4, Value: 40})}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, orig))
	assert.Equal(t, "10\n2\n5 10\n4 40\n", buf.String())

	back, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig.Capacity, back.Capacity)
	assert.Equal(t, orig.Items, back.Items)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.txt")
	require.NoError(t, os.WriteFile(path, []byte("50\n3\n10 60\n20 100\n30 120\n"), 0o644))

	p, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Items.Len())

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
