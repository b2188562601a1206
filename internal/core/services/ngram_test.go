package services

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordgrams/internal/connectors/filesystem"
	"github.com/custodia-labs/wordgrams/internal/core/domain"
)

// --- Mock implementations ---

// mockSourceReader implements driven.SourceReader for testing.
type mockSourceReader struct {
	lines []string
	err   error
	calls int
}

func (m *mockSourceReader) ReadLines(_ context.Context, _ domain.Source) ([]string, error) {
	m.calls++
	return m.lines, m.err
}

func newTestNgramService() *NgramService {
	return NewNgramService(filesystem.New())
}

func text(s string) domain.Source {
	return domain.TextSource{Text: s}
}

func TestNgramService_Extract_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		n         int
		want      map[string]int
		wantTotal int
	}{
		{
			name:      "unigrams of a single line",
			source:    "the cat sat on the mat",
			n:         1,
			want:      map[string]int{"the": 2, "cat": 1, "sat": 1, "on": 1, "mat": 1},
			wantTotal: 6,
		},
		{
			name:      "bigrams do not cross line boundaries",
			source:    "the cat sat\nthe dog sat",
			n:         2,
			want:      map[string]int{"the cat": 1, "cat sat": 1, "the dog": 1, "dog sat": 1},
			wantTotal: 4,
		},
		{
			name:      "case and punctuation are normalised",
			source:    "Hello, world! Hello, WORLD.",
			n:         1,
			want:      map[string]int{"hello": 2, "world": 2},
			wantTotal: 4,
		},
		{
			name:      "n larger than every line",
			source:    "the cat sat",
			n:         10,
			want:      map[string]int{},
			wantTotal: 0,
		},
		{
			name:      "empty source",
			source:    "",
			n:         1,
			want:      map[string]int{},
			wantTotal: 0,
		},
		{
			name:      "blank lines are ignored",
			source:    "\n\nthe cat\n\n",
			n:         2,
			want:      map[string]int{"the cat": 1},
			wantTotal: 1,
		},
	}

	svc := newTestNgramService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := svc.Extract(context.Background(), text(tt.source), tt.n)

			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Counts())
			assert.Equal(t, tt.wantTotal, h.Total())
		})
	}
}

func TestNgramService_Extract_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("The cat sat.\n\nThe cat ran!\n"), 0644))

	h, err := newTestNgramService().Extract(context.Background(), domain.FileSource{Path: path}, 2)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"the cat": 2, "cat sat": 1, "cat ran": 1}, h.Counts())
	assert.Equal(t, 4, h.Total())
}

func TestNgramService_Extract_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := newTestNgramService().Extract(context.Background(), domain.FileSource{Path: path}, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestNgramService_Extract_InvalidN(t *testing.T) {
	reader := &mockSourceReader{}
	svc := NewNgramService(reader)

	for _, n := range []int{0, -1} {
		_, err := svc.Extract(context.Background(), text("a b"), n)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, 0, reader.calls, "source must not be read for invalid n")
}

func TestNgramService_Extract_NilSource(t *testing.T) {
	_, err := newTestNgramService().Extract(context.Background(), nil, 1)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNgramService_Extract_ReaderError(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewNgramService(&mockSourceReader{err: boom})

	_, err := svc.Extract(context.Background(), text("a"), 1)

	assert.ErrorIs(t, err, boom)
}

func TestNgramService_Extract_Properties(t *testing.T) {
	sources := []string{
		"the cat sat on the mat",
		"the cat sat\nthe dog sat",
		"Hello, world! Hello, WORLD.",
		"a  b   c\n\n  leading spaces\ntrailing  ",
		"“curly quotes” and — dashes — stay",
	}
	svc := newTestNgramService()

	for _, src := range sources {
		for n := 1; n <= 3; n++ {
			h, err := svc.Extract(context.Background(), text(src), n)
			require.NoError(t, err)

			sum := 0
			for _, c := range h.Counts() {
				sum += c
			}
			assert.Equal(t, h.Total(), sum, "sum of counts equals total for %q n=%d", src, n)

			again, err := svc.Extract(context.Background(), text(src), n)
			require.NoError(t, err)
			assert.Equal(t, h.Counts(), again.Counts(), "extract is idempotent")
			assert.Equal(t, h.Keys(), again.Keys(), "key order is idempotent")
		}

		// n=1 counts every token of every non-empty line
		h, err := svc.Extract(context.Background(), text(src), 1)
		require.NoError(t, err)
		tokens := 0
		for _, line := range filesystem.SplitLines(src) {
			for _, tok := range Tokenize(line) {
				tokens++
				assert.GreaterOrEqual(t, h.Count(tok), 1)
			}
		}
		assert.Equal(t, tokens, h.Total())
	}
}

func TestNgramService_TopK(t *testing.T) {
	svc := newTestNgramService()
	h := domain.NewHistogram(1)
	for _, key := range []string{"the", "cat", "the", "sat"} {
		h.Add(key)
	}

	t.Run("ties keep first occurrence order", func(t *testing.T) {
		top, err := svc.TopK(h, 2)

		require.NoError(t, err)
		assert.Equal(t, []domain.Entry{{Key: "the", Count: 2}, {Key: "cat", Count: 1}}, top)
	})

	t.Run("k of zero is empty", func(t *testing.T) {
		top, err := svc.TopK(h, 0)

		require.NoError(t, err)
		assert.Empty(t, top)
	})

	t.Run("k larger than distinct keys returns all", func(t *testing.T) {
		top, err := svc.TopK(h, 10)

		require.NoError(t, err)
		assert.Equal(t, []domain.Entry{
			{Key: "the", Count: 2},
			{Key: "cat", Count: 1},
			{Key: "sat", Count: 1},
		}, top)
	})

	t.Run("negative k is invalid", func(t *testing.T) {
		_, err := svc.TopK(h, -1)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("nil histogram is empty", func(t *testing.T) {
		top, err := svc.TopK(nil, 3)

		require.NoError(t, err)
		assert.Empty(t, top)
	})

	t.Run("histogram is not modified", func(t *testing.T) {
		before := h.Entries()
		_, err := svc.TopK(h, 1)

		require.NoError(t, err)
		assert.Equal(t, before, h.Entries())
	})
}

func TestNgramService_TopK_Monotonic(t *testing.T) {
	svc := newTestNgramService()
	corpus := strings.Repeat("a b c a b a d e f a b c\n", 3) + "x y z x"
	h, err := svc.Extract(context.Background(), text(corpus), 1)
	require.NoError(t, err)

	previous := []domain.Entry{}
	for k := 0; k <= h.Len()+1; k++ {
		top, err := svc.TopK(h, k)
		require.NoError(t, err)

		for i := 1; i < len(top); i++ {
			assert.GreaterOrEqual(t, top[i-1].Count, top[i].Count, "counts are non-increasing")
		}
		assert.Equal(t, previous, top[:len(previous)], "smaller k is a prefix of larger k")
		previous = top
	}
}

func TestNgramService_Analyse(t *testing.T) {
	svc := newTestNgramService()

	report, err := svc.Analyse(context.Background(), domain.Query{
		Source: text("the cat sat on the mat"),
		N:      1,
		K:      2,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.N)
	assert.Equal(t, 2, report.K)
	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 5, report.Distinct)
	assert.Equal(t, []domain.Entry{{Key: "the", Count: 2}, {Key: "cat", Count: 1}}, report.Entries)
	assert.InDelta(t, 1.0/3.0, report.RelativeFrequency(2), 1e-9)
}

func TestNgramService_Analyse_Empty(t *testing.T) {
	report, err := newTestNgramService().Analyse(context.Background(), domain.Query{
		Source: text("three word line"),
		N:      10,
		K:      5,
	})

	require.NoError(t, err)
	assert.True(t, report.IsEmpty())
	assert.Empty(t, report.Entries)
	assert.Equal(t, 0.0, report.RelativeFrequency(0))
}

func TestNgramService_Analyse_ValidatesBeforeReading(t *testing.T) {
	reader := &mockSourceReader{lines: []string{"a b"}}
	svc := NewNgramService(reader)

	_, err := svc.Analyse(context.Background(), domain.Query{Source: text("a b"), N: 1, K: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Analyse(context.Background(), domain.Query{Source: text("a b"), N: 0, K: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, 0, reader.calls)
}
