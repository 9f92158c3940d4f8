// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package namer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-renamer/pkg/types"
)

func newTestResolver() *Resolver {
	return NewResolver(types.NamingConfig{})
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "plain title unchanged",
			title: "Introduction to Widgets",
			want:  "Introduction to Widgets",
		},
		{
			name:  "ascii banned characters stripped",
			title: `A/B: Testing? "Quoted" <Title> | C:\path\*`,
			want:  "AB Testing Quoted Title Cpath",
		},
		{
			name:  "typographic punctuation stripped",
			title: "《深度学习》（第二版）‘草稿’ “终稿”",
			want:  "深度学习第二版草稿 终稿",
		},
		{
			name:  "whitespace runs collapse to one space",
			title: "A  Title\twith\n\nembedded\r\nbreaks",
			want:  "A Title with embedded breaks",
		},
		{
			name:  "leading and trailing whitespace trimmed",
			title: "   Padded Title   ",
			want:  "Padded Title",
		},
		{
			name:  "trailing dots and spaces trimmed",
			title: "Ends with dots... ",
			want:  "Ends with dots",
		},
		{
			name:  "empty input becomes placeholder",
			title: "",
			want:  "untitled",
		},
		{
			name:  "input reduced to nothing becomes placeholder",
			title: `\/*?:"<>| ... `,
			want:  "untitled",
		},
		{
			name:  "parentheses stripped",
			title: "Widgets (2nd edition)",
			want:  "Widgets 2nd edition",
		},
	}

	r := newTestResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Sanitize(tt.title))
		})
	}
}

func TestSanitizeTruncation(t *testing.T) {
	r := newTestResolver()

	long := strings.Repeat("a", 200)
	got := r.Sanitize(long)
	assert.Len(t, []rune(got), 150)

	// Truncation must not leave a trailing space or dot behind.
	padded := strings.Repeat("b", 149) + " c" + strings.Repeat("d", 60)
	got = r.Sanitize(padded)
	assert.Equal(t, strings.Repeat("b", 149), got)

	dotted := strings.Repeat("e", 149) + "." + strings.Repeat("f", 60)
	got = r.Sanitize(dotted)
	assert.Equal(t, strings.Repeat("e", 149), got)
}

func TestSanitizeMultibyteTruncation(t *testing.T) {
	r := newTestResolver()

	// 200 CJK runes must be cut at 150 runes, not 150 bytes.
	long := strings.Repeat("学", 200)
	got := r.Sanitize(long)
	assert.Equal(t, strings.Repeat("学", 150), got)
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Introduction to Widgets",
		`A/B: Testing? "Quoted"`,
		"   Padded\n\nTitle...   ",
		strings.Repeat("x", 500),
		"",
		`\/*?:"<>|`,
		"《标题》（注释）",
	}

	r := newTestResolver()
	for _, in := range inputs {
		once := r.Sanitize(in)
		assert.Equal(t, once, r.Sanitize(once), "input %q", in)
	}
}

func TestSanitizeInvariants(t *testing.T) {
	inputs := []string{
		"normal title",
		`every\bad/char*in?one:string"with<extra>stuff|here`,
		strings.Repeat(". ", 400),
		"\n\n\n",
		strings.Repeat("《》", 300),
	}

	r := newTestResolver()
	for _, in := range inputs {
		got := r.Sanitize(in)
		assert.NotEmpty(t, got, "input %q", in)
		assert.LessOrEqual(t, len([]rune(got)), 150, "input %q", in)
		assert.False(t, strings.HasSuffix(got, "."), "input %q", in)
		assert.False(t, strings.HasSuffix(got, " "), "input %q", in)
		for _, banned := range bannedChars {
			assert.NotContains(t, got, string(banned), "input %q", in)
		}
	}
}

func TestSanitizeCustomConfig(t *testing.T) {
	r := NewResolver(types.NamingConfig{MaxNameLength: 10, Placeholder: "unnamed"})

	assert.Equal(t, "abcdefghij", r.Sanitize("abcdefghijklmnop"))
	assert.Equal(t, "unnamed", r.Sanitize("???"))
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	r := newTestResolver()

	got, err := r.Resolve(dir, "report", ".pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.pdf"), got)

	touch(t, dir, "report.pdf")
	got, err = r.Resolve(dir, "report", ".pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_1.pdf"), got)

	touch(t, dir, "report_1.pdf")
	got, err = r.Resolve(dir, "report", ".pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_2.pdf"), got)
}

func TestResolveSkipsOverExistingSuffixes(t *testing.T) {
	dir := t.TempDir()
	r := newTestResolver()

	for _, name := range []string{"paper.pdf", "paper_1.pdf", "paper_2.pdf", "paper_3.pdf"} {
		touch(t, dir, name)
	}

	got, err := r.Resolve(dir, "paper", ".pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "paper_4.pdf"), got)
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}
