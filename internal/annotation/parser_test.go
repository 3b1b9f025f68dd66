package annotation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Config
	}{
		{
			name: "all tags",
			doc: `/**
* @description Hello
* @beforeMethod beforeMe
* @beforeMethod afterBeforeMe
* @paramProvider provideParam
* @iterations  3
*/`,
			want: Config{
				Description:    "Hello",
				BeforeMethods:  []string{"beforeMe", "afterBeforeMe"},
				ParamProviders: []string{"provideParam"},
				Iterations:     3,
			},
		},
		{
			name: "empty block",
			doc: `/**
*/`,
			want: DefaultConfig(),
		},
		{
			name: "empty string",
			doc:  "",
			want: DefaultConfig(),
		},
		{
			name: "free text only",
			doc: `/**
 * Measures nothing in particular.
 */`,
			want: DefaultConfig(),
		},
		{
			name: "line comments and trailing whitespace",
			doc:  "// @description  spaced out   \n// @iterations 2\t\n",
			want: Config{
				Description:    "spaced out",
				BeforeMethods:  []string{},
				ParamProviders: []string{},
				Iterations:     2,
			},
		},
		{
			name: "any tag order",
			doc: `/**
 * @iterations 4
 * @paramProvider b
 * @description last
 * @paramProvider a
 */`,
			want: Config{
				Description:    "last",
				BeforeMethods:  []string{},
				ParamProviders: []string{"b", "a"},
				Iterations:     4,
			},
		},
		{
			name: "single line block",
			doc:  "/** @iterations 7 */",
			want: Config{
				BeforeMethods:  []string{},
				ParamProviders: []string{},
				Iterations:     7,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_ListTagsKeepOrderAndDuplicates(t *testing.T) {
	cfg, err := Parse(`/**
 * @beforeMethod x
 * @beforeMethod y
 * @beforeMethod x
 */`)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "x"}, cfg.BeforeMethods)
}

func TestParse_RepeatedScalarLastWins(t *testing.T) {
	cfg, err := Parse(`/**
 * @iterations 2
 * @description first
 * @iterations 9
 * @description second
 */`)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Iterations)
	assert.Equal(t, "second", cfg.Description)
}

func TestParse_UnknownAnnotation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		tag  string
		line int
	}{
		{name: "inline", doc: "/** @asdasd */", tag: "asdasd", line: 1},
		{name: "with value", doc: "/**\n * @iterations 2\n * @bogus foo\n */", tag: "bogus", line: 3},
		{name: "case sensitive", doc: "/** @Iterations 2 */", tag: "Iterations", line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownAnnotation))
			assert.Equal(t, Config{}, cfg, "no partial config on failure")

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.tag, perr.Tag)
			assert.Equal(t, tt.line, perr.Line)
			assert.Equal(t, tt.doc, perr.Doc)
			assert.Contains(t, err.Error(), tt.doc)
		})
	}
}

func TestParse_MalformedAnnotation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "non numeric iterations", doc: "/** @iterations many */"},
		{name: "zero iterations", doc: "/** @iterations 0 */"},
		{name: "negative iterations", doc: "/** @iterations -3 */"},
		{name: "missing iterations value", doc: "/** @iterations */"},
		{name: "empty before method", doc: "/**\n * @beforeMethod\n */"},
		{name: "empty provider", doc: "/**\n * @paramProvider   \n */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedAnnotation))
			assert.False(t, errors.Is(err, ErrUnknownAnnotation))
			assert.Equal(t, Config{}, cfg)
		})
	}
}

func TestParse_AtSignInsideText(t *testing.T) {
	cfg, err := Parse(`/**
 * Ask someone@example.com about this benchmark.
 * @description mail
 */`)
	require.NoError(t, err)
	assert.Equal(t, "mail", cfg.Description)
}
