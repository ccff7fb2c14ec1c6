package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "pt-br", want: "pt-BR"},
		{in: " en-US ", want: "en-US"},
		{in: "", want: "en-US"},
		{in: "fr", want: "fr"},
		{in: "not a tag!", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizeLanguage(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestConfigValidate(t *testing.T) {
	config := &Config{TMDB: TMDBConfig{Language: "pt-br"}}
	require.Error(t, config.Validate())

	config.TMDB.APIKey = "key"
	require.NoError(t, config.Validate())
	require.Equal(t, "pt-BR", config.TMDB.Language)
	require.Positive(t, config.TMDB.Timeout)
	require.Equal(t, 24, config.Session.ExpiryHours)
	require.Equal(t, 1, config.Catalog.MaxConcurrency)
}

func TestSanitizeText(t *testing.T) {
	require.Equal(t, "hello world", SanitizeText("  <p>hello <em>world</em></p> "))
	require.Equal(t, `Tom & Jerry's "show"`, SanitizeText(`Tom & Jerry's "show"`))
	require.Empty(t, SanitizeText(`<script>alert("x")</script>`))
	require.Equal(t, "ac", SanitizeText("a<b>c"))
}

func TestSanitizeTextEncodedMarkup(t *testing.T) {
	for _, input := range []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"&lt;img src=x onerror=alert(1)&gt;",
		"&amp;lt;img src=x onerror=alert(1)&amp;gt;",
	} {
		out := SanitizeText(input)
		require.NotContains(t, out, "<", input)
		require.NotContains(t, out, "onerror=alert(1)>", input)
	}

	require.Equal(t, "bold", SanitizeText("&lt;b&gt;bold&lt;/b&gt;"))
}

func TestSanitizeTextKeepsBareBrackets(t *testing.T) {
	require.Equal(t, "if a<b then", SanitizeText("if a<b then"))
	require.Equal(t, "1 < 2 > 0", SanitizeText("1 < 2 > 0"))
	require.Equal(t, "<3 this movie", SanitizeText("<3 this movie"))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("550")
	require.True(t, ok)
	require.Equal(t, int64(550), id)

	for _, bad := range []string{"", "0", "-1", "abc", "1.5"} {
		_, ok := ParseID(bad)
		require.False(t, ok, bad)
	}

	require.Equal(t, 1, ParseInt("", 1))
	require.Equal(t, 1, ParseInt("-3", 1))
	require.Equal(t, 7, ParseInt("7", 1))
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Email string `validate:"required,email"`
		Name  string `validate:"min=3"`
	}

	errs := ValidateStruct(sample{Email: "nope", Name: "ab"})
	require.Equal(t, "Invalid email format", errs["Email"])
	require.Equal(t, "Minimum length is 3", errs["Name"])
	require.Equal(t, "Email: Invalid email format; Name: Minimum length is 3", FormatValidationErrors(errs))

	require.Empty(t, ValidateStruct(sample{Email: "a@b.co", Name: "abc"}))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.True(t, CheckPassword(hash, "secret123"))
	require.False(t, CheckPassword(hash, "secret124"))
}
