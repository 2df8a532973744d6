package quotes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Snider/quotes/pkg/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `quotes:
  - text: Simplicity is the soul of efficiency.
    author: Austin Freeman
    tag: engineering
  - text: Consistency beats intensity.
    author: Unknown
    tag: habit
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"quotes.json":        FormatJSON,
		"quotes.yaml":        FormatYAML,
		"QUOTES.YML":         FormatYAML,
		"quotes.yaml.gz":     FormatYAML,
		"dir.yaml/quotes.xz": FormatJSON,
		"quotes":             FormatJSON,
	}
	for path, want := range cases {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	assert.Error(t, err)
}

func TestLoadFile_Good(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		store, err := LoadFile(writeFile(t, "quotes.yaml", []byte(yamlDoc)))
		require.NoError(t, err)
		assert.Equal(t, []string{"engineering", "habit"}, store.Tags())
	})

	t.Run("Compressed JSON", func(t *testing.T) {
		def, err := Default()
		require.NoError(t, err)
		data, err := Encode(def.All(), FormatJSON, "xz")
		require.NoError(t, err)

		store, err := LoadFile(writeFile(t, "quotes.json.xz", data))
		require.NoError(t, err)
		assert.Equal(t, def.All(), store.All())
	})

	t.Run("Compressed YAML", func(t *testing.T) {
		data, err := compress.Compress([]byte(yamlDoc), "gz")
		require.NoError(t, err)

		store, err := LoadFile(writeFile(t, "quotes.yml.gz", data))
		require.NoError(t, err)
		assert.Equal(t, 2, store.Len())
	})
}

func TestLoadFile_Bad(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "quotes.json", []byte(`{"quotes": [`)))
		assert.ErrorContains(t, err, "failed to unmarshal quotes")
	})

	t.Run("Empty collection", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "quotes.yaml", []byte("quotes: []\n")))
		assert.ErrorIs(t, err, ErrInvalidCollection)
	})
}

func TestLoadFile_Ugly(t *testing.T) {
	doc := `{"quotes": [{"text": "Quality is not an act, it is a habit.", "tag": "quality"}]}`
	_, err := LoadFile(writeFile(t, "quotes.json", []byte(doc)))
	require.ErrorIs(t, err, ErrInvalidCollection)
	assert.Contains(t, err.Error(), "quotes[0].author is required")
}

func TestEncode_Good(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		data, err := Encode(store.All(), format, "")
		require.NoError(t, err)

		qs, err := Decode(data, format)
		require.NoError(t, err)
		assert.Equal(t, store.All(), qs, string(format))
	}
}

func TestEncode_Bad(t *testing.T) {
	_, err := Encode(sampleQuotes(), Format("toml"), "")
	assert.Error(t, err)

	_, err = Decode([]byte("{}"), Format("toml"))
	assert.Error(t, err)
}
