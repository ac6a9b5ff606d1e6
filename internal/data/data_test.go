package data

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestField(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantSet bool
		wantOK  bool
		blank   bool
	}{
		{"string", `{"id":"c1"}`, true, true, false},
		{"empty string", `{"id":""}`, true, true, true},
		{"null", `{"id":null}`, false, false, true},
		{"absent", `{}`, false, false, true},
		{"number", `{"id":5}`, true, false, false},
		{"array", `{"id":["a"]}`, true, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := DecodeCategory(json.RawMessage(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.wantSet, c.ID.Set, "Set")
			assert.Equal(t, tc.wantOK, c.ID.OK, "OK")
			assert.Equal(t, tc.blank, Blank(c.ID), "Blank")
		})
	}
}

func TestDecode_ExactKeys(t *testing.T) {
	c, err := DecodeCategory(json.RawMessage(`{"ID":"c1","Slug":"tools","status":"approved","Status":"bogus"}`))
	require.NoError(t, err)
	assert.False(t, c.ID.Set, "ID is not id")
	assert.False(t, c.Slug.Set, "Slug is not slug")
	assert.Equal(t, "approved", c.Status.Value)

	l, err := DecodeLink(json.RawMessage(`{"URL":"https://example.com","submittedAt":"2024-01-15","SubmittedAt":"never"}`))
	require.NoError(t, err)
	assert.False(t, l.URL.Set)
	assert.Equal(t, "2024-01-15", l.SubmittedAt.Value)
}

func TestDecodeCategory_Order(t *testing.T) {
	c, err := DecodeCategory(json.RawMessage(`{"order":0}`))
	require.NoError(t, err)
	assert.True(t, c.Order.Set)
	assert.True(t, c.Order.OK)
	assert.Equal(t, 0.0, c.Order.Value)

	c, err = DecodeCategory(json.RawMessage(`{"order":"1"}`))
	require.NoError(t, err)
	assert.True(t, c.Order.Set)
	assert.False(t, c.Order.OK)
}

func TestDecodeLink_Categories(t *testing.T) {
	l, err := DecodeLink(json.RawMessage(`{"categories":["tools",3,null]}`))
	require.NoError(t, err)
	require.True(t, l.Categories.OK)
	require.Len(t, l.Categories.Value, 3)

	assert.Equal(t, "tools", l.Categories.Value[0].Value)
	assert.True(t, l.Categories.Value[1].Set)
	assert.False(t, l.Categories.Value[1].OK)
	assert.False(t, l.Categories.Value[2].Set)

	l, err = DecodeLink(json.RawMessage(`{"categories":"tools"}`))
	require.NoError(t, err)
	assert.True(t, l.Categories.Set)
	assert.False(t, l.Categories.OK)
}

func TestDecode_NotObject(t *testing.T) {
	for _, raw := range []string{`null`, `5`, `"x"`, `[1]`} {
		t.Run(raw, func(t *testing.T) {
			_, err := DecodeCategory(json.RawMessage(raw))
			assert.ErrorIs(t, err, ErrNotObject)
			_, err = DecodeLink(json.RawMessage(raw))
			assert.ErrorIs(t, err, ErrNotObject)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		doc, err := Parse("links.json", []byte(`{"links":[]}`))
		require.NoError(t, err)
		assert.Equal(t, "links.json", doc.Path)
	})

	t.Run("syntax error position", func(t *testing.T) {
		_, err := Parse("links.json", []byte("{\n  \"links\": [,]\n}"))
		var pe *ParseError
		require.True(t, errors.As(err, &pe), "want *ParseError, got %T", err)
		assert.Equal(t, "links.json", pe.Path)
		assert.Equal(t, 2, pe.Line)
		assert.Equal(t, 13, pe.Column)
		assert.Contains(t, pe.Error(), "links.json:2:13")
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Parse("categories.json", nil)
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Contains(t, pe.Error(), "unexpected end of JSON input")
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	p := filepath.Join(dir, "categories.json")
	writeFile(t, p, `{"categories":[{"id":"c1"}]}`)
	doc, err := Load(p)
	require.NoError(t, err)
	recs, err := doc.Records("categories")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestRecords(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"array", `{"categories":[{},{}]}`, 2, false},
		{"empty array", `{"categories":[]}`, 0, false},
		{"missing key", `{"links":[]}`, 0, true},
		{"null value", `{"categories":null}`, 0, true},
		{"object value", `{"categories":{}}`, 0, true},
		{"top-level array", `[{"categories":[]}]`, 0, true},
		{"top-level null", `null`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse("categories.json", []byte(tc.input))
			require.NoError(t, err)

			recs, err := doc.Records("categories")
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrNoArray)
				return
			}
			require.NoError(t, err)
			assert.Len(t, recs, tc.want)
		})
	}
}

func TestMissing(t *testing.T) {
	dir := t.TempDir()
	p := ForDir(dir)

	assert.Equal(t, []string{p.Categories, p.Links}, p.Missing())

	writeFile(t, p.Links, `{}`)
	assert.Equal(t, []string{p.Categories}, p.Missing())

	require.NoError(t, os.Mkdir(p.Categories, 0755))
	assert.Equal(t, []string{p.Categories}, p.Missing(), "directory is not a data file")
}

func TestDiscover(t *testing.T) {
	origExe := executable
	defer func() { executable = origExe }()

	t.Run("beside executable", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "data", CategoriesFile), `{}`)
		executable = func() (string, error) { return filepath.Join(root, "datalint"), nil }

		assert.Equal(t, filepath.Join(root, "data"), Discover())
	})

	t.Run("one level above executable", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "data", LinksFile), `{}`)
		executable = func() (string, error) { return filepath.Join(root, "bin", "datalint"), nil }

		assert.Equal(t, filepath.Join(root, "data"), Discover())
	})

	t.Run("walks up from working directory", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "data", CategoriesFile), `{}`)
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))
		executable = func() (string, error) { return "", errors.New("unknown") }
		t.Chdir(nested)

		want, err := filepath.EvalSymlinks(filepath.Join(root, "data"))
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(Discover())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty data directory is skipped", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0755))
		executable = func() (string, error) { return filepath.Join(root, "datalint"), nil }
		t.Chdir(root)

		assert.Equal(t, DirName, Discover())
	})
}
