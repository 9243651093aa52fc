package metadata

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/identity"
	"github.com/arthur-debert/flairgen/pkg/types"
)

// ManifestFile is the template-relative path of the package manifest
const ManifestFile = "package.json"

// Manifest is the parsed template manifest
type Manifest struct {
	Name    string
	Version string
	Fields  map[string]interface{}
}

// IsManifest reports whether relPath is the package manifest
func IsManifest(relPath string) bool {
	return relPath == ManifestFile
}

// ParseManifest parses manifest content. Anything that is not a JSON object
// is a ManifestParseError.
func ParseManifest(data []byte) (*Manifest, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "package manifest is not valid JSON")
	}
	if fields == nil {
		return nil, errors.New(errors.ErrManifestParse, "package manifest must be a JSON object")
	}

	m := &Manifest{Fields: fields}
	if name, ok := fields["name"].(string); ok {
		m.Name = name
	}
	if version, ok := fields["version"].(string); ok {
		m.Version = version
	}
	return m, nil
}

// LoadManifest reads and parses the manifest at the template root
func LoadManifest(fs types.FS, root string) (*Manifest, error) {
	manifestPath := filepath.Join(root, ManifestFile)
	data, err := fs.ReadFile(manifestPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "cannot read %s", ManifestFile).
			WithDetail("path", manifestPath)
	}
	m, err := ParseManifest(data)
	if err != nil {
		if fe, ok := err.(*errors.FlairError); ok {
			fe.WithDetail("path", manifestPath)
		}
		return nil, err
	}
	return m, nil
}

type manifestField struct {
	key   string
	value func(id types.ProjectIdentity) string
}

var manifestFields = []manifestField{
	{"name", func(id types.ProjectIdentity) string { return identity.Slugify(id.ThemeName) }},
	{"description", func(id types.ProjectIdentity) string { return id.Description }},
	{"version", func(types.ProjectIdentity) string { return InitialVersion }},
	{"author", func(id types.ProjectIdentity) string { return id.Author }},
	{"homepage", func(id types.ProjectIdentity) string { return id.ThemeURI }},
	{"bugs", func(types.ProjectIdentity) string { return "" }},
	{"url", func(types.ProjectIdentity) string { return "" }},
}

// RewriteManifest replaces the value of every line that starts with one of
// the known keys. Object and array values are replaced whole, and a trailing
// comma is kept only where the original value had one.
func RewriteManifest(content string, id types.ProjectIdentity) string {
	for _, f := range manifestFields {
		content = replaceJSONField(content, f.key, quoteJSON(f.value(id)))
	}
	return content
}

func keyPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*"` + regexp.QuoteMeta(key) + `"[ \t]*:[ \t]*`)
}

var keyPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(manifestFields))
	for _, f := range manifestFields {
		patterns[f.key] = keyPattern(f.key)
	}
	return patterns
}()

func replaceJSONField(content, key, value string) string {
	re, ok := keyPatterns[key]
	if !ok {
		re = keyPattern(key)
	}

	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(content, -1) {
		if loc[0] < last {
			continue
		}
		start := loc[1]
		end, comma := valueSpan(content, start)
		if start == end {
			continue
		}
		b.WriteString(content[last:start])
		b.WriteString(value)
		if comma {
			b.WriteByte(',')
		}
		last = end
	}
	if last == 0 {
		return content
	}
	b.WriteString(content[last:])
	return b.String()
}

// valueSpan returns the end of the JSON value starting at start, including
// a trailing comma, and whether such a comma was present.
func valueSpan(content string, start int) (int, bool) {
	if start >= len(content) {
		return start, false
	}

	var end int
	ok := true
	switch c := content[start]; {
	case c == '{' || c == '[':
		end, ok = matchBracket(content, start)
	case c == '"':
		end, ok = stringEnd(content, start)
	default:
		end = start
		for end < len(content) && !strings.ContainsRune(",}]\r\n", rune(content[end])) {
			end++
		}
		for end > start && (content[end-1] == ' ' || content[end-1] == '\t') {
			end--
		}
	}
	if !ok {
		// Unterminated value, take the rest of the line
		end = start
		for end < len(content) && content[end] != '\n' && content[end] != '\r' {
			end++
		}
		line := strings.TrimRight(content[start:end], " \t")
		return end, strings.HasSuffix(line, ",")
	}

	rest := end
	for rest < len(content) && (content[rest] == ' ' || content[rest] == '\t') {
		rest++
	}
	if rest < len(content) && content[rest] == ',' {
		return rest + 1, true
	}
	return end, false
}

// stringEnd returns the index just past the string literal opening at open
func stringEnd(content string, open int) (int, bool) {
	for i := open + 1; i < len(content); i++ {
		switch content[i] {
		case '\\':
			i++
		case '"':
			return i + 1, true
		case '\n':
			return 0, false
		}
	}
	return 0, false
}

// matchBracket returns the index just past the bracket closing the one at
// open, skipping over string literals.
func matchBracket(content string, open int) (int, bool) {
	depth := 0
	inString := false
	for i := open; i < len(content); i++ {
		c := content[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

func quoteJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimRight(buf.String(), "\n")
}
