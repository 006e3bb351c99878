package language

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is one entry of the catalog offered to clients
type Language struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Native   string `json:"native_name"`
	IsCommon bool   `json:"is_common"`
}

type entry struct {
	code   string
	common bool
}

var catalog = []entry{
	{"en", true},
	{"es", true},
	{"fr", true},
	{"de", true},
	{"it", true},
	{"pt", true},
	{"ru", true},
	{"zh", true},
	{"ja", true},
	{"ko", true},
	{"ar", true},
	{"hi", true},
	{"bn", false},
	{"nl", false},
	{"sv", false},
	{"pl", false},
	{"tr", false},
	{"uk", false},
	{"vi", false},
	{"th", false},
	{"id", false},
	{"ms", false},
	{"fa", false},
	{"he", false},
	{"ur", false},
	{"el", false},
	{"cs", false},
	{"hu", false},
	{"ro", false},
	{"fi", false},
	{"da", false},
	{"no", false},
}

var englishNames = display.English.Tags()

// Parse validates code as a BCP 47 tag. The undetermined tag is rejected.
func Parse(code string) (language.Tag, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return language.Und, false
	}
	tag, err := language.Parse(code)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}

// IsValid reports whether code is a usable language tag
func IsValid(code string) bool {
	_, ok := Parse(code)
	return ok
}

// Normalize returns the canonical form of code ("EN" -> "en",
// "pt_br" -> "pt-BR"). Unparseable input is returned trimmed and lowercased.
func Normalize(code string) string {
	if tag, ok := Parse(strings.ReplaceAll(code, "_", "-")); ok {
		return tag.String()
	}
	return strings.ToLower(strings.TrimSpace(code))
}

// NormalizeList normalizes and deduplicates codes, keeping first-seen order.
func NormalizeList(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		n := Normalize(code)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}
	return normalized
}

// DisplayName returns the English name of code, or the uppercased code when
// it cannot be parsed.
func DisplayName(code string) string {
	tag, ok := Parse(code)
	if !ok {
		return strings.ToUpper(strings.TrimSpace(code))
	}
	if name := englishNames.Name(tag); name != "" {
		return name
	}
	return tag.String()
}

func nativeName(tag language.Tag) string {
	return display.Self.Name(tag)
}

// Catalog lists the supported languages, common ones first, each group
// in catalog order.
func Catalog() []Language {
	out := make([]Language, 0, len(catalog))
	for _, e := range catalog {
		tag := language.MustParse(e.code)
		out = append(out, Language{
			Code:     e.code,
			Name:     englishNames.Name(tag),
			Native:   nativeName(tag),
			IsCommon: e.common,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsCommon && !out[j].IsCommon
	})
	return out
}

// Search filters the catalog by a case-insensitive match on name or code.
func Search(query string) []Language {
	query = strings.ToLower(strings.TrimSpace(query))
	all := Catalog()
	if query == "" {
		return all
	}
	out := make([]Language, 0, len(all))
	for _, l := range all {
		if strings.Contains(strings.ToLower(l.Name), query) || strings.Contains(l.Code, query) {
			out = append(out, l)
		}
	}
	return out
}
