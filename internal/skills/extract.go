// Package skills extracts technology keywords from posting text as a
// positive, non-scoring insight.
package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jobshield/jobshield/internal/types"
)

// skillAliases maps each canonical skill to the token spellings it may
// appear under. A skill counts once no matter how many aliases hit.
// The table is initialized once and read-only afterward.
var skillAliases = map[string][]string{
	// languages
	"python":     {"python"},
	"java":       {"java"},
	"javascript": {"javascript", "js"},
	"typescript": {"typescript", "ts"},
	"c++":        {"c++", "cpp"},
	"c#":         {"c#", "csharp"},
	"go":         {"golang"},
	"rust":       {"rust"},

	// frameworks / libs
	"react":       {"react", "reactjs", "react.js"},
	"angular":     {"angular", "angularjs"},
	"vue":         {"vue", "vuejs", "vue.js"},
	"spring":      {"spring"},
	"spring boot": {"spring boot", "springboot"},
	"django":      {"django"},
	"flask":       {"flask"},
	"node":        {"node", "nodejs", "node.js"},
	"express":     {"express", "expressjs"},

	// data / backend
	"sql":        {"sql"},
	"postgresql": {"postgresql", "postgres"},
	"mysql":      {"mysql"},
	"mongodb":    {"mongodb", "mongo"},
	"redis":      {"redis"},
	"kafka":      {"kafka"},

	// cloud / devops
	"aws":        {"aws", "amazon web services"},
	"azure":      {"azure"},
	"gcp":        {"gcp", "google cloud"},
	"docker":     {"docker"},
	"kubernetes": {"kubernetes", "k8s"},
	"ci/cd":      {"ci/cd", "cicd"},
	"jenkins":    {"jenkins"},

	// testing / tools
	"selenium": {"selenium"},
	"jmeter":   {"jmeter"},
	"pytest":   {"pytest"},
	"junit":    {"junit"},

	// misc
	"rest":          {"rest", "restful"},
	"microservices": {"microservices", "micro services"},
	"linux":         {"linux"},
	"git":           {"git"},
}

var aliasPatterns = buildAliasPatterns()

// Extract matches each skill alias as a whole token, case-insensitive,
// against the combined posting text. Output is sorted and deduplicated
// so results are deterministic regardless of match order. Any internal
// failure degrades to an empty insight rather than failing the
// request.
func Extract(text string) (insight types.SkillInsight) {
	defer func() {
		if recover() != nil {
			insight = types.EmptySkillInsight()
		}
	}()

	lower := strings.ToLower(text)

	found := []string{}
	for skill, patterns := range aliasPatterns {
		for _, re := range patterns {
			if re.MatchString(lower) {
				found = append(found, skill)
				break
			}
		}
	}
	sort.Strings(found)

	return types.SkillInsight{
		SkillsFound: found,
		SkillCount:  len(found),
	}
}

// FromContext extracts skills from the raw text plus the parsed
// requirement and responsibility bullets, which often carry the
// technology names in their most explicit form.
func FromContext(jd *types.Context) types.SkillInsight {
	parts := []string{jd.RawText}
	parts = append(parts, jd.Requirements...)
	parts = append(parts, jd.Responsibilities...)
	return Extract(strings.Join(parts, " "))
}

func buildAliasPatterns() map[string][]*regexp.Regexp {
	out := make(map[string][]*regexp.Regexp, len(skillAliases))
	for skill, aliases := range skillAliases {
		patterns := make([]*regexp.Regexp, 0, len(aliases))
		for _, alias := range aliases {
			patterns = append(patterns, regexp.MustCompile(aliasPattern(alias)))
		}
		out[skill] = patterns
	}
	return out
}

// aliasPattern builds a whole-token pattern for an alias. Plain \b
// anchors break on aliases ending in symbols like "c++" or "c#", so
// the boundary is chosen per edge: a word boundary next to word
// characters, an explicit non-token guard otherwise.
func aliasPattern(alias string) string {
	quoted := regexp.QuoteMeta(alias)

	prefix := `\b`
	if !isWordChar(rune(alias[0])) {
		prefix = `(?:^|[^\w])`
	}
	suffix := `\b`
	if !isWordChar(rune(alias[len(alias)-1])) {
		suffix = `(?:[^\w+#]|$)`
	}
	return prefix + quoted + suffix
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
