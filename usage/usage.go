// Package usage determines which asset files a project's source references.
//
// Detection is syntactic: any occurrence of "assets/<name>" counts, including
// references inside comments or dead code. The html, css and js sources are
// scanned one at a time rather than as one joined text, so a reference cannot
// start in one source and end in the next.
package usage

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/rpupo63/playground-backend/models"
)

// Prefix is the path convention source text uses to reference an asset.
const Prefix = "assets/"

var (
	referencePattern = regexp.MustCompile(`assets/[^\s"'()]+`)
	quotedPattern    = regexp.MustCompile(`(["'(])assets/([^"'() ]+)`)
)

// Set is a set of case-folded asset filenames.
type Set map[string]struct{}

// UsedAssets returns the case-folded filenames referenced by any of the
// three sources. Each source is scanned on its own so a reference never
// spans two blobs.
func UsedAssets(html, css, js string) Set {
	used := Set{}
	for _, src := range [...]string{html, css, js} {
		for _, match := range referencePattern.FindAllString(src, -1) {
			used[Fold(strings.TrimPrefix(match, Prefix))] = struct{}{}
		}
	}
	return used
}

// ForSource is UsedAssets over a models.Source.
func ForSource(src models.Source) Set {
	return UsedAssets(src.HTML, src.CSS, src.JS)
}

// Fold is the case folding applied to every referenced filename.
func Fold(filename string) string {
	return strings.ToLower(filename)
}

// Has reports whether filename is referenced, ignoring case.
func (s Set) Has(filename string) bool {
	_, ok := s[Fold(filename)]
	return ok
}

// Sorted returns the set members in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Annotate marks each listed filename with whether src references it.
// Listing order is preserved.
func Annotate(filenames []string, src models.Source) []models.AssetUsage {
	used := ForSource(src)
	out := make([]models.AssetUsage, 0, len(filenames))
	for _, name := range filenames {
		out = append(out, models.AssetUsage{Filename: name, InUse: used.Has(name)})
	}
	return out
}

// PrefixAssetPaths rewrites quoted or url(...) references such as
// "assets/logo.png" to "/assets/<projectID>/logo.png" so a live preview can
// load them from the project's scope.
func PrefixAssetPaths(src, projectID string) string {
	scope := "/assets/" + url.PathEscape(projectID) + "/"
	return quotedPattern.ReplaceAllString(src, "${1}"+strings.ReplaceAll(scope, "$", "$$")+"${2}")
}
