// Package archive packs a project and the assets it references into a zip
// and unpacks uploaded zips back into source text and asset files.
//
// Export layout:
//
//	index.html        html body inside a minimal document
//	style.css         css verbatim
//	script.js         js verbatim
//	assets/<name>     every stored asset the source references
package archive

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Member names of the export layout.
const (
	IndexMember  = "index.html"
	StyleMember  = "style.css"
	ScriptMember = "script.js"
	AssetsDir    = "assets/"
)

// MaxMemberBytes bounds the decompressed size of a single imported member.
const MaxMemberBytes = 64 << 20

const (
	wrapperHead = `<!doctype html><html><head><meta charset="utf-8">` +
		`<link rel="stylesheet" href="` + StyleMember + `">` +
		`<script src="` + ScriptMember + `" defer></script></head><body>`
	wrapperTail = `</body></html>`
)

// AssetSource resolves the stored assets of a project during export.
type AssetSource interface {
	List(ctx context.Context, projectID string) ([]string, error)
	Read(ctx context.Context, projectID, filename string) ([]byte, error)
}

// AssetSink receives asset members extracted during import.
type AssetSink interface {
	Put(ctx context.Context, filename string, data []byte) error
}

type Codec struct {
	logger zerolog.Logger
}

func NewCodec(logger zerolog.Logger) Codec {
	return Codec{logger: logger.With().Str("component", "archive").Logger()}
}

// WrapHTML embeds an html fragment in the document written as index.html.
func WrapHTML(body string) string {
	return wrapperHead + body + wrapperTail
}

// UnwrapHTML reverses WrapHTML. Documents that were not produced by WrapHTML
// are returned unchanged.
func UnwrapHTML(doc string) string {
	if strings.HasPrefix(doc, wrapperHead) && strings.HasSuffix(doc, wrapperTail) &&
		len(doc) >= len(wrapperHead)+len(wrapperTail) {
		return doc[len(wrapperHead) : len(doc)-len(wrapperTail)]
	}
	return doc
}
