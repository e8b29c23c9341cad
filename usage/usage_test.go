package usage

import (
	"testing"

	"github.com/rpupo63/playground-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestUsedAssets(t *testing.T) {
	tests := []struct {
		name string
		html string
		css  string
		js   string
		want []string
	}{
		{
			name: "no references",
			html: "<p>hello</p>",
			want: []string{},
		},
		{
			name: "html attribute",
			html: `<img src='assets/a.png'>`,
			want: []string{"a.png"},
		},
		{
			name: "css url and js string",
			css:  `body { background: url(assets/bg.jpg) }`,
			js:   `fetch("assets/data.json")`,
			want: []string{"bg.jpg", "data.json"},
		},
		{
			name: "case folded and deduplicated",
			html: `<img src="assets/Logo.SVG"><img src="assets/logo.svg">`,
			want: []string{"logo.svg"},
		},
		{
			name: "commented out reference still counts",
			js:   `// new Image().src = 'assets/old.gif'`,
			want: []string{"old.gif"},
		},
		{
			name: "stops at whitespace quote and paren",
			html: "assets/one.png two assets/three.png)four",
			want: []string{"one.png", "three.png"},
		},
		{
			name: "nested path kept after prefix",
			html: `<img src="assets/icons/x.png">`,
			want: []string{"icons/x.png"},
		},
		{
			name: "bare prefix is not a reference",
			html: `<a href="assets/">list</a>`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UsedAssets(tt.html, tt.css, tt.js)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestUsedAssetsOrderIndependent(t *testing.T) {
	a := UsedAssets(`x assets/a.png`, `assets/b.png`, `assets/c.png`)
	b := UsedAssets(`assets/c.png`, `x assets/a.png`, `assets/b.png`)
	assert.Equal(t, a, b)
}

func TestUsedAssetsDoesNotJoinAcrossSources(t *testing.T) {
	got := UsedAssets(`<img src=assets/a`, `b.png`, "")
	assert.Equal(t, []string{"a"}, got.Sorted())
}

func TestSetHas(t *testing.T) {
	used := UsedAssets(`<img src="assets/a.png">`, "", "")
	assert.True(t, used.Has("a.png"))
	assert.True(t, used.Has("A.PNG"))
	assert.False(t, used.Has("b.png"))
}

func TestAnnotate(t *testing.T) {
	src := models.Source{HTML: `<img src="assets/a.png">`}
	got := Annotate([]string{"b.png", "A.png"}, src)

	assert.Equal(t, []models.AssetUsage{
		{Filename: "b.png", InUse: false},
		{Filename: "A.png", InUse: true},
	}, got)
}

func TestPrefixAssetPaths(t *testing.T) {
	src := `<img src="assets/a.png"><div style='background:url(assets/b.png)'></div> assets/plain.png`
	got := PrefixAssetPaths(src, "kleiner-roter-fuchs")

	assert.Equal(t,
		`<img src="/assets/kleiner-roter-fuchs/a.png"><div style='background:url(/assets/kleiner-roter-fuchs/b.png)'></div> assets/plain.png`,
		got)
}
