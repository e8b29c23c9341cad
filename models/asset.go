package models

// AssetUsage is an asset listing entry annotated with whether the current
// project source references it.
type AssetUsage struct {
	Filename string `json:"filename"`
	InUse    bool   `json:"inUse"`
}

// ImportedProject is the result of unpacking an uploaded archive. Assets are
// filenames now available in the shared upload area.
type ImportedProject struct {
	HTML   string   `json:"html"`
	CSS    string   `json:"css"`
	JS     string   `json:"js"`
	Assets []string `json:"assets"`
}
