package models

import "time"

// Project is a saved playground document. ID is assigned on first save and
// never changes afterwards.
type Project struct {
	ID        string    `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	HTML      string    `json:"html" db:"html" gorm:"type:text;not null;default:''"`
	CSS       string    `json:"css" db:"css" gorm:"type:text;not null;default:''"`
	JS        string    `json:"js" db:"js" gorm:"type:text;not null;default:''"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// Source holds the three editable blobs of a project.
type Source struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

// Source returns the editable part of the project.
func (p Project) Source() Source {
	return Source{HTML: p.HTML, CSS: p.CSS, JS: p.JS}
}
