// Package todo handles TODO annotations embedded in markdown documents.
package todo

import (
	"path/filepath"
	"strconv"
)

// Todo represents one annotation of the form TODO:<text>@due(YYYY-MM-DD)
// found on a single line of a document.
type Todo struct {
	// Text is the free-form description, trimmed of surrounding whitespace.
	Text string `json:"text"`

	// Due is the captured date string, verbatim. It is shape-checked by the
	// extraction pattern but only calendar-validated at classification time.
	Due string `json:"due"`

	// File is the path of the originating document.
	File string `json:"file"`

	// Line is the 1-based line number the annotation was found on.
	Line int `json:"line"`
}

// Basename returns the file name of the originating document for display.
func (t Todo) Basename() string {
	return filepath.Base(t.File)
}

// Source returns the "<path>:<line>" origin string used in tracker
// annotations.
func (t Todo) Source() string {
	return t.File + ":" + strconv.Itoa(t.Line)
}
