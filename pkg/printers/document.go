package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"tableflip.dev/heatgrid/pkg/app"
)

// Document is the machine readable form of a snapshot.
type Document struct {
	Mode       string  `json:"mode" yaml:"mode"`
	Level      int     `json:"level" yaml:"level"`
	Generation uint64  `json:"generation" yaml:"generation"`
	Total      int     `json:"total" yaml:"total"`
	Buckets    []int   `json:"buckets" yaml:"buckets"`
	Months     []Month `json:"months,omitempty" yaml:"months,omitempty"`
	Rows       [][]int `json:"rows" yaml:"rows,flow"`
	Days       []Day   `json:"days,omitempty" yaml:"days,omitempty"`
}

// Month is one month header.
type Month struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Col   int    `json:"col" yaml:"col"`
	Span  int    `json:"span" yaml:"span"`
}

// Day is one dated cell.
type Day struct {
	Date      string `json:"date" yaml:"date"`
	Intensity int    `json:"intensity" yaml:"intensity"`
}

// NewDocument captures snap. Padding cells appear as zero in Rows and are
// left out of Days.
func NewDocument(snap *app.Snapshot, mode app.Mode) *Document {
	buckets := snap.Buckets()
	doc := &Document{
		Mode:       mode.String(),
		Level:      snap.Level,
		Generation: snap.Generation,
		Total:      snap.Total(),
		Buckets:    buckets[:],
		Rows:       snap.Matrix.Values(),
	}
	for _, s := range snap.Spans {
		doc.Months = append(doc.Months, Month{Key: s.Key.String(), Label: s.Label, Col: s.Col, Span: s.Span})
	}
	for _, c := range snap.Days {
		doc.Days = append(doc.Days, Day{Date: c.Day(), Intensity: c.Intensity})
	}
	return doc
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("printers: encode json: %w", err)
	}
	return nil
}

// WriteYAML writes doc as YAML.
func WriteYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("printers: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("printers: encode yaml: %w", err)
	}
	return nil
}
