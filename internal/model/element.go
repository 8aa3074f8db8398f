// Package model holds the accessibility-tree data types shared between the
// platform backends and the perception layer.
package model

// Element represents a UI element in the accessibility tree.
type Element struct {
	ID          int       `yaml:"i"           json:"i"`           // Sequential integer ID
	Role        string    `yaml:"r"           json:"r"`           // Abbreviated role code
	Title       string    `yaml:"t,omitempty" json:"t,omitempty"` // Visible label / title
	Value       string    `yaml:"v,omitempty" json:"v,omitempty"` // Current value
	Description string    `yaml:"d,omitempty" json:"d,omitempty"` // Accessibility description
	Bounds      [4]int    `yaml:"b"           json:"b"`           // [x, y, width, height]
	Focused     bool      `yaml:"f,omitempty" json:"f,omitempty"` // Has keyboard focus
	Enabled     *bool     `yaml:"e,omitempty" json:"e,omitempty"` // nil = enabled; false = disabled
	Children    []Element `yaml:"c,omitempty" json:"c,omitempty"` // Child elements
}
