package model

// Slot is a printable view of a saved memory slot.
type Slot struct {
	Index int    `json:"index" yaml:"index"`
	Label string `json:"label" yaml:"label"`
	Notes Notes  `json:"notes" yaml:"notes"`
}

// State is a printable view of a session's selection state.
type State struct {
	SessionId   string   `json:"session_id" yaml:"session_id"`
	Root        string   `json:"root" yaml:"root"`
	Mode        string   `json:"mode" yaml:"mode"`
	Octave      int      `json:"octave" yaml:"octave"`
	Inversion   int      `json:"inversion" yaml:"inversion"`
	Bass        string   `json:"bass" yaml:"bass"`
	UseFlats    bool     `json:"use_flats" yaml:"use_flats"`
	Instrument  string   `json:"instrument" yaml:"instrument"`
	Loading     bool     `json:"loading" yaml:"loading"`
	LastPressed string   `json:"last_pressed,omitempty" yaml:"last_pressed,omitempty"`
	ScaleNotes  []string `json:"scale_notes" yaml:"scale_notes"`
	Slots       []Slot   `json:"slots" yaml:"slots"`
}
