package main

// CLIResult is the JSON envelope written for every command.
type CLIResult struct {
	Command string             `json:"command"`
	Shape   string             `json:"shape,omitempty"`
	Params  map[string]float64 `json:"params,omitempty"`
	Area    *float64           `json:"area,omitempty"`
	Right   *bool              `json:"right,omitempty"`
	Error   string             `json:"error,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}
