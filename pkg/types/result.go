// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "encoding/json"

// RenderResult is the structured outcome of one render, printed as a single
// JSON object on stdout. On success it carries the output location and basic
// metadata; on failure only the error message. The process exit status
// mirrors Success.
type RenderResult struct {
	Success    bool   `json:"success" yaml:"success"`
	OutputPath string `json:"output_path" yaml:"output_path"`
	FileSize   int64  `json:"file_size" yaml:"file_size"`
	PageCount  int    `json:"page_count" yaml:"page_count"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// MarshalJSON keeps the metadata fields of a success record present even at
// their zero values, and strips them from failure records, which carry only
// the error message.
func (r RenderResult) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{r.Success, r.Error})
	}
	return json.Marshal(struct {
		Success    bool   `json:"success"`
		OutputPath string `json:"output_path"`
		FileSize   int64  `json:"file_size"`
		PageCount  int    `json:"page_count"`
	}{r.Success, r.OutputPath, r.FileSize, r.PageCount})
}

// Failure builds a failed RenderResult from an error.
func Failure(err error) RenderResult {
	return RenderResult{Success: false, Error: err.Error()}
}
