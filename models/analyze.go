package models

import "saleslens/backend/analytics"

// FileMeta describes how one uploaded file was interpreted.
type FileMeta struct {
	FileName      string            `json:"file_name"`
	Rows          int               `json:"rows"`
	DetectedRoles map[string]string `json:"detected_columns"`
	AmountSource  string            `json:"amount_source"`
	LowConfidence bool              `json:"low_confidence"`
}

// AnalyzeResponse is the full upload-analyze payload: merged metrics plus
// per-file interpretation metadata.
type AnalyzeResponse struct {
	Metrics analytics.DashboardMetrics `json:"metrics"`
	Files   []FileMeta                 `json:"files"`
}

// NormalizeResponse returns only the normalization result for callers that
// re-derive metrics themselves.
type NormalizeResponse struct {
	Meta    FileMeta            `json:"meta"`
	Columns []string            `json:"columns"`
	Records []map[string]string `json:"records"`
}
