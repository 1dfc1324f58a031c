package types

// MemoryType tags the origin of a derived-insight record
type MemoryType string

const (
	MemoryTypeWeeklySummary  MemoryType = "weekly_summary"
	MemoryTypeAnalysisResult MemoryType = "analysis_result"
)

// IsValid checks if the memory type is valid
func (t MemoryType) IsValid() bool {
	switch t {
	case MemoryTypeWeeklySummary, MemoryTypeAnalysisResult:
		return true
	default:
		return false
	}
}

// String returns the string representation of the memory type
func (t MemoryType) String() string {
	return string(t)
}
