package tools

import "os/exec"

// ToolRequirement represents an external tool dependency
type ToolRequirement struct {
	Name       string // Display name
	Binary     string // Executable name
	Required   bool   // Whether the tool is required
	InstallCmd string // Availability note
	Purpose    string // One-line description
}

// CheckResult represents the result of checking a single tool
type CheckResult struct {
	Tool  ToolRequirement
	Found bool
	Path  string
}

// DefaultTools returns the list of external tools used by wlankeys
func DefaultTools() []ToolRequirement {
	return []ToolRequirement{
		{
			Name:       "netsh",
			Binary:     "netsh",
			Required:   true,
			InstallCmd: "ships with Windows (run from a Windows host)",
			Purpose:    "Wireless profile enumeration and key retrieval",
		},
	}
}

// CheckTools checks all tools in the provided list
func CheckTools(tools []ToolRequirement) []CheckResult {
	results := make([]CheckResult, len(tools))
	for i, tool := range tools {
		results[i] = CheckTool(tool)
	}
	return results
}

// CheckTool reports whether a single tool is available in PATH.
func CheckTool(tool ToolRequirement) CheckResult {
	result := CheckResult{Tool: tool}

	path, err := exec.LookPath(tool.Binary)
	if err != nil {
		return result
	}

	result.Found = true
	result.Path = path
	return result
}
