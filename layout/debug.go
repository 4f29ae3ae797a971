package layout

import (
	"encoding/json"
	"os"
)

// DumpJSON renders a styled tree as indented JSON, for debugging or
// visualization of what the upstream stages handed to the renderer.
func DumpJSON(root *StyledNode) ([]byte, error) {
	if root == nil {
		return []byte("null"), nil
	}
	return json.MarshalIndent(root, "", "  ")
}

// WriteDebugJSON dumps a styled tree to a file.
func WriteDebugJSON(root *StyledNode, path string) error {
	data, err := DumpJSON(root)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
