package gen

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"sjr-generator/internal/build"
)

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g. "scimago.js").
	Filename string
	// Content is the rendered module source.
	Content []byte
}

// Module renders the SJR map as a JavaScript module exporting
// SCIMAGO_SJR. source names the CSV the map was generated from and only
// appears in the header comment.
func Module(sjrMap build.SJRMap, filename, source string) GeneratedFile {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Scimago SJR mapping generated from %s.\n", source)
	buf.WriteString("\n")
	buf.WriteString("export const SCIMAGO_SJR = {\n")

	// Sorted iteration to ensure deterministic output
	for _, key := range slices.Sorted(maps.Keys(sjrMap)) {
		fmt.Fprintf(&buf, "    %q: %d,\n", key, sjrMap[key])
	}

	buf.WriteString("};\n")

	return GeneratedFile{Filename: filename, Content: buf.Bytes()}
}
