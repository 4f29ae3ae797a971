package vector

import (
	"github.com/ByLCY/inkwell/fonts"
)

// Cluster groups consecutive source runes with the glyph(s) the shaping
// engine produced for them. A ligature maps several runes to one glyph;
// decomposition maps one rune to several glyphs. Concatenating the Text of
// all clusters in order reproduces the source run exactly, which is what
// keeps extracted text faithful even when the glyph stream has a different
// length than the rune count.
type Cluster struct {
	Start  int // rune index of the first source rune, inclusive
	End    int // rune index past the last source rune
	Text   string
	Glyphs []fonts.Glyph
}

// Clusters groups a shaped run into clusters following the shaping
// engine's cluster indices. Runs are shaped left to right, so cluster
// indices are non-decreasing in glyph order.
func Clusters(run string, glyphs []fonts.Glyph) []Cluster {
	runes := []rune(run)
	if len(runes) == 0 {
		return nil
	}
	if len(glyphs) == 0 {
		// No shaping output: a single glyphless cluster keeps the text.
		return []Cluster{{Start: 0, End: len(runes), Text: run}}
	}

	var clusters []Cluster
	start := 0
	for i := 1; i <= len(glyphs); i++ {
		if i < len(glyphs) && glyphs[i].Cluster == glyphs[start].Cluster {
			continue
		}
		clusters = append(clusters, Cluster{
			Start:  glyphs[start].Cluster,
			Glyphs: glyphs[start:i:i],
		})
		start = i
	}

	// Each cluster extends to the start of the next one; the final cluster
	// runs to the end of the run.
	for i := range clusters {
		end := len(runes)
		if i+1 < len(clusters) {
			end = clusters[i+1].Start
		}
		clusters[i].End = end
		if clusters[i].Start < 0 || clusters[i].Start > end || end > len(runes) {
			// Defect in shaping output; keep reconstruction intact by
			// collapsing to one whole-run cluster.
			return []Cluster{{Start: 0, End: len(runes), Text: run, Glyphs: glyphs}}
		}
		clusters[i].Text = string(runes[clusters[i].Start:end])
	}
	return clusters
}

// Reconstruct concatenates the source text of all clusters in order.
func Reconstruct(clusters []Cluster) string {
	var out []byte
	for _, c := range clusters {
		out = append(out, c.Text...)
	}
	return string(out)
}
