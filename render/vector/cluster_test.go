package vector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ByLCY/inkwell/fonts"
)

func g(gid uint16, cluster int) fonts.Glyph {
	return fonts.Glyph{GID: gid, Cluster: cluster, XAdvance: 10}
}

// TestClustersOneToOne: the trivial case where every rune shaped into its
// own glyph.
func TestClustersOneToOne(t *testing.T) {
	run := "abc"
	clusters := Clusters(run, []fonts.Glyph{g(1, 0), g(2, 1), g(3, 2)})

	want := []Cluster{
		{Start: 0, End: 1, Text: "a"},
		{Start: 1, End: 2, Text: "b"},
		{Start: 2, End: 3, Text: "c"},
	}
	if diff := cmp.Diff(want, clusters, cmpopts.IgnoreFields(Cluster{}, "Glyphs")); diff != "" {
		t.Fatalf("clusters mismatch (-want +got):\n%s", diff)
	}
	if got := Reconstruct(clusters); got != run {
		t.Fatalf("reconstruction broke: %q", got)
	}
}

// TestClustersLigature: a ligature collapses several source runes into one
// glyph; its cluster must span all of them so extracted text stays intact.
func TestClustersLigature(t *testing.T) {
	run := "efficient"
	// "ffi" shaped into a single ligature glyph at cluster 1.
	glyphs := []fonts.Glyph{
		g(10, 0),           // e
		g(11, 1),           // ffi ligature
		g(12, 4), g(13, 5), // c i
		g(14, 6), g(15, 7), g(16, 8), // e n t
	}

	clusters := Clusters(run, glyphs)
	if len(clusters) != 7 {
		t.Fatalf("expected 7 clusters, got %d", len(clusters))
	}
	if clusters[1].Text != "ffi" {
		t.Fatalf("ligature cluster must span its source runes, got %q", clusters[1].Text)
	}
	if len(clusters[1].Glyphs) != 1 {
		t.Fatalf("ligature cluster must hold one glyph, got %d", len(clusters[1].Glyphs))
	}
	if got := Reconstruct(clusters); got != run {
		t.Fatalf("reconstruction broke: %q", got)
	}
}

// TestClustersDecomposition: one rune may expand into multiple glyphs that
// share a cluster.
func TestClustersDecomposition(t *testing.T) {
	run := "xé"
	glyphs := []fonts.Glyph{
		g(1, 0),
		g(2, 1), g(3, 1), // base + combining mark glyphs for é
	}

	clusters := Clusters(run, glyphs)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if len(clusters[1].Glyphs) != 2 {
		t.Fatalf("decomposed cluster must hold both glyphs, got %d", len(clusters[1].Glyphs))
	}
	if got := Reconstruct(clusters); got != run {
		t.Fatalf("reconstruction broke: %q", got)
	}
}

func TestClustersEmptyShaping(t *testing.T) {
	run := "text"
	clusters := Clusters(run, nil)
	if len(clusters) != 1 || clusters[0].Text != run {
		t.Fatalf("glyphless run must keep its text in one cluster: %+v", clusters)
	}
}

func TestClustersEmptyRun(t *testing.T) {
	if got := Clusters("", nil); got != nil {
		t.Fatalf("empty run must produce no clusters, got %+v", got)
	}
}
