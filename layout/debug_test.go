package layout

import (
	"encoding/json"
	"testing"
)

func TestDumpJSONRoundTrips(t *testing.T) {
	bg := RGBA8(10, 20, 30, 255)
	root := &StyledNode{
		Kind: KindElement,
		Box:  Box{W: 100, H: 50},
		Children: []*StyledNode{
			{
				Kind:  KindText,
				Text:  "hello",
				Box:   Box{X: 4, Y: 8, W: 60, H: 16},
				Style: ComputedStyle{Background: &bg, Font: FontDesc{Family: "inter", Size: 12}},
			},
		},
	}

	data, err := DumpJSON(root)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}

	var back StyledNode
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal dump: %v", err)
	}
	if len(back.Children) != 1 || back.Children[0].Text != "hello" {
		t.Fatalf("dump lost the text child: %+v", back)
	}
	if back.Children[0].Style.Background == nil || *back.Children[0].Style.Background != bg {
		t.Fatalf("dump lost the background color")
	}
}

func TestDumpJSONNilTree(t *testing.T) {
	data, err := DumpJSON(nil)
	if err != nil {
		t.Fatalf("dump nil: %v", err)
	}
	if string(data) != "null" {
		t.Fatalf("nil tree must dump as null, got %q", data)
	}
}
