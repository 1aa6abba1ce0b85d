package monitor

import (
	"testing"

	"github.com/skillsenselab/radiowatch/broadcastify"
)

func TestDirectory_LabelFallback(t *testing.T) {
	d := NewDirectory()
	d.Put("100-22361", "Police Dispatch")

	if got := d.Label("100-22361"); got != "Police Dispatch" {
		t.Errorf("unexpected label: %s", got)
	}
	if got := d.Label("999-1"); got != "Channel 999-1" {
		t.Errorf("unexpected fallback label: %s", got)
	}
}

func TestDirectory_MergeGroups(t *testing.T) {
	d := NewDirectory()
	d.Merge([]broadcastify.Group{
		{ID: "100", Description: "Police"},
		{ID: "200", Description: "Fire"},
	})

	if d.Len() != 2 {
		t.Fatalf("expected 2 labels, got %d", d.Len())
	}
	if got := d.Label("200"); got != "Fire" {
		t.Errorf("unexpected label: %s", got)
	}
}

func TestChannelSet_SetAddRemove(t *testing.T) {
	cs := NewChannelSet("b", "a", " a ", "")
	refs := cs.Refs()
	if len(refs) != 2 || refs[0] != "a" || refs[1] != "b" {
		t.Fatalf("unexpected refs: %v", refs)
	}

	cs.Add("c")
	cs.Remove("a")
	refs = cs.Refs()
	if len(refs) != 2 || refs[0] != "b" || refs[1] != "c" {
		t.Fatalf("unexpected refs after add/remove: %v", refs)
	}

	cs.Set([]string{"x"})
	if cs.Len() != 1 || cs.Refs()[0] != "x" {
		t.Errorf("Set must replace the subscription, got %v", cs.Refs())
	}
}
