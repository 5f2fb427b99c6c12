package keymap

import (
	"errors"
	"testing"

	"github.com/crestui/crest/internal/input/key"
)

func TestBindKeysRejectsMalformedIndividually(t *testing.T) {
	table := NewTable()

	err := table.BindKeys([]Binding{
		{Keys: "ctrl-g", Action: "a.one"},
		{Keys: "bogus-key-name", Action: "a.bad"},
		{Keys: "cmd-s", Action: "a.two"},
	})

	if err == nil {
		t.Fatal("BindKeys with malformed binding returned nil error")
	}
	var malformed *MalformedBindingError
	if !errors.As(err, &malformed) {
		t.Fatalf("error %v does not wrap MalformedBindingError", err)
	}
	if malformed.Keys != "bogus-key-name" {
		t.Errorf("MalformedBindingError.Keys = %q", malformed.Keys)
	}

	// The valid siblings still installed.
	if table.Len() != 2 {
		t.Errorf("table Len = %d, want 2", table.Len())
	}
}

func TestMatchUnscoped(t *testing.T) {
	table := NewTable()
	if err := table.BindKeys([]Binding{{Keys: "ctrl-g", Action: "a.global"}}); err != nil {
		t.Fatalf("BindKeys: %v", err)
	}

	snap := table.Snapshot()
	m, ok := snap.Match(key.MustParseKeystroke("ctrl-g"), []string{"nested", "parent"})
	if !ok {
		t.Fatal("unscoped binding did not match")
	}
	if m.Binding.Action != "a.global" {
		t.Errorf("matched action = %q", m.Binding.Action)
	}
	if m.Depth != 2 {
		t.Errorf("unscoped match depth = %d, want len(contexts)", m.Depth)
	}

	if _, ok := snap.Match(key.MustParseKeystroke("g"), nil); ok {
		t.Error("bare g matched a ctrl-g binding")
	}
}

func TestMatchContextScoped(t *testing.T) {
	table := NewTable()
	err := table.BindKeys([]Binding{
		{Keys: "ctrl-g", Action: "a.parent", Context: "parent"},
		{Keys: "ctrl-g", Action: "a.elsewhere", Context: "sidebar"},
	})
	if err != nil {
		t.Fatalf("BindKeys: %v", err)
	}
	snap := table.Snapshot()
	ks := key.MustParseKeystroke("ctrl-g")

	m, ok := snap.Match(ks, []string{"nested", "parent"})
	if !ok || m.Binding.Action != "a.parent" {
		t.Fatalf("match = %+v, %v; want a.parent", m, ok)
	}
	if m.Depth != 1 {
		t.Errorf("depth = %d, want 1 (parent is second innermost)", m.Depth)
	}

	if _, ok := snap.Match(ks, []string{"statusbar"}); ok {
		t.Error("binding matched outside its context")
	}
}

func TestMatchInnermostContextWins(t *testing.T) {
	table := NewTable()
	err := table.BindKeys([]Binding{
		{Keys: "ctrl-g", Action: "a.outer", Context: "parent"},
		{Keys: "ctrl-g", Action: "a.inner", Context: "nested"},
		{Keys: "ctrl-g", Action: "a.anywhere"},
	})
	if err != nil {
		t.Fatalf("BindKeys: %v", err)
	}

	m, ok := table.Snapshot().Match(key.MustParseKeystroke("ctrl-g"), []string{"nested", "parent"})
	if !ok || m.Binding.Action != "a.inner" {
		t.Fatalf("match = %+v, %v; want innermost a.inner", m, ok)
	}
}

func TestMatchLaterRegistrationWinsTies(t *testing.T) {
	table := NewTable()
	if err := table.BindKeys([]Binding{{Keys: "ctrl-g", Action: "a.first", Context: "parent"}}); err != nil {
		t.Fatalf("BindKeys: %v", err)
	}
	if err := table.BindKeys([]Binding{{Keys: "ctrl-g", Action: "a.second", Context: "parent"}}); err != nil {
		t.Fatalf("BindKeys: %v", err)
	}

	m, ok := table.Snapshot().Match(key.MustParseKeystroke("ctrl-g"), []string{"parent"})
	if !ok || m.Binding.Action != "a.second" {
		t.Fatalf("match = %+v, %v; want later registration a.second", m, ok)
	}
}

func TestSnapshotIsolatedFromRebinds(t *testing.T) {
	table := NewTable()
	if err := table.BindKeys([]Binding{{Keys: "ctrl-g", Action: "a.old"}}); err != nil {
		t.Fatalf("BindKeys: %v", err)
	}

	snap := table.Snapshot()
	if err := table.ReplaceAll([]Binding{{Keys: "ctrl-g", Action: "a.new"}}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	m, ok := snap.Match(key.MustParseKeystroke("ctrl-g"), nil)
	if !ok || m.Binding.Action != "a.old" {
		t.Errorf("snapshot saw rebind: match = %+v, %v", m, ok)
	}

	m, ok = table.Snapshot().Match(key.MustParseKeystroke("ctrl-g"), nil)
	if !ok || m.Binding.Action != "a.new" {
		t.Errorf("fresh snapshot match = %+v, %v; want a.new", m, ok)
	}
}

func TestReplaceAllKeepsTieOrderAcrossReloads(t *testing.T) {
	table := NewTable()
	if err := table.ReplaceAll([]Binding{
		{Keys: "ctrl-g", Action: "a.one", Context: "parent"},
		{Keys: "ctrl-g", Action: "a.two", Context: "parent"},
	}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	m, ok := table.Snapshot().Match(key.MustParseKeystroke("ctrl-g"), []string{"parent"})
	if !ok || m.Binding.Action != "a.two" {
		t.Fatalf("match = %+v, %v; want file-order-later a.two", m, ok)
	}
}
