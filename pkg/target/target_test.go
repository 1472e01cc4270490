package target

import "testing"

func TestSelectedPredicate(t *testing.T) {
	tests := []struct {
		name    string
		checked bool
		path    string
		want    bool
	}{
		{"checked with path", true, `C:\Games\Skyrim`, true},
		{"checked without path", true, "", false},
		{"unchecked with path", false, `C:\Games\Skyrim`, false},
		{"unchecked without path", false, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tgt := Target{Name: "Skyrim", Checked: tc.checked, Path: tc.path}
			if got := tgt.Selected(); got != tc.want {
				t.Errorf("Selected() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDefaultsEnumeration(t *testing.T) {
	defs := Defaults()
	if len(defs) != 14 {
		t.Fatalf("Defaults() returned %d targets, want 14", len(defs))
	}

	wantOrder := []string{
		"Oblivion", "Nehrim", "Skyrim", "Fallout4", "Fallout4VR",
		"SkyrimSE", "SkyrimSE_GOG", "SkyrimVR", "Fallout3", "FalloutNV",
		"Enderal", "EnderalSE", "Extra1", "Extra2",
	}
	for i, name := range wantOrder {
		if defs[i].Name != name {
			t.Errorf("Defaults()[%d].Name = %q, want %q", i, defs[i].Name, name)
		}
	}

	for _, d := range defs {
		if d.Checked || d.Path != "" {
			t.Errorf("default target %s must start unchecked and pathless", d.Name)
		}
		if d.Label == "" {
			t.Errorf("default target %s has no label", d.Name)
		}
	}
}

func TestDefaultsExtraSlotsHaveNoRegistryPresence(t *testing.T) {
	for _, d := range Defaults() {
		extra := d.Name == "Extra1" || d.Name == "Extra2"
		hasKey := d.RegistrySubkey != ""
		if extra && hasKey {
			t.Errorf("extra slot %s should not carry a registry subkey", d.Name)
		}
		if !extra && !hasKey {
			t.Errorf("game target %s is missing its registry subkey", d.Name)
		}
	}
}

func TestDefaultsReturnsFreshSlice(t *testing.T) {
	a := Defaults()
	a[0].Checked = true
	a[0].Path = `C:\Games\Oblivion`
	b := Defaults()
	if b[0].Checked || b[0].Path != "" {
		t.Error("Defaults() shares state between calls")
	}
}

func TestSelectedFilterPreservesOrder(t *testing.T) {
	targets := Defaults()
	targets[ByName(targets, "Skyrim")].Checked = true
	targets[ByName(targets, "Skyrim")].Path = `C:\Games\Skyrim`
	targets[ByName(targets, "Oblivion")].Checked = true
	targets[ByName(targets, "Oblivion")].Path = `C:\Games\Oblivion`
	// Checked but no path: must be filtered out.
	targets[ByName(targets, "Fallout3")].Checked = true

	sel := Selected(targets)
	if len(sel) != 2 {
		t.Fatalf("Selected() returned %d targets, want 2", len(sel))
	}
	if sel[0].Name != "Oblivion" || sel[1].Name != "Skyrim" {
		t.Errorf("Selected() order = [%s %s], want [Oblivion Skyrim]", sel[0].Name, sel[1].Name)
	}
}

func TestByName(t *testing.T) {
	targets := Defaults()
	if i := ByName(targets, "EnderalSE"); i == -1 || targets[i].Name != "EnderalSE" {
		t.Errorf("ByName(EnderalSE) = %d", i)
	}
	if i := ByName(targets, "Morrowind"); i != -1 {
		t.Errorf("ByName(Morrowind) = %d, want -1", i)
	}
}
