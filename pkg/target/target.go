// pkg/target/target.go - the fixed table of supported game installations.

package target

// Target represents one supported game/installation variant the user may
// choose to install the Wrye Bash payload into.
type Target struct {
	// Name is the stable identifier used in config files and registry
	// policy values, e.g. "SkyrimSE".
	Name string `yaml:"name"`

	// Label is the human-readable game name used in logs and in the
	// Start Menu shortcut title ("Wrye Bash - <Label>").
	Label string `yaml:"label"`

	// Checked reports whether the user ticked this target for install.
	Checked bool `yaml:"checked"`

	// Path is the absolute game directory chosen by the user. Empty
	// means skip, regardless of Checked.
	Path string `yaml:"path"`

	// RegistrySubkey and RegistryValue locate the vendor's install-path
	// registry value used by detection. Empty for the Extra slots, which
	// have no vendor registry presence.
	RegistrySubkey string `yaml:"-"`
	RegistryValue  string `yaml:"-"`
}

// Selected reports whether this target should be acted upon: the user
// checked it and supplied a non-empty path.
func (t Target) Selected() bool {
	return t.Checked && t.Path != ""
}

const bethesdaKey = `SOFTWARE\WOW6432Node\Bethesda Softworks\`

// Defaults returns the fixed enumeration of supported targets, in the
// order install and shortcut passes walk them. Callers get a fresh slice
// and may fill in Checked/Path freely.
func Defaults() []Target {
	return []Target{
		{Name: "Oblivion", Label: "Oblivion", RegistrySubkey: bethesdaKey + "Oblivion", RegistryValue: "Installed Path"},
		{Name: "Nehrim", Label: "Nehrim", RegistrySubkey: `SOFTWARE\WOW6432Node\SureAI\Nehrim`, RegistryValue: "Installed Path"},
		{Name: "Skyrim", Label: "Skyrim", RegistrySubkey: bethesdaKey + "Skyrim", RegistryValue: "Installed Path"},
		{Name: "Fallout4", Label: "Fallout 4", RegistrySubkey: bethesdaKey + "Fallout4", RegistryValue: "Installed Path"},
		{Name: "Fallout4VR", Label: "Fallout 4 VR", RegistrySubkey: bethesdaKey + "Fallout 4 VR", RegistryValue: "Installed Path"},
		{Name: "SkyrimSE", Label: "Skyrim Special Edition", RegistrySubkey: bethesdaKey + "Skyrim Special Edition", RegistryValue: "Installed Path"},
		{Name: "SkyrimSE_GOG", Label: "Skyrim Special Edition GOG", RegistrySubkey: `SOFTWARE\WOW6432Node\GOG.com\Games\1711230643`, RegistryValue: "path"},
		{Name: "SkyrimVR", Label: "Skyrim VR", RegistrySubkey: bethesdaKey + "Skyrim VR", RegistryValue: "Installed Path"},
		{Name: "Fallout3", Label: "Fallout 3", RegistrySubkey: bethesdaKey + "Fallout3", RegistryValue: "Installed Path"},
		{Name: "FalloutNV", Label: "Fallout New Vegas", RegistrySubkey: bethesdaKey + "FalloutNV", RegistryValue: "Installed Path"},
		{Name: "Enderal", Label: "Enderal", RegistrySubkey: `SOFTWARE\WOW6432Node\SureAI\Enderal`, RegistryValue: "Installed Path"},
		{Name: "EnderalSE", Label: "Enderal Special Edition", RegistrySubkey: `SOFTWARE\WOW6432Node\SureAI\EnderalSE`, RegistryValue: "Installed Path"},
		{Name: "Extra1", Label: "Extra 1"},
		{Name: "Extra2", Label: "Extra 2"},
	}
}

// Selected filters a target list down to the entries that will be acted
// upon, preserving enumeration order.
func Selected(targets []Target) []Target {
	var out []Target
	for _, t := range targets {
		if t.Selected() {
			out = append(out, t)
		}
	}
	return out
}

// ByName returns the index of the named target in the list, or -1.
func ByName(targets []Target, name string) int {
	for i, t := range targets {
		if t.Name == name {
			return i
		}
	}
	return -1
}
