// pkg/detect/detect.go - discovers game install paths for the front-end to prefill.

package detect

// Detection is one discovered game installation.
type Detection struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}
