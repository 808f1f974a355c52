// Package matchtemplates generates sample match import templates.
package matchtemplates

// DefaultOutputDir is the directory templates are written to by default.
const DefaultOutputDir = "public/templates"

// Options configures template generation.
type Options struct {
	// OutputDir is the directory the templates are written to.
	// It is created if missing.
	OutputDir string
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		OutputDir: DefaultOutputDir,
	}
}

func (o Options) outputDir() string {
	if o.OutputDir == "" {
		return DefaultOutputDir
	}
	return o.OutputDir
}
