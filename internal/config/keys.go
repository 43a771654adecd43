package config

// Configuration key constants, matching the YAML field names
const (
	// Hugo site layout
	KeySiteDir    = "site_dir"
	KeyBuildDir   = "build_dir"
	KeyContentDir = "content_dir"

	// Hugo executable
	KeyHugoBinary     = "hugo_binary"
	KeyMinHugoVersion = "min_hugo_version"

	// Output inspection
	KeyMarkupExt = "markup_ext"
	KeyClean     = "clean"

	// Diagnostics
	KeyLogLevel = "log_level"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeySiteDir:        "tests",
	KeyBuildDir:       "public",
	KeyContentDir:     "test-cases",
	KeyHugoBinary:     "hugo",
	KeyMinHugoVersion: "0.140.0",
	KeyMarkupExt:      ".html",
	KeyClean:          "true",
	KeyLogLevel:       "info",
}
