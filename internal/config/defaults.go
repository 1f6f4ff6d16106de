package config

const (
	// DefaultSpecDir is the subdirectory under the project root that holds spec files.
	DefaultSpecDir = "spec"
	// DefaultSpecSuffix is the file name suffix identifying a spec file.
	DefaultSpecSuffix = "_spec.sh"
	// DefaultTimingsKey is the JSON key holding the timing table.
	DefaultTimingsKey = "timings"
	// DefaultWeight is assigned to files that cannot be statically analysed.
	DefaultWeight = 100
	// DefaultBlockBonus is added to a file's weight per test block.
	DefaultBlockBonus = 10
	// DefaultConfigFile is looked up under the project root when --config is not given.
	DefaultConfigFile = ".specsplit.yml"
	// EnvPrefix prefixes all environment variables read by the tool.
	EnvPrefix = "SPECSPLIT_"
)

// DefaultBlockKeywords are the block-opening keywords counted by the static
// weight estimator. A line counts when its trimmed content starts with one of
// these followed by a space.
var DefaultBlockKeywords = []string{"It", "Describe", "Context"}
