package output

import (
	"github.com/dshills/playlint/internal/config"
)

// sampleConfig builds a resolved config without touching the filesystem
// beyond the given work directory.
func sampleConfig(workDir string) *config.Config {
	cfg := config.Default()
	cfg.WorkDir = workDir
	cfg.ConfigFile = ".ansible-lint"
	cfg.ExcludePaths = []string{config.NormalizePath("vendor", workDir)}
	cfg.Sources[config.KeyExcludePaths] = config.SourceFile
	cfg.Tags = []string{"yaml", "idiom"}
	cfg.Sources[config.KeyTags] = config.SourceFileCLI
	cfg.Write = config.SubsetOf("yaml", "name[casing]")
	cfg.Sources[config.KeyWriteList] = config.SourceCLI
	cfg.ExtraVars = map[string]any{"env": "prod", "count": 2}
	cfg.Lintables = []string{"site.yml", "vendor/role.yml"}
	return cfg
}
