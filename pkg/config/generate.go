package config

import (
	"path/filepath"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/arthur-debert/wort/pkg/brew"
	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/logging"
)

const generatedHeader = `# wort configuration
#
# Every table is a parameter set. [default] applies to every brew; other
# sets are layered on top with "wort brew -p <set>". Uncomment a value to
# change it.
#
# [big-kettle]
# r_boil = 1.5
# kettle_gap = 0.75

`

// GenerateContent renders the built-in parameters as a config file with
// every value commented out.
func GenerateContent() (string, error) {
	body, err := gotoml.Marshal(map[string]any{DefaultSet: brew.Defaults().Values()})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot render default parameters")
	}
	return generatedHeader + commentOutConfigValues(string(body)), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

// Write saves the generated file at path. An existing file is left alone
// unless force is set; the returned flag tells whether anything was
// written.
func Write(fs afero.Fs, path string, force bool) (bool, error) {
	logger := logging.GetLogger("config.generate")

	content, err := GenerateContent()
	if err != nil {
		return false, err
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", path).WithDetail("path", path)
	}
	if exists && !force {
		logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
		return false, nil
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", filepath.Dir(path))
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path).WithDetail("path", path)
	}

	logger.Info().Str("path", path).Msg("Written config file")
	return true, nil
}
