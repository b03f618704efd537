package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseStylesheet loads a stylesheet from disk, picking the syntax from the file
// extension (.yaml, .yml or .hcl), validates it, and returns the resulting model.
func ParseStylesheet(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classyerrors.NewParseError(path, 0, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(path, data)
	case ".hcl":
		return ParseHCL(path, data)
	default:
		return nil, classyerrors.NewParseError(path, 0, fmt.Errorf("unsupported stylesheet extension %q", ext))
	}
}

// ParseYAML decodes and validates a YAML stylesheet. path is only used in errors.
func ParseYAML(path string, data []byte) (*Stylesheet, error) {
	var sheet Stylesheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, classyerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateStylesheet(&sheet); err != nil {
		return nil, err
	}

	return &sheet, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
