// Package plugins loads palette plugins, small rule sets that recolor teams
// on the calendars. Palettes live under .crewcal/palettes as plain YAML or
// as interpreted Go files.
package plugins

import (
	"fmt"

	"github.com/crewcal/crewcal/internal/colors"
)

// ApplyPalettes discovers every palette definition under dir and prepends
// its rules to the classifier, so plugin rules win over the built-in roster
// rules. Later palettes (by path order) take precedence over earlier ones.
func ApplyPalettes(classifier *colors.Classifier, dir string) ([]PaletteDefinition, error) {
	if classifier == nil {
		return nil, nil
	}
	defs, err := loadAllDefinitionFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, nil
	}
	seen := make(map[string]string)
	applied := make([]PaletteDefinition, 0, len(defs))
	for _, file := range defs {
		def := file.Definition
		if existing, ok := seen[def.ID]; ok {
			return nil, fmt.Errorf("palette: duplicate palette id %s (%s and %s)", def.ID, existing, file.Path)
		}
		seen[def.ID] = file.Path
		classifier.Prepend(def.ClassifierRules()...)
		applied = append(applied, def)
	}
	return applied, nil
}

func loadAllDefinitionFiles(dir string) ([]DefinitionFile, error) {
	yamlDefs, err := LoadDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	goDefs, err := LoadGoDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	return append(yamlDefs, goDefs...), nil
}
