package template

import (
	_ "embed"

	"github.com/aalvaropc/cfgjs/internal/domain"
)

//go:embed config.js.tmpl
var configTemplate string

// Header notices for the generated file.
const (
	NoticeFromDefinitions = "Auto-generated from .env - DO NOT COMMIT"
	NoticeBuild           = "Auto-generated during build - DO NOT EDIT"
)

// RenderConfig renders the config.js script for keys. Values are inserted
// between single quotes as-is.
func RenderConfig(keys domain.ConfigKeys, notice string) ([]byte, error) {
	vars := map[string]string{"NOTICE": notice}
	for _, k := range domain.RecognizedKeys {
		vars[k] = keys[k]
	}

	out, err := RenderString(configTemplate, vars)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
