package generate

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(
	template.New("generate").
		Funcs(template.FuncMap{
			"join": strings.Join,
		}).
		ParseFS(templatesFS, "templates/*.tmpl"),
)

type structureData struct {
	Name   string
	Fields []fieldData
}

type fieldData struct {
	Name     string
	TypeName string
}

type definitionsData struct {
	Name       string
	Members    []memberData
	Structures []string
}

type memberData struct {
	Name       string
	Parameters []string
	Returns    string
}
