package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strconv"
	"text/template"

	"formbind/internal/analyze"
	"formbind/internal/common"
	"formbind/internal/match"
)

// DefaultHeader marks generated files for tools and reviewers.
const DefaultHeader = "// Code generated by formbind. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Header is the first line of every generated file.
	Header string
	// FileSuffix is appended to the snake_case struct name to form the file name.
	FileSuffix string
	// RuntimePath is the import path of the binding package.
	RuntimePath string
	// DebugUnformatted writes the raw template output next to the intended
	// file when formatting fails.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Header:      DefaultHeader,
		FileSuffix:  analyze.DefaultSuffix,
		RuntimePath: analyze.RuntimePkgPath,
	}
}

// Generator generates driver source from an analysis model.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	def := DefaultGeneratorConfig()
	if config.Header == "" {
		config.Header = def.Header
	}

	if config.FileSuffix == "" {
		config.FileSuffix = def.FileSuffix
	}

	if config.RuntimePath == "" {
		config.RuntimePath = def.RuntimePath
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the package the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "login_form_driver_impl.go").
	Filename string
	// Decl is the marked declaration the file was generated for.
	Decl string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns Dir joined with Filename.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate generates one file per driver in the model, in model order.
// Any failure aborts the whole round.
func (g *Generator) Generate(m *analyze.Model) ([]GeneratedFile, error) {
	if m == nil {
		return nil, nil
	}

	files := make([]GeneratedFile, 0, len(m.Drivers))
	seen := make(map[string]string)

	for i := range m.Drivers {
		d := &m.Drivers[i]

		file, err := g.GenerateDriver(d)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", d.ImplName(), err)
		}

		if prev, ok := seen[file.Path()]; ok {
			return nil, fmt.Errorf("generating %s: file %s is also generated for %s",
				d.ImplName(), file.Filename, prev)
		}

		seen[file.Path()] = d.ID.String()
		files = append(files, *file)
	}

	return files, nil
}

// GenerateDriver renders the driver for a single model.
func (g *Generator) GenerateDriver(d *analyze.DriverModel) (*GeneratedFile, error) {
	data := g.buildTemplateData(d)

	file := &GeneratedFile{
		Dir:      d.Dir,
		Filename: g.filename(d),
		Decl:     d.ID.String(),
	}

	var buf bytes.Buffer
	if err := driverTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(file.Dir, file.Filename, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	return file, nil
}

func (g *Generator) filename(d *analyze.DriverModel) string {
	return match.SnakeCase(d.ID.Name) + g.config.FileSuffix
}

// templateData holds all data needed for the driver template.
type templateData struct {
	Header      string
	PackageName string
	Import      importSpec
	Runtime     string
	TypeName    string
	ImplName    string
	ClearOnBlur bool
	Fields      []fieldData
}

// importSpec is one import line.
type importSpec struct {
	Alias string
	Path  string
}

// fieldData is one wrapper inserted by Initialize.
type fieldData struct {
	ID   string // quoted Go string literal
	Expr string // provider selector, with & when the pointer implements FormElement
}

func (g *Generator) buildTemplateData(d *analyze.DriverModel) *templateData {
	runtime := d.RuntimeName
	if runtime == "" {
		runtime = common.PkgAlias(g.config.RuntimePath)
	}

	imp := importSpec{Path: g.config.RuntimePath}
	if runtime != common.PkgAlias(g.config.RuntimePath) {
		imp.Alias = runtime
	}

	data := &templateData{
		Header:      g.config.Header,
		PackageName: d.PkgName,
		Import:      imp,
		Runtime:     runtime,
		TypeName:    d.ID.Name,
		ImplName:    d.ImplName(),
		ClearOnBlur: d.ClearOnBlur,
	}

	for _, f := range d.Fields {
		expr := "provider." + f.Path.String()
		if f.TakeAddress {
			expr = "&" + expr
		}

		data.Fields = append(data.Fields, fieldData{ID: strconv.Quote(f.ID), Expr: expr})
	}

	return data
}

var driverTemplate = template.Must(template.New("driver").Parse(`{{.Header}}

package {{.PackageName}}

import {{if .Import.Alias}}{{.Import.Alias}} {{end}}"{{.Import.Path}}"

// {{.ImplName}} routes validation messages onto the presenter fields of {{.TypeName}}.
type {{.ImplName}} struct {
	{{.Runtime}}.Driver
}

// New{{.ImplName}} returns a driver with an empty registry. Call Initialize
// before Register.
func New{{.ImplName}}(opts ...{{.Runtime}}.Option) *{{.ImplName}} {
	return &{{.ImplName}}{Driver: {{.Runtime}}.NewDriver(opts...)}
}

// Initialize populates the registry from the presenter fields of provider.
func (d *{{.ImplName}}) Initialize(provider *{{.TypeName}}) {
{{- if .Fields}}
	d.Populate({{.ClearOnBlur}},
{{- range .Fields}}
		{{$.Runtime}}.NewElementWrapper({{.ID}}, {{.Expr}}),
{{- end}}
	)
{{- else}}
	d.Populate({{.ClearOnBlur}})
{{- end}}
}

var _ {{.Runtime}}.MessageDriver[*{{.TypeName}}] = (*{{.ImplName}})(nil)
`))
