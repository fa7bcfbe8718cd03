package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formbind/internal/analyze"
)

func loginModel(dir string) analyze.DriverModel {
	return analyze.DriverModel{
		ID:          analyze.TypeID{PkgPath: "example.com/login", Name: "LoginForm"},
		PkgName:     "login",
		Dir:         dir,
		ClearOnBlur: true,
		RuntimeName: "binding",
		Fields: []analyze.PresenterField{
			{ID: "user", Path: analyze.NewFieldPath("Username")},
			{ID: "pass", Path: analyze.NewFieldPath("Password")},
		},
	}
}

func TestGenerateDriver_Login(t *testing.T) {
	g := NewGenerator(GeneratorConfig{})
	m := loginModel("/tmp/login")

	file, err := g.GenerateDriver(&m)
	require.NoError(t, err)

	assert.Equal(t, "login_form_driver_impl.go", file.Filename)
	assert.Equal(t, filepath.Join("/tmp/login", "login_form_driver_impl.go"), file.Path())
	assert.Equal(t, "example.com/login.LoginForm", file.Decl)

	src := string(file.Content)
	assert.Contains(t, src, "// Code generated by formbind. DO NOT EDIT.\n\npackage login\n")
	assert.Contains(t, src, `import "formbind/binding"`)
	assert.Contains(t, src, "type LoginFormDriverImpl struct {\n\tbinding.Driver\n}")
	assert.Contains(t, src, "func NewLoginFormDriverImpl(opts ...binding.Option) *LoginFormDriverImpl {")
	assert.Contains(t, src, "func (d *LoginFormDriverImpl) Initialize(provider *LoginForm) {")
	assert.Contains(t, src, "d.Populate(true,\n"+
		"\t\tbinding.NewElementWrapper(\"user\", provider.Username),\n"+
		"\t\tbinding.NewElementWrapper(\"pass\", provider.Password),\n"+
		"\t)")
	assert.Contains(t, src, "var _ binding.MessageDriver[*LoginForm] = (*LoginFormDriverImpl)(nil)")

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.AllErrors)
	require.NoError(t, err)
}

func TestGenerateDriver_Options(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*analyze.DriverModel)
		contains []string
		excludes []string
	}{
		{
			name:     "clear on blur disabled",
			mutate:   func(m *analyze.DriverModel) { m.ClearOnBlur = false },
			contains: []string{"d.Populate(false,"},
		},
		{
			name: "address taken",
			mutate: func(m *analyze.DriverModel) {
				m.Fields = []analyze.PresenterField{
					{ID: "email", Path: analyze.NewFieldPath("Email"), TakeAddress: true},
				}
			},
			contains: []string{`binding.NewElementWrapper("email", &provider.Email)`},
		},
		{
			name: "promoted field",
			mutate: func(m *analyze.DriverModel) {
				m.Fields = []analyze.PresenterField{
					{ID: "user", Path: analyze.NewFieldPath("Credentials", "Username")},
				}
			},
			contains: []string{`binding.NewElementWrapper("user", provider.Credentials.Username)`},
		},
		{
			name: "id escaping",
			mutate: func(m *analyze.DriverModel) {
				m.Fields = []analyze.PresenterField{{ID: `a"b`, Path: analyze.NewFieldPath("A")}}
			},
			contains: []string{`binding.NewElementWrapper("a\"b", provider.A)`},
		},
		{
			name:     "no presenters",
			mutate:   func(m *analyze.DriverModel) { m.Fields = nil },
			contains: []string{"d.Populate(true)\n}"},
			excludes: []string{"NewElementWrapper"},
		},
		{
			name:   "aliased runtime",
			mutate: func(m *analyze.DriverModel) { m.RuntimeName = "formbinding" },
			contains: []string{
				`import formbinding "formbind/binding"`,
				"formbinding.Driver",
				"formbinding.NewElementWrapper(\"user\", provider.Username)",
				"var _ formbinding.MessageDriver[*LoginForm]",
			},
			excludes: []string{" binding.", "\tbinding."},
		},
	}

	g := NewGenerator(DefaultGeneratorConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loginModel(t.TempDir())
			tt.mutate(&m)

			file, err := g.GenerateDriver(&m)
			require.NoError(t, err)

			src := string(file.Content)
			for _, s := range tt.contains {
				assert.Contains(t, src, s)
			}

			for _, s := range tt.excludes {
				assert.NotContains(t, src, s)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	dir := t.TempDir()
	model := &analyze.Model{Drivers: []analyze.DriverModel{loginModel(dir)}}
	g := NewGenerator(DefaultGeneratorConfig())

	first, err := g.Generate(model)
	require.NoError(t, err)
	second, err := g.Generate(model)
	require.NoError(t, err)

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
}

func TestGenerate_NilModel(t *testing.T) {
	files, err := NewGenerator(GeneratorConfig{}).Generate(nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGenerate_FilenameCollision(t *testing.T) {
	dir := t.TempDir()
	a := loginModel(dir)
	b := loginModel(dir)
	b.ID.Name = "Login_Form"

	_, err := NewGenerator(GeneratorConfig{}).Generate(&analyze.Model{Drivers: []analyze.DriverModel{a, b}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login_form_driver_impl.go")
}

func TestGenerateDriver_CustomHeaderAndSuffix(t *testing.T) {
	g := NewGenerator(GeneratorConfig{Header: "// Code generated by make. DO NOT EDIT.", FileSuffix: "_gen.go"})
	m := loginModel(t.TempDir())

	file, err := g.GenerateDriver(&m)
	require.NoError(t, err)
	assert.Equal(t, "login_form_gen.go", file.Filename)
	assert.Contains(t, string(file.Content), "// Code generated by make. DO NOT EDIT.")
}

func TestGenerateDriver_FormatFailureWritesDebug(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(GeneratorConfig{DebugUnformatted: true})
	m := loginModel(dir)
	m.PkgName = "not a package"

	file, err := g.GenerateDriver(&m)
	require.Error(t, err)
	require.NotNil(t, file)

	debug, readErr := os.ReadFile(filepath.Join(dir, "login_form_driver_impl.unformatted.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, file.Content, debug)
}
