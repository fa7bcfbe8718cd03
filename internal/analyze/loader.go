package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"formbind/internal/common"
	"formbind/internal/diagnostic"
	"formbind/internal/match"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Runtime contract the generated drivers build on.
const (
	RuntimePkgPath  = "formbind/binding"
	FormElementName = "FormElement"
	DefaultTag      = "presenter"
	DefaultSuffix   = "_driver_impl.go"
	fallbackRuntime = "formbinding"
)

// Config controls one analysis round.
type Config struct {
	// Dir is the directory packages are resolved from; empty means the
	// current directory.
	Dir string
	// Tag is the struct tag key carrying presenter ids.
	Tag string
	// FileSuffix identifies previously generated files.
	FileSuffix string
	// BuildFlags are passed to the go command.
	BuildFlags []string
	// Logger receives progress and warnings; nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() Config {
	return Config{
		Tag:        DefaultTag,
		FileSuffix: DefaultSuffix,
	}
}

// Analyzer loads Go packages and collects driver models. An Analyzer keeps
// state for a single round; use a new one per run.
type Analyzer struct {
	cfg   Config
	iface *types.Interface
	model *Model
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	if cfg.Tag == "" {
		cfg.Tag = DefaultTag
	}

	if cfg.FileSuffix == "" {
		cfg.FileSuffix = DefaultSuffix
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Analyzer{cfg: cfg}
}

// LoadPackages loads the specified packages and builds the model.
// Patterns are standard Go package patterns (e.g., "./...", "example.com/app/forms").
// The first validation failure aborts the round.
func (a *Analyzer) LoadPackages(patterns ...string) (*Model, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := &packages.Config{
		Mode:       LoadMode,
		Dir:        a.cfg.Dir,
		BuildFlags: a.cfg.BuildFlags,
	}

	pkgs, err := packages.Load(cfg, append(append([]string{}, patterns...), RuntimePkgPath)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	a.model = &Model{}

	if err := a.checkPackageErrors(pkgs); err != nil {
		return nil, err
	}

	a.iface, err = lookupFormElement(pkgs)
	if err != nil {
		return nil, err
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].PkgPath < pkgs[j].PkgPath })

	seen := make(map[string]bool)
	for _, pkg := range pkgs {
		if seen[pkg.PkgPath] || pkg.PkgPath == RuntimePkgPath {
			continue
		}

		seen[pkg.PkgPath] = true

		if err := a.processPackage(pkg); err != nil {
			return nil, err
		}
	}

	for _, w := range a.model.Diagnostics.Warnings {
		a.cfg.Logger.Warn(w.Message, slog.String("code", w.Code), slog.String("decl", w.Decl),
			slog.String("field", w.Field), slog.String("pos", w.Pos.String()))
	}

	return a.model, nil
}

// checkPackageErrors fails on load or type errors, except those located in
// previously generated files: a stale driver must not block its own
// regeneration.
func (a *Analyzer) checkPackageErrors(pkgs []*packages.Package) error {
	var errs []error

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			file, _, _ := strings.Cut(e.Pos, ":")
			if e.Kind == packages.TypeError && strings.HasSuffix(file, a.cfg.FileSuffix) {
				a.model.Diagnostics.AddWarning(diagnostic.CodeStaleGenerated,
					"ignoring error in generated file: "+e.Msg, pkg.PkgPath, "", token.Position{Filename: file})
				continue
			}

			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	return nil
}

// lookupFormElement finds the binding.FormElement interface among the loaded
// packages.
func lookupFormElement(pkgs []*packages.Package) (*types.Interface, error) {
	var runtime *packages.Package

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		if pkg.PkgPath == RuntimePkgPath && pkg.Types != nil {
			runtime = pkg
		}
	})

	if runtime == nil {
		return nil, fmt.Errorf("runtime package %s not found", RuntimePkgPath)
	}

	obj := runtime.Types.Scope().Lookup(FormElementName)
	if obj == nil {
		return nil, fmt.Errorf("%s.%s not found", RuntimePkgPath, FormElementName)
	}

	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not an interface", RuntimePkgPath, FormElementName)
	}

	return iface, nil
}

// processPackage walks every declaration of pkg in file and source order.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	files := append([]*ast.File(nil), pkg.Syntax...)
	sort.Slice(files, func(i, j int) bool {
		return pkg.Fset.File(files[i].Pos()).Name() < pkg.Fset.File(files[j].Pos()).Name()
	})

	for _, file := range files {
		for _, decl := range file.Decls {
			if err := a.processDecl(pkg, decl); err != nil {
				return err
			}
		}
	}

	return nil
}

func (a *Analyzer) processDecl(pkg *packages.Package, decl ast.Decl) error {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return a.rejectMarker(pkg, d.Name.Name, "a function", d.Doc)

	case *ast.GenDecl:
		if d.Tok != token.TYPE {
			groups := []*ast.CommentGroup{d.Doc}
			for _, spec := range d.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					groups = append(groups, vs.Doc)
				}
			}

			return a.rejectMarker(pkg, genDeclName(d), "a "+d.Tok.String()+" declaration", groups...)
		}

		for _, spec := range d.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && !d.Lparen.IsValid() {
				doc = d.Doc
			}

			if err := a.processTypeSpec(pkg, ts, doc); err != nil {
				return err
			}
		}
	}

	return nil
}

// rejectMarker fails when a driver directive sits on a non-type declaration.
func (a *Analyzer) rejectMarker(pkg *packages.Package, name, what string, groups ...*ast.CommentGroup) error {
	for _, dir := range findDirectives(groups...) {
		pos := pkg.Fset.Position(dir.pos)
		decl := pkg.PkgPath + "." + name

		if err := checkVerb(dir, decl, pos); err != nil {
			return err
		}

		return diagnostic.Errorf(diagnostic.CodeMarkerNotType, decl, "", pos,
			"%s%s can only be used on a type, not %s", DirectivePrefix, dir.verb, what)
	}

	return nil
}

func (a *Analyzer) processTypeSpec(pkg *packages.Package, ts *ast.TypeSpec, doc *ast.CommentGroup) error {
	dirs := findDirectives(doc)
	if len(dirs) == 0 {
		return nil
	}

	id := TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name}
	pos := pkg.Fset.Position(ts.Pos())

	if len(dirs) > 1 {
		return diagnostic.Errorf(diagnostic.CodeMarkerBadOption, id.String(), "", pos,
			"%s%s is repeated", DirectivePrefix, DriverVerb)
	}

	dir := dirs[0]
	if err := checkVerb(dir, id.String(), pos); err != nil {
		return err
	}

	marker, err := parseDriverMarker(dir, id.String(), pos)
	if err != nil {
		return err
	}

	if ts.TypeParams != nil && ts.TypeParams.NumFields() > 0 {
		return diagnostic.Errorf(diagnostic.CodeMarkerGeneric, id.String(), "", pos,
			"%s%s cannot be used on a generic type", DirectivePrefix, DriverVerb)
	}

	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return fmt.Errorf("%s: no type information", id)
	}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok || ts.Assign.IsValid() {
		return diagnostic.Errorf(diagnostic.CodeMarkerNotStruct, id.String(), "", pos,
			"%s%s must be used with a struct type, %s is %s",
			DirectivePrefix, DriverVerb, ts.Name.Name, describeType(obj, ts))
	}

	m := DriverModel{
		ID:          id,
		PkgName:     pkg.Name,
		Dir:         packageDir(pkg),
		ClearOnBlur: marker.ClearOnBlur,
		RuntimeName: a.runtimeName(pkg),
		Pos:         pos,
	}

	if err := a.checkImplNames(pkg, &m); err != nil {
		return err
	}

	c := &collector{
		a:       a,
		pkg:     pkg,
		decl:    id.String(),
		ids:     make(map[string]string),
		visited: map[*types.Named]bool{},
	}
	if named, ok := obj.Type().(*types.Named); ok {
		c.visited[named] = true
	}

	if err := c.collect(st, NewFieldPath()); err != nil {
		return err
	}

	m.Fields = c.fields

	if len(m.Fields) == 0 {
		a.model.Diagnostics.AddWarning(diagnostic.CodeNoPresenters,
			fmt.Sprintf("no fields tagged %q; the driver will be empty", a.cfg.Tag), id.String(), "", pos)
	}

	a.cfg.Logger.Debug("driver discovered", slog.String("type", id.String()), slog.Int("fields", len(m.Fields)))
	a.model.Drivers = append(a.model.Drivers, m)

	return nil
}

// checkImplNames fails if the package already declares the generated names
// outside a generated file.
func (a *Analyzer) checkImplNames(pkg *packages.Package, m *DriverModel) error {
	for _, name := range []string{m.ImplName(), "New" + m.ImplName()} {
		obj := pkg.Types.Scope().Lookup(name)
		if obj == nil {
			continue
		}

		pos := pkg.Fset.Position(obj.Pos())
		if strings.HasSuffix(pos.Filename, a.cfg.FileSuffix) {
			continue
		}

		return diagnostic.Errorf(diagnostic.CodeImplNameConflict, m.ID.String(), "", pos,
			"%s is already declared in package %s", name, pkg.Name)
	}

	return nil
}

// runtimeName picks the import name for the binding package in generated
// files of pkg, avoiding package-scope identifiers.
func (a *Analyzer) runtimeName(pkg *packages.Package) string {
	name := common.PkgAlias(RuntimePkgPath)
	if obj := pkg.Types.Scope().Lookup(name); obj != nil {
		pos := pkg.Fset.Position(obj.Pos())
		if !strings.HasSuffix(pos.Filename, a.cfg.FileSuffix) {
			return fallbackRuntime
		}
	}

	return name
}

// collector gathers the presenter fields of one marked struct.
type collector struct {
	a       *Analyzer
	pkg     *packages.Package
	decl    string
	fields  []PresenterField
	ids     map[string]string // presenter id -> field path
	visited map[*types.Named]bool
}

// collect walks st in declaration order, descending into embedded structs so
// promoted fields are bound too.
func (c *collector) collect(st *types.Struct, path FieldPath) error {
	for i := range st.NumFields() {
		f := st.Field(i)
		tag := reflect.StructTag(st.Tag(i))
		id, tagged := tag.Lookup(c.a.cfg.Tag)
		pos := c.pkg.Fset.Position(f.Pos())
		fieldPath := path.Field(f.Name())

		if f.Embedded() {
			if tagged {
				return diagnostic.Errorf(diagnostic.CodePresenterNotField, c.decl, fieldPath.String(), pos,
					"%s tag must be used on a named field, %s is an embedded type", c.a.cfg.Tag, f.Name())
			}

			if err := c.embedded(f, path, fieldPath); err != nil {
				return err
			}

			continue
		}

		if !tagged {
			c.checkTypos(tag, fieldPath, pos)
			continue
		}

		if err := c.addField(f, strings.TrimSpace(id), fieldPath, pos); err != nil {
			return err
		}
	}

	return nil
}

func (c *collector) embedded(f *types.Var, path, fieldPath FieldPath) error {
	t := f.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok || c.visited[named] {
		return nil
	}

	c.visited[named] = true
	defer delete(c.visited, named)

	// An embedded field this package cannot name is skipped in the selector;
	// its fields are reached through promotion.
	next := fieldPath
	if !c.accessible(f) {
		next = path
	}

	return c.collect(st, next)
}

func (c *collector) addField(f *types.Var, id string, path FieldPath, pos token.Position) error {
	if f.Name() == "_" {
		return diagnostic.Errorf(diagnostic.CodePresenterNotField, c.decl, path.String(), pos,
			"%s tag must be used on a named field, not a blank field", c.a.cfg.Tag)
	}

	if !c.accessible(f) {
		return diagnostic.Errorf(diagnostic.CodePresenterUnexported, c.decl, path.String(), pos,
			"field %s is unexported in package %s and cannot be bound from %s",
			f.Name(), f.Pkg().Path(), c.pkg.PkgPath)
	}

	if id == "" {
		return diagnostic.Errorf(diagnostic.CodePresenterEmptyID, c.decl, path.String(), pos,
			"%s tag of field %s has an empty id", c.a.cfg.Tag, f.Name())
	}

	takeAddress, ok := c.a.compatible(f.Type())
	if !ok {
		return diagnostic.Errorf(diagnostic.CodePresenterType, c.decl, path.String(), pos,
			"field %s: type %s does not implement %s.%s",
			f.Name(), types.TypeString(f.Type(), types.RelativeTo(c.pkg.Types)),
			common.PkgAlias(RuntimePkgPath), FormElementName)
	}

	if prev, dup := c.ids[id]; dup {
		return diagnostic.Errorf(diagnostic.CodeDuplicateID, c.decl, path.String(), pos,
			"presenter id %q is not unique (already used by %s)", id, prev)
	}

	c.ids[id] = path.String()
	c.fields = append(c.fields, PresenterField{
		ID:          id,
		Path:        path,
		Type:        types.TypeString(f.Type(), types.RelativeTo(c.pkg.Types)),
		TakeAddress: takeAddress,
		Pos:         pos,
	})

	return nil
}

func (c *collector) accessible(f *types.Var) bool {
	return f.Exported() || f.Pkg() == c.pkg.Types
}

// checkTypos warns about tag keys that look like a misspelled presenter key.
func (c *collector) checkTypos(tag reflect.StructTag, path FieldPath, pos token.Position) {
	for _, key := range tagKeys(string(tag)) {
		if s := match.Suggest(key, c.a.cfg.Tag); len(s) > 0 {
			c.a.model.Diagnostics.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Code:     diagnostic.CodeTagTypo,
				Message:  fmt.Sprintf("tag key %q is not %q; the field is not bound", key, c.a.cfg.Tag),
				Decl:     c.decl,
				Field:    path.String(),
				Pos:      pos,
			}.WithSuggestions(s...))
		}
	}
}

// compatible reports whether a value of type t, or a pointer to it,
// implements binding.FormElement.
func (a *Analyzer) compatible(t types.Type) (takeAddress, ok bool) {
	if types.Implements(t, a.iface) {
		return false, true
	}

	switch t.Underlying().(type) {
	case *types.Pointer, *types.Interface:
		return false, false
	}

	if types.Implements(types.NewPointer(t), a.iface) {
		return true, true
	}

	return false, false
}

func genDeclName(d *ast.GenDecl) string {
	for _, spec := range d.Specs {
		if vs, ok := spec.(*ast.ValueSpec); ok && len(vs.Names) > 0 {
			return vs.Names[0].Name
		}
	}

	return d.Tok.String()
}

func describeType(obj *types.TypeName, ts *ast.TypeSpec) string {
	if ts.Assign.IsValid() {
		return "an alias"
	}

	switch obj.Type().Underlying().(type) {
	case *types.Interface:
		return "an interface"
	case *types.Basic:
		return "a basic type"
	case *types.Signature:
		return "a function type"
	default:
		return "not a struct"
	}
}

func packageDir(pkg *packages.Package) string {
	files := pkg.GoFiles
	if len(files) == 0 {
		files = pkg.CompiledGoFiles
	}

	if len(files) == 0 {
		return ""
	}

	return filepath.Dir(files[0])
}
