package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/format"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"
)

const (
	enumPath    = "github.com/jnbooth/enumeration/enum"
	enumsetPath = "github.com/jnbooth/enumeration/enumset"
)

// A value is one constant of the enumerated type.
type value struct {
	name string
	ord  int
}

// A generator holds everything learned about the target type.
type generator struct {
	pkgName    string
	dir        string
	typeName   string
	underlying string  // the declared underlying integer type
	values     []value // sorted by ord, which runs 0..len-1
	args       string  // command line, for the generated-file header
}

// load type-checks the single package matched by patterns and gathers
// the constants of typeName, enforcing the declaration contract.
func load(patterns []string, typeName string) (*generator, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, errors.New("loaded packages contain errors")
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%d packages matched; want exactly 1", len(pkgs))
	}
	pkg := pkgs[0]

	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("type %s not found in %s", typeName, pkg.PkgPath)
	}
	if _, ok := obj.(*types.TypeName); !ok {
		return nil, fmt.Errorf("%s is not a type", typeName)
	}
	basic, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil, fmt.Errorf("type %s is not an integer type", typeName)
	}

	g := &generator{
		pkgName:    pkg.Name,
		typeName:   typeName,
		underlying: basic.Name(),
	}
	if len(pkg.GoFiles) > 0 {
		g.dir = filepath.Dir(pkg.GoFiles[0])
	}

	names := make(map[string]bool)
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), obj.Type()) {
			continue
		}
		ord, ok := constant.Int64Val(c.Val())
		if !ok {
			return nil, fmt.Errorf("value %s is not an integer", name)
		}
		g.values = append(g.values, value{name: name, ord: int(ord)})
		names[name] = true
	}
	if err := validateValues(typeName, g.values); err != nil {
		return nil, err
	}
	for _, file := range pkg.Syntax {
		if err := checkDecls(file, names); err != nil {
			return nil, err
		}
	}
	sort.Slice(g.values, func(i, j int) bool {
		return g.values[i].ord < g.values[j].ord
	})
	return g, nil
}

// validateValues enforces the closed-world contract: at least one value,
// and ordinals forming exactly the contiguous run 0..n-1.
func validateValues(typeName string, values []value) error {
	if len(values) == 0 {
		return fmt.Errorf("type %s must not be empty", typeName)
	}
	seen := make(map[int]string, len(values))
	for _, v := range values {
		if prev, dup := seen[v.ord]; dup {
			return fmt.Errorf("%s and %s share the value %d", prev, v.name, v.ord)
		}
		if v.ord < 0 || v.ord >= len(values) {
			return fmt.Errorf("value %s = %d is outside the contiguous run 0..%d",
				v.name, v.ord, len(values)-1)
		}
		seen[v.ord] = v.name
	}
	return nil
}

// checkDecls rejects manual discriminants: within any const block that
// declares one of the enumerated names, the first such spec must be
// exactly "= iota" and the rest must repeat it implicitly.
func checkDecls(file *ast.File, names map[string]bool) error {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}
		first := true
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || !declaresAny(vs, names) {
				continue
			}
			if first {
				first = false
				if len(vs.Values) != 1 || !isIota(vs.Values[0]) {
					return fmt.Errorf("%s: manual discriminants are unsupported", vs.Names[0].Name)
				}
				continue
			}
			if len(vs.Values) != 0 {
				return fmt.Errorf("%s: manual discriminants are unsupported", vs.Names[0].Name)
			}
		}
	}
	return nil
}

func declaresAny(vs *ast.ValueSpec, names map[string]bool) bool {
	for _, n := range vs.Names {
		if names[n.Name] {
			return true
		}
	}
	return false
}

func isIota(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == "iota"
}

// repFor returns the smallest unsigned type with at least size bits.
func repFor(size int) (string, error) {
	switch {
	case size <= 8:
		return "uint8", nil
	case size <= 16:
		return "uint16", nil
	case size <= 32:
		return "uint32", nil
	case size <= 64:
		return "uint64", nil
	}
	return "", fmt.Errorf("too many values: %d (64 is the widest supported representation)", size)
}

// generate renders the output file and gofmts it.
func (g *generator) generate(withOpt bool) ([]byte, error) {
	size := len(g.values)
	rep, err := repFor(size)
	if err != nil {
		return nil, err
	}
	optRep := ""
	if withOpt {
		optRep, err = repFor(size + 1)
		if err != nil {
			return nil, fmt.Errorf("optional wrapper: %w", err)
		}
	}

	t := g.typeName
	var b bytes.Buffer
	p := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
	}

	p("// Code generated by \"enumgen %s\"; DO NOT EDIT.\n\n", g.args)
	p("package %s\n\n", g.pkgName)
	p("import (\n\t\"fmt\"\n\n\t%q\n\t%q\n)\n\n", enumPath, enumsetPath)

	names, index, offType := nameTables(g.values)
	p("const _%sName = %q\n\n", t, names)
	p("var _%sIndex = [...]%s{%s}\n\n", t, offType, index)

	p("// Size returns the total number of %s values.\n", t)
	p("func (%s) Size() int { return %d }\n\n", t, size)
	p("// Min returns the smallest %s value.\n", t)
	p("func (%s) Min() %s { return %s }\n\n", t, t, g.values[0].name)
	p("// Max returns the largest %s value.\n", t)
	p("func (%s) Max() %s { return %s }\n\n", t, t, g.values[size-1].name)

	p("// Succ returns the value's successor, reporting false at Max.\n")
	p("func (v %s) Succ() (%s, bool) {\n\tif v == %s {\n\t\treturn v, false\n\t}\n\treturn v + 1, true\n}\n\n",
		t, t, g.values[size-1].name)
	p("// Pred returns the value's predecessor, reporting false at Min.\n")
	p("func (v %s) Pred() (%s, bool) {\n\tif v == %s {\n\t\treturn v, false\n\t}\n\treturn v - 1, true\n}\n\n",
		t, t, g.values[0].name)

	p("// Index returns the value's position in a complete enumeration of %s.\n", t)
	p("func (v %s) Index() int { return int(v) }\n\n", t)
	p("// Bit returns the value's single-bit mask.\n")
	p("func (v %s) Bit() %s { return %s(1) << v }\n\n", t, rep, rep)

	p("// %sFromIndex is the inverse of Index. It reports false when i is\n", t)
	p("// outside [0, %d).\n", size)
	p("func %sFromIndex(i int) (%s, bool) {\n\tif i < 0 || i >= %d {\n\t\treturn %s, false\n\t}\n\treturn %s(i), true\n}\n\n",
		t, t, size, g.values[0].name, t)

	p("func (v %s) String() string {\n", t)
	p("\tif int(v) >= len(_%sIndex)-1 {\n\t\treturn fmt.Sprintf(\"%s(%%d)\", %s(v))\n\t}\n", t, t, g.underlying)
	p("\treturn _%sName[_%sIndex[v]:_%sIndex[v+1]]\n}\n\n", t, t, t)

	p("// MarshalText encodes the value as its name.\n")
	p("func (v %s) MarshalText() ([]byte, error) {\n", t)
	p("\tif int(v) >= len(_%sIndex)-1 {\n\t\treturn nil, fmt.Errorf(\"invalid %s value %%d\", %s(v))\n\t}\n", t, t, g.underlying)
	p("\treturn []byte(v.String()), nil\n}\n\n")

	p("// UnmarshalText decodes a value from its name.\n")
	p("func (v *%s) UnmarshalText(text []byte) error {\n", t)
	p("\ts := string(text)\n")
	p("\tfor i := range len(_%sIndex) - 1 {\n", t)
	p("\t\tif d := %s(i); d.String() == s {\n\t\t\t*v = d\n\t\t\treturn nil\n\t\t}\n\t}\n", t)
	p("\treturn fmt.Errorf(\"unknown %s value %%q\", s)\n}\n\n", t)

	p("var _ enum.Bits[%s, %s] = %s(0)\n\n", t, rep, t)
	p("// %sSet is a set of %s values.\n", t, t)
	p("type %sSet = enumset.Set[%s, %s]\n", t, t, rep)

	if withOpt {
		p("\n// Opt%s extends %s with an absent value below %s.\n", t, t, g.values[0].name)
		p("// The zero Opt%s is absent.\n", t)
		p("type Opt%s = enum.Opt[%s, %s, %s]\n\n", t, t, rep, optRep)
		p("// Some%s returns the Opt%s holding v.\n", t, t)
		p("func Some%s(v %s) Opt%s {\n\treturn enum.OptOf[%s, %s, %s](v)\n}\n", t, t, t, t, rep, optRep)
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		// Should not happen; return the raw text to aid debugging.
		return b.Bytes(), fmt.Errorf("internal error: generated invalid Go: %w", err)
	}
	return src, nil
}

// nameTables builds the concatenated name string, the offset list, and
// the smallest offset type that fits.
func nameTables(values []value) (names, index, offType string) {
	var nb, ib bytes.Buffer
	total := 0
	ib.WriteString("0")
	for _, v := range values {
		nb.WriteString(v.name)
		total += len(v.name)
		fmt.Fprintf(&ib, ", %d", total)
	}
	switch {
	case total < 1<<8:
		offType = "uint8"
	case total < 1<<16:
		offType = "uint16"
	default:
		offType = "uint32"
	}
	return nb.String(), ib.String(), offType
}
