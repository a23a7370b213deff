package gen

import (
	"go/token"
	"path"
	"strings"

	"github.com/embermark/flatbuffers/internal/config"
	"github.com/embermark/flatbuffers/internal/schema"
)

const (
	flatbuffersPath = "github.com/google/flatbuffers/go"
	wireAliasSuffix = "fb"
	nativePkgSuffix = "ns"

	suffixFromWire = "FromWire"
	idToWire       = "ToWire"
	idTable        = "Table"
	idEnumNames    = "EnumNames"
)

// names derives Go identifiers and import paths from schema definitions.
type names struct {
	cfg config.Config
}

func (n names) recordName(def *schema.RecordDef) string {
	if def.Options().ValueType {
		return n.cfg.Naming.ValuePrefix + def.Name
	}

	return n.cfg.Naming.ReferencePrefix + def.Name
}

func (n names) enumName(def *schema.EnumDef) string {
	return n.cfg.Naming.EnumPrefix + def.Name
}

func (n names) fromWireName(def *schema.RecordDef) string {
	return n.recordName(def) + suffixFromWire
}

// nativePkg is the import path of the native package of namespace `ns`.
func (n names) nativePkg(ns schema.Namespace) string {
	if len(ns) == 0 {
		return n.cfg.Native.Path
	}

	return n.cfg.Native.Path + "/" + strings.ToLower(strings.Join(ns, "/"))
}

// reservedPkgNames are identifiers of generated code a native package name
// would shadow or be shadowed by.
var reservedPkgNames = map[string]bool{
	idRecv: true, idWire: true, idBuilder: true, idIndex: true, idElem: true,
	"v": true, "s": true, "ok": true,

	"flatbuffers": true, "native": true, "strconv": true,
	"init": true, "main": true,

	"nil": true, "true": true, "false": true,
	"make": true, "len": true, "new": true, "string": true,
	"bool": true, "byte": true,
	"int8": true, "uint8": true, "int16": true, "uint16": true,
	"int32": true, "uint32": true, "int64": true, "uint64": true,
	"float32": true, "float64": true,
}

// nativePkgName is the package name of the native package of `ns`, the
// last path element unless that collides with an identifier of generated
// code or with a wire package alias.
func (n names) nativePkgName(ns schema.Namespace) string {
	name := path.Base(n.nativePkg(ns))
	if pkgNameReserved(name) {
		return name + nativePkgSuffix
	}

	return name
}

func (n names) nativePkgRenamed(ns schema.Namespace) bool {
	return pkgNameReserved(path.Base(n.nativePkg(ns)))
}

func pkgNameReserved(name string) bool {
	return reservedPkgNames[name] || token.IsKeyword(name) || strings.HasSuffix(name, wireAliasSuffix)
}

// nativeDir is the directory of the native package of `ns`, relative to
// the working directory.
func (n names) nativeDir(ns schema.Namespace) string {
	return path.Join(n.cfg.Native.Dir, strings.ToLower(strings.Join(ns, "/")))
}

// wirePkg is the import path of the package flatc generates for `ns`,
// one directory per namespace component.
func (n names) wirePkg(ns schema.Namespace) string {
	if len(ns) == 0 {
		return n.cfg.Wire.Path
	}

	return n.cfg.Wire.Path + "/" + strings.Join(ns, "/")
}

func (n names) wireAlias(ns schema.Namespace) string {
	return strings.ToLower(path.Base(n.wirePkg(ns))) + wireAliasSuffix
}

// camel converts a schema identifier to the exported name flatc uses for
// it, `hit_points` becomes `HitPoints`.
func camel(s string) string {
	var sb strings.Builder

	for _, part := range strings.Split(s, "_") {
		if len(part) > 0 {
			sb.WriteString(firstUpper(part))
		}
	}

	if sb.Len() == 0 {
		return s
	}

	return sb.String()
}

func firstLower(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToLower(s[0:1]) + s[1:]
}

func firstUpper(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[0:1]) + s[1:]
}

// categoryLabel is the default category of the fields of `def`.
func categoryLabel(def *schema.RecordDef) string {
	return strings.Join(append(append([]string{}, def.Namespace...), def.Name), "|")
}
