package schema

import (
	"fmt"
	"strings"
)

// index holds the definitions visible from one schema file: its own and
// those of every file it includes, keyed by qualified name.
type index struct {
	enums   map[string]*EnumDef
	records map[string]*RecordDef
	unions  map[string]*UnionDef
}

func newIndex(files ...*Schema) *index {
	ix := &index{
		enums:   make(map[string]*EnumDef),
		records: make(map[string]*RecordDef),
		unions:  make(map[string]*UnionDef),
	}

	for _, f := range files {
		for _, e := range f.Enums {
			ix.enums[e.QualifiedName()] = e
		}

		for _, r := range f.Records {
			ix.records[r.QualifiedName()] = r
		}

		for _, u := range f.Unions {
			ix.unions[u.QualifiedName()] = u
		}
	}

	return ix
}

// ResolveType parses a type expression as written by the schema parser and
// resolves named types relative to namespace `ns`.
func (ix *index) ResolveType(expr string, ns Namespace) (Type, error) {
	expr = strings.TrimSpace(expr)

	if len(expr) == 0 {
		return nil, fmt.Errorf("empty type")
	}

	if strings.HasPrefix(expr, "[") {
		if !strings.HasSuffix(expr, "]") {
			return nil, fmt.Errorf(`unterminated vector type "%s"`, expr)
		}

		elem, err := ix.ResolveType(expr[1:len(expr)-1], ns)
		if err != nil {
			return nil, err
		}

		if _, ok := elem.(*Vector); ok {
			return nil, fmt.Errorf(`nested vector type "%s" is not supported`, expr)
		}

		return &Vector{Elem: elem}, nil
	}

	if expr == "string" {
		return &String{}, nil
	}

	if k, ok := ParseScalarKind(expr); ok {
		return &Scalar{Kind: k}, nil
	}

	if t := ix.lookup(expr, ns); t != nil {
		return t, nil
	}

	return nil, fmt.Errorf(`could not resolve type "%s" in namespace "%s"`, expr, ns.String())
}

// lookup tries the name in `ns` and then in each enclosing namespace, the
// innermost match wins.
func (ix *index) lookup(name string, ns Namespace) Type {
	for i := len(ns); i >= 0; i -= 1 {
		qualified := qualify(ns[:i], name)

		if e, ok := ix.enums[qualified]; ok {
			return &Enum{Def: e}
		}

		if r, ok := ix.records[qualified]; ok {
			return &Record{Def: r}
		}

		if u, ok := ix.unions[qualified]; ok {
			return &Union{Def: u}
		}
	}

	return nil
}
