package materialize

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/walk"
)

// PositionalBuilder is implemented, with a value receiver, by record types
// that want the POSITIONAL construction strategy: materialize fills an
// untyped slot per declared field (using the field's default tag, or its
// zero value, for any member the input didn't supply) and calls FromFields
// once every member has been visited.
type PositionalBuilder interface {
	FromFields(fields []any) (any, error)
}

// KeywordBuilder is implemented, with a value receiver, by record types
// that want the KEYWORD construction strategy: materialize accumulates
// only the fields the input actually supplied, keyed by Go field name, and
// calls FromKeywords once the object is fully consumed.
type KeywordBuilder interface {
	FromKeywords(fields map[string]any) (any, error)
}

// A type with neither method implements neither interface, and
// materialize falls back to MUTABLE: allocate a zero T and set its fields
// directly as members arrive.

type fieldDesc struct {
	goName string
	index  []int
	typ    reflect.Type
	tag    fieldTag
}

var fieldCache sync.Map // reflect.Type -> map[string]fieldDesc

// collectFields returns t's exported fields keyed by their effective JSON
// key, in the same spirit as encoding/json's cached struct info: the
// reflection walk only happens once per type.
func collectFields(t reflect.Type) map[string]fieldDesc {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]fieldDesc)
	}
	out := make(map[string]fieldDesc)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := parseFieldTag(f)
		if tag.ignore {
			continue
		}
		out[tag.key] = fieldDesc{goName: f.Name, index: f.Index, typ: f.Type, tag: tag}
	}
	fieldCache.Store(t, out)
	return out
}

// declarationOrder returns the JSON keys of t's materializable fields in
// declaration order, the order the POSITIONAL strategy's slot vector
// follows.
func declarationOrder(t reflect.Type) []string {
	order := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := parseFieldTag(f)
		if tag.ignore {
			continue
		}
		order = append(order, tag.key)
	}
	return order
}

func detectStrategy(t reflect.Type) any {
	zero := reflect.Zero(t).Interface()
	if b, ok := zero.(PositionalBuilder); ok {
		return b
	}
	if b, ok := zero.(KeywordBuilder); ok {
		return b
	}
	return nil
}

// Materialize requires view to be an Object and builds an instance of t,
// choosing POSITIONAL, KEYWORD, or MUTABLE according to which of
// PositionalBuilder or KeywordBuilder t implements (MUTABLE is the
// default). t is normally obtained as reflect.TypeOf(Zero), where Zero is
// a zero value of the target type.
func Materialize(view walk.View, t reflect.Type, opts lazyjson.Options) (any, error) {
	switch b := detectStrategy(t).(type) {
	case PositionalBuilder:
		return materializePositional(view, t, opts, b)
	case KeywordBuilder:
		return materializeKeyword(view, t, opts, b)
	default:
		rv := reflect.New(t)
		if err := into(view, rv, opts); err != nil {
			return nil, err
		}
		return rv.Elem().Interface(), nil
	}
}

// Into requires view to be an Object and populates target, a non-nil
// pointer to a struct, following the MUTABLE strategy: target is assumed
// already constructed and each member sets its field directly as it
// arrives. Unknown keys are skipped; members with no corresponding field
// are ignored. Before any member is read, every field with a default tag
// is set to its default; other fields with no corresponding member are
// left untouched.
func Into(view walk.View, target any, opts lazyjson.Options) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("materialize: Into requires a non-nil pointer, got %T", target)
	}
	return into(view, rv, opts)
}

func into(view walk.View, rv reflect.Value, opts lazyjson.Options) error {
	t := rv.Type().Elem()
	fields := collectFields(t)
	applyDefaults(rv.Elem(), fields)

	_, err := view.ApplyEach(func(key any, child walk.View) (walk.Signal, error) {
		name, ok := key.(string)
		if !ok {
			return walk.Signal{}, lazyjson.NewError(lazyjson.TypeMismatch, posOf(child), "object key")
		}
		fd, ok := fields[name]
		if !ok {
			return walk.Continue(0), nil
		}
		fv, err := materializeField(child, fd.typ, opts, fd.goName)
		if err != nil {
			return walk.Signal{}, err
		}
		rv.Elem().FieldByIndex(fd.index).Set(fv)
		return walk.Continue(0), nil
	})
	return err
}

func applyDefaults(sv reflect.Value, fields map[string]fieldDesc) {
	for _, fd := range fields {
		if !fd.tag.hasDef {
			continue
		}
		dv, err := parseDefault(fd.typ, fd.tag.def)
		if err != nil {
			continue
		}
		sv.FieldByIndex(fd.index).Set(dv)
	}
}

func parseDefault(t reflect.Type, lit string) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	switch {
	case t.Kind() == reflect.String:
		out.SetString(lit)
	case isIntKind(t.Kind()):
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(n)
	case isUintKind(t.Kind()):
		n, err := strconv.ParseUint(lit, 10, 64)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetUint(n)
	case isFloatKind(t.Kind()):
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetFloat(f)
	case t.Kind() == reflect.Bool:
		b, err := strconv.ParseBool(lit)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetBool(b)
	default:
		return reflect.Value{}, fmt.Errorf("materialize: unsupported default type %s", t)
	}
	return out, nil
}

func materializePositional(view walk.View, t reflect.Type, opts lazyjson.Options, builder PositionalBuilder) (any, error) {
	fields := collectFields(t)
	order := declarationOrder(t)
	slot := make(map[string]int, len(order))
	for i, key := range order {
		slot[key] = i
	}
	values := make([]reflect.Value, len(order))
	filled := make([]bool, len(order))

	_, err := view.ApplyEach(func(key any, child walk.View) (walk.Signal, error) {
		name, ok := key.(string)
		if !ok {
			return walk.Signal{}, lazyjson.NewError(lazyjson.TypeMismatch, posOf(child), "object key")
		}
		fd, ok := fields[name]
		if !ok {
			return walk.Continue(0), nil
		}
		fv, err := materializeField(child, fd.typ, opts, fd.goName)
		if err != nil {
			return walk.Signal{}, err
		}
		i := slot[name]
		values[i] = fv
		filled[i] = true
		return walk.Continue(0), nil
	})
	if err != nil {
		return nil, err
	}

	args := make([]any, len(order))
	for i, key := range order {
		if filled[i] {
			args[i] = values[i].Interface()
			continue
		}
		fd := fields[key]
		if fd.tag.hasDef {
			dv, err := parseDefault(fd.typ, fd.tag.def)
			if err != nil {
				return nil, err
			}
			args[i] = dv.Interface()
			continue
		}
		args[i] = reflect.Zero(fd.typ).Interface()
	}
	return builder.FromFields(args)
}

func materializeKeyword(view walk.View, t reflect.Type, opts lazyjson.Options, builder KeywordBuilder) (any, error) {
	fields := collectFields(t)
	kw := make(map[string]any, len(fields))

	_, err := view.ApplyEach(func(key any, child walk.View) (walk.Signal, error) {
		name, ok := key.(string)
		if !ok {
			return walk.Signal{}, lazyjson.NewError(lazyjson.TypeMismatch, posOf(child), "object key")
		}
		fd, ok := fields[name]
		if !ok {
			return walk.Continue(0), nil
		}
		fv, err := materializeField(child, fd.typ, opts, fd.goName)
		if err != nil {
			return walk.Signal{}, err
		}
		kw[fd.goName] = fv.Interface()
		return walk.Continue(0), nil
	})
	if err != nil {
		return nil, err
	}
	return builder.FromKeywords(kw)
}
