package materialize

import (
	"math/big"
	"reflect"
	"strconv"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/internal/numeric"
	"github.com/lazyjson/lazyjson/walk"
)

var (
	bigIntType   = reflect.TypeOf((*big.Int)(nil))
	bigFloatType = reflect.TypeOf((*big.Float)(nil))
	int128Type   = reflect.TypeOf(numeric.Int128{})
)

// materializeField builds a reflect.Value of type t from view, recursing
// into nested records for struct fields and into Generic for interface{}
// (union-like) fields. fieldName is carried only to label a TypeMismatch
// error at the offending field.
func materializeField(view walk.View, t reflect.Type, opts lazyjson.Options, fieldName string) (reflect.Value, error) {
	k, ok := view.(scalar)
	if !ok {
		return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
	}

	if t.Kind() == reflect.Ptr {
		if k.Kind() == lazyjson.Null {
			return reflect.Zero(t), nil
		}
		elem, err := materializeField(view, t.Elem(), opts, fieldName)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	switch {
	case t.Kind() == reflect.Interface:
		gv, err := Generic(view, opts, lazyjson.Types{})
		if err != nil {
			return reflect.Value{}, err
		}
		if gv == nil {
			return reflect.Zero(t), nil
		}
		return reflect.ValueOf(gv), nil

	case t == bigIntType || t == bigFloatType || t == int128Type:
		return materializeBigNumber(view, t, fieldName)

	case t.Kind() == reflect.Struct:
		mv, err := Materialize(view, t, opts)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(mv), nil

	case t.Kind() == reflect.Slice:
		if k.Kind() != lazyjson.Array {
			return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
		}
		return materializeSlice(view, t, opts, fieldName)

	case t.Kind() == reflect.Map:
		if k.Kind() != lazyjson.Object {
			return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
		}
		return materializeMap(view, t, opts, fieldName)

	case t.Kind() == reflect.String:
		if k.Kind() != lazyjson.String {
			return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
		}
		sv := view.(stringValue)
		s, err := sv.DecodedString()
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(t).Elem()
		out.SetString(s)
		return out, nil

	case t.Kind() == reflect.Bool:
		switch k.Kind() {
		case lazyjson.True:
			return reflect.ValueOf(true), nil
		case lazyjson.False:
			return reflect.ValueOf(false), nil
		default:
			return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
		}

	case isIntKind(t.Kind()):
		return materializeInt(view, t, fieldName)

	case isUintKind(t.Kind()):
		return materializeUint(view, t, fieldName)

	case isFloatKind(t.Kind()):
		return materializeFloat(view, t, fieldName)

	default:
		return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
	}
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func numberOf(view walk.View, fieldName string) (numeric.Value, error) {
	k, _ := view.(scalar)
	if k == nil || !k.Kind().IsNumeric() {
		return numeric.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, "number")
	}
	nv := view.(numberValue)
	return nv.Number()
}

func materializeInt(view walk.View, t reflect.Type, fieldName string) (reflect.Value, error) {
	n, err := numberOf(view, fieldName)
	if err != nil {
		return reflect.Value{}, err
	}
	var i int64
	switch n.Kind() {
	case numeric.KindInt64:
		i = n.Int64()
	case numeric.KindFloat64:
		i = int64(n.Float64())
	case numeric.KindInt128:
		i = n.Int128().BigInt().Int64()
	case numeric.KindBigInt:
		i = n.BigInt().Int64()
	default:
		return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
	}
	out := reflect.New(t).Elem()
	out.SetInt(i)
	return out, nil
}

func materializeUint(view walk.View, t reflect.Type, fieldName string) (reflect.Value, error) {
	n, err := numberOf(view, fieldName)
	if err != nil {
		return reflect.Value{}, err
	}
	var i uint64
	switch n.Kind() {
	case numeric.KindInt64:
		i = uint64(n.Int64())
	case numeric.KindFloat64:
		i = uint64(n.Float64())
	default:
		return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
	}
	out := reflect.New(t).Elem()
	out.SetUint(i)
	return out, nil
}

func materializeFloat(view walk.View, t reflect.Type, fieldName string) (reflect.Value, error) {
	n, err := numberOf(view, fieldName)
	if err != nil {
		return reflect.Value{}, err
	}
	var f float64
	switch n.Kind() {
	case numeric.KindFloat64:
		f = n.Float64()
	case numeric.KindInt64:
		f = float64(n.Int64())
	case numeric.KindBigFloat:
		f, _ = n.BigFloat().Float64()
	case numeric.KindBigInt:
		f, _ = new(big.Float).SetInt(n.BigInt()).Float64()
	default:
		return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
	}
	out := reflect.New(t).Elem()
	out.SetFloat(f)
	return out, nil
}

// materializeBigNumber handles the three ladder types that overflow the
// machine-word fields above: *big.Int, *big.Float, and numeric.Int128.
func materializeBigNumber(view walk.View, t reflect.Type, fieldName string) (reflect.Value, error) {
	n, err := numberOf(view, fieldName)
	if err != nil {
		return reflect.Value{}, err
	}
	switch t {
	case bigIntType:
		switch n.Kind() {
		case numeric.KindBigInt:
			return reflect.ValueOf(n.BigInt()), nil
		case numeric.KindInt128:
			return reflect.ValueOf(n.Int128().BigInt()), nil
		case numeric.KindInt64:
			return reflect.ValueOf(big.NewInt(n.Int64())), nil
		}
	case bigFloatType:
		switch n.Kind() {
		case numeric.KindBigFloat:
			return reflect.ValueOf(n.BigFloat()), nil
		case numeric.KindFloat64:
			return reflect.ValueOf(big.NewFloat(n.Float64())), nil
		}
	case int128Type:
		if n.Kind() == numeric.KindInt128 {
			return reflect.ValueOf(n.Int128()), nil
		}
		if n.Kind() == numeric.KindInt64 {
			return reflect.ValueOf(numeric.Int128{Lo: uint64(n.Int64())}), nil
		}
	}
	return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
}

func materializeSlice(view walk.View, t reflect.Type, opts lazyjson.Options, fieldName string) (reflect.Value, error) {
	elemType := t.Elem()
	out := reflect.MakeSlice(t, 0, 0)
	_, err := view.ApplyEach(func(key any, child walk.View) (walk.Signal, error) {
		ev, err := materializeField(child, elemType, opts, fieldName+"["+indexLabel(key)+"]")
		if err != nil {
			return walk.Signal{}, err
		}
		out = reflect.Append(out, ev)
		return walk.Continue(0), nil
	})
	if err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

func materializeMap(view walk.View, t reflect.Type, opts lazyjson.Options, fieldName string) (reflect.Value, error) {
	if t.Key().Kind() != reflect.String {
		return reflect.Value{}, lazyjson.TypeMismatchError(posOf(view), fieldName, t.String())
	}
	elemType := t.Elem()
	out := reflect.MakeMap(t)
	_, err := view.ApplyEach(func(key any, child walk.View) (walk.Signal, error) {
		name, _ := key.(string)
		ev, err := materializeField(child, elemType, opts, fieldName+"."+name)
		if err != nil {
			return walk.Signal{}, err
		}
		out.SetMapIndex(reflect.ValueOf(name).Convert(t.Key()), ev)
		return walk.Continue(0), nil
	})
	if err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

func indexLabel(key any) string {
	if i, ok := key.(int); ok {
		return strconv.Itoa(i)
	}
	return "?"
}
