package segments

import (
	"reflect"
	"strconv"
)

const (
	serializerBasePrefix  = '['
	serializerPairPrefix  = '['
	serializerPairSep     = ','
	serializerPairSuffix  = "],"
	serializerBaseSuffix  = ']'
	serializerApproxEntry = 16
)

// serialize returns a JSON encoding of the breakpoints as a list of [start,value]
// pairs, for example [[10,1],[30,0]]. Floating point values are written with the
// shortest representation that round-trips. NaN and infinite values have no JSON
// encoding and are written as NaN, +Inf and -Inf.
func serialize[T Number](points []Breakpoint[T]) []byte {
	if len(points) == 0 {
		return []byte("[]")
	}
	buf := make([]byte, 0, 2+len(points)*serializerApproxEntry)
	buf = append(buf, serializerBasePrefix)
	for _, p := range points {
		buf = append(buf, serializerPairPrefix)
		buf = strconv.AppendInt(buf, p.Start, 10)
		buf = append(buf, serializerPairSep)
		buf = appendValue(buf, p.Value)
		buf = append(buf, serializerPairSuffix...)
	}
	buf[len(buf)-1] = serializerBaseSuffix
	return buf
}

// appendValue appends the decimal form of v to buf.
func appendValue[T Number](buf []byte, v T) []byte {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(buf, rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.AppendUint(buf, rv.Uint(), 10)
	case reflect.Float32:
		return strconv.AppendFloat(buf, rv.Float(), 'g', -1, 32)
	default:
		return strconv.AppendFloat(buf, rv.Float(), 'g', -1, 64)
	}
}

// String returns the breakpoints as a list of [start,value] pairs.
func (s *Segments[T]) String() string {
	return string(serialize(s.points))
}

// MarshalJSON implements the json.Marshaler interface.
func (s *Segments[T]) MarshalJSON() ([]byte, error) {
	return serialize(s.points), nil
}
