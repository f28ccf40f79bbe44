package cpp

// builtinIntegers is the fixed table mapping the schema's canonical
// fixed-width integer names to their C++ <cstdint> spellings. Callers
// cannot override these: layout compatibility depends on them.
var builtinIntegers = map[string]string{
	"u8":  "uint8_t",
	"u16": "uint16_t",
	"u32": "uint32_t",
	"u64": "uint64_t",
	"i8":  "int8_t",
	"i16": "int16_t",
	"i32": "int32_t",
	"i64": "int64_t",
}

// integerByteWidths gives the storage width of each canonical integer,
// used to pad enum values to fixed-width hexadecimal.
var integerByteWidths = map[string]int{
	"u8":  1,
	"u16": 2,
	"u32": 4,
	"u64": 8,
	"i8":  1,
	"i16": 2,
	"i32": 4,
	"i64": 8,
}

// DefaultTypeMapping holds the overridable default conventions for
// non-integer schema names.
var DefaultTypeMapping = map[string]string{
	"f32":  "float",
	"f64":  "double",
	"bool": "bool",
}

// ignoredPrimitives are schema bookkeeping names that must not be declared:
// their abstract name collides with a C++ built-in keyword, so any
// declaration (or even an alias) would fail to compile.
var ignoredPrimitives = map[string]bool{
	"char": true,
}

// typeMapper resolves abstract type names to C++ spellings. Constructed once
// per generation call by layering caller overrides onto DefaultTypeMapping;
// never mutated after construction.
type typeMapper struct {
	mapping map[string]string
}

func newTypeMapper(overrides map[string]string) typeMapper {
	mapping := make(map[string]string, len(DefaultTypeMapping)+len(overrides))
	for name, cpp := range DefaultTypeMapping {
		mapping[name] = cpp
	}
	for name, cpp := range overrides {
		mapping[name] = cpp
	}
	return typeMapper{mapping: mapping}
}

// resolve returns the C++ spelling of an abstract type name. Unknown names
// pass through unchanged: struct/enum/union names emitted earlier in the
// document are already valid C++ identifiers. This operation never fails.
func (m typeMapper) resolve(name string) string {
	if cpp, ok := builtinIntegers[name]; ok {
		return cpp
	}
	if cpp, ok := m.mapping[name]; ok {
		return cpp
	}
	return name
}

// hexDigits returns the number of hexadecimal digits needed to render a
// value of the named integer type at its full storage width.
func hexDigits(underlying string) int {
	if width, ok := integerByteWidths[underlying]; ok {
		return width * 2
	}
	// Unknown underlying type: the normalizer guarantees an integer
	// primitive, so this is a fallback, not a contract
	return 2
}
