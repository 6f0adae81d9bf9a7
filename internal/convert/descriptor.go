package convert

// NoneDescriptor is the descriptor of None and of missing annotations.
const NoneDescriptor = "LNone"

var primitiveDescriptors = map[string]string{
	"bool":  "Z",
	"int":   "int",
	"float": "D",
	"str":   "Lstring",
	"list":  "Llist",
	"set":   "Lset",
	"tuple": "Ltuple",
	"dict":  "Ldict",
	"None":  NoneDescriptor,
	"Any":   "Lobject",
}

// Descriptor maps a Python type name to its summary-spec type descriptor.
// Builtins map to fixed codes; any other name X is a reference type LX.
func Descriptor(name string) string {
	if d, ok := primitiveDescriptors[name]; ok {
		return d
	}
	return "L" + name
}
