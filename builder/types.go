package builder

// FieldType is the wire type a raw value is coerced to before binding
type FieldType int

const (
	String FieldType = iota
	Integer
	Decimal
)

// String returns the type name
func (t FieldType) String() string {
	switch t {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// LogicalType returns the dialect type name used when rendering DDL
func (t FieldType) LogicalType() string {
	switch t {
	case Integer:
		return "bigint"
	case Decimal:
		return "decimal"
	default:
		return "string"
	}
}
