package symbols

// VarType is the closed set of declarable types.
type VarType string

const (
	TypeInteger VarType = "integer"
	TypeLongint VarType = "longint"
	TypeBool    VarType = "bool"
)

type SymbolInfo struct {
	Type VarType
}
