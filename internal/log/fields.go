package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldRepo      = "repo"
	FieldFile      = "file"
	FieldFormat    = "format"
	FieldAccount   = "account"
	FieldCount     = "count"
	FieldSkipped   = "skipped"
	FieldMonth     = "month"
	FieldCategory  = "category"
)

// Component names.
const (
	ComponentApp       = "app"
	ComponentImport    = "import"
	ComponentLedger    = "ledger"
	ComponentDashboard = "dashboard"
	ComponentDemo      = "demo"
	ComponentConfig    = "config"
)

// Operation names.
const (
	OpInit       = "init"
	OpImport     = "import"
	OpCategorize = "categorize"
	OpAppend     = "append"
	OpAggregate  = "aggregate"
	OpGenerate   = "generate"
)
