package validation

// Error messages
const (
	ErrMsgSchemaViolation   = "schema validation failed"
	ErrMsgParseData         = "failed to parse JSON data"
	ErrMsgReadSchema        = "failed to read schema file"
	ErrMsgParseSchema       = "failed to parse schema JSON"
	ErrMsgAddSchemaResource = "failed to add schema resource"
	ErrMsgCompileSchema     = "failed to compile schema"
	ErrMsgGetWorkingDir     = "failed to get current directory"

	ErrFmtReadDataFile   = "failed to read data file %s: %w"
	ErrFmtLoadSchema     = "failed to load schema %s: %w"
	ErrFmtSchemaNotFound = "schema file not found: %s (searched from %s)"
)
