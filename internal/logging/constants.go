package logging

// Field names shared by every component so log lines can be filtered
// consistently.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldChartFile  = "chart_file"
	FieldSchemaFile = "schema_file"
	FieldMonth      = "month"
	FieldColumn     = "column"
	FieldRow        = "row"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldPolicy     = "schema_policy"
	FieldRule       = "import_rule"
	FieldFormat     = "format"
	FieldStage      = "stage"
	FieldError      = "error"
)
