package logging

// Standardized field names for structured logging. These constants keep the
// application's log output consistent and easy to filter.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldPage       = "page"
	FieldPages      = "pages"
	FieldCount      = "count"
	FieldWorkers    = "workers"
	FieldDirectory  = "directory"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldStatus     = "status"
)
