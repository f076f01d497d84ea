package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldBookID is the standardized structured logging key for book identifiers.
	FieldBookID = "book_id"
	// FieldBorrowerID is the standardized structured logging key for borrower identifiers.
	FieldBorrowerID = "borrower_id"
	// FieldReason carries the error kind of a rejected operation.
	FieldReason = "reason"
	// FieldSessionID is the standardized structured logging key for process session identifiers.
	FieldSessionID = "session_id"
	// FieldCommand names the desk command that produced a record.
	FieldCommand = "command"
	// FieldInvocation is the CLI command path of the running process.
	FieldInvocation = "invocation"
)
