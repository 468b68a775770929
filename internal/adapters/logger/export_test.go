package logger

// ErrorEntry exposes one collected chain entry to tests.
type ErrorEntry = errorEntry

// Message returns the entry's own message.
func (e errorEntry) Message() string { return e.message }

// Metadata returns the entry's metadata.
func (e errorEntry) Metadata() map[string]any { return e.metadata }

// CollectErrorEntries exposes collectErrorEntries to tests.
func CollectErrorEntries(err error) []ErrorEntry { return collectErrorEntries(err) }

// FormatErrorEntries exposes formatErrorEntries to tests.
func FormatErrorEntries(entries []ErrorEntry) string { return formatErrorEntries(entries) }
