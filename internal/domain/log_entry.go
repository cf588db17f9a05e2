package domain

// LogEntry is one raw record from the device's system log. Time is kept
// as the opaque display string the device returned; RouterOS log
// timestamps are not guaranteed to parse.
type LogEntry struct {
	Time    string
	Message string
	Topics  string
}

// Malformed reports whether the entry is missing a required field and
// must be excluded from classification.
func (e LogEntry) Malformed() bool {
	return e.Time == "" || e.Message == ""
}
