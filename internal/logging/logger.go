// Package logging emits one JSON object per line via the standard log
// package. It is deliberately small: the engine packages never log, and the
// hosting layers only need leveled lines with a few fields.
package logging

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Fields carries structured context for one log line.
type Fields map[string]interface{}

func emit(level, msg string, fields Fields) {
	line := make(Fields, len(fields)+3)
	for k, v := range fields {
		line[k] = v
	}
	line["level"] = level
	line["time"] = time.Now().UTC().Format(time.RFC3339)
	line["msg"] = msg

	b, err := json.Marshal(line)
	if err != nil {
		// plain fallback; Fields values are not guaranteed marshalable
		log.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	log.Println(string(b))
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	emit("info", msg, fields)
}

// Error logs an error message, folding the error text into the fields.
func Error(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	emit("error", msg, fields)
}

// Fatal logs like Error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	emit("fatal", msg, fields)
	os.Exit(1)
}
