package logger

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ConsoleFormatter prints entries the way console output looks in CloudWatch:
// the message alone, followed by raw values when present.
type ConsoleFormatter struct{}

// Format implements logrus.Formatter.
func (f *ConsoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(entry.Message)
	if values, ok := entry.Data[ValuesKey]; ok {
		fmt.Fprintf(&b, " %v", values)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
