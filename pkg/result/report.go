package result

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
)

// Hooks for the fatal path, swapped out by tests.
var (
	diagOut io.Writer = os.Stderr
	exit              = os.Exit
)

// reportFatal writes the unwrap/expect diagnostic and terminates the process.
// The payload is the value of the state the caller did not expect: the error
// value on a failed unwrap, the success value on a failed unwrap_err. A Unit
// payload is omitted; integer-kind payloads (enums included) are rendered as
// their numeric value, never through a String method.
func reportFatal(msg string, payload any) {
	if _, isUnit := payload.(Unit); isUnit {
		fmt.Fprintln(diagOut, msg)
	} else {
		fmt.Fprintf(diagOut, "%s: %s\n", msg, formatPayload(payload))
	}
	exit(1)
}

func formatPayload(payload any) string {
	v := reflect.ValueOf(payload)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return fmt.Sprintf("%v", payload)
	}
}
