package debug

import (
	"fmt"
	"os"
)

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
