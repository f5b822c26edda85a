package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Expand bool
	Close  bool
	Inst   bool
	Model  bool
	Oracle bool
}

var d *debug

func init() {
	d = &debug{}
	d.Expand = boolEnv("TRI_DEBUG_EXPAND")
	d.Close = boolEnv("TRI_DEBUG_CLOSE")
	d.Inst = boolEnv("TRI_DEBUG_INST")
	d.Model = boolEnv("TRI_DEBUG_MODEL")
	d.Oracle = boolEnv("TRI_DEBUG_ORACLE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Expand() bool {
	return d.Expand
}
func Close() bool {
	return d.Close
}
func Inst() bool {
	return d.Inst
}
func Model() bool {
	return d.Model
}
func Oracle() bool {
	return d.Oracle
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
