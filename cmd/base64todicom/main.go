// base64todicom decodes a base64 payload back into the binary file it encodes,
// typically a DICOM image exported as text.
package main

import (
	"io"
	"os"

	"github.com/morningowl/dicomcraft/converter"
)

// version is overwritten by make.
var version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command and maps its outcome to the process exit code.
// Every failure, including bad usage, is reported on stdout and exits with 1.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		converter.NewReporter(stdout).Failed(err)
		return 1
	}
	return 0
}
