package cmd

import (
	"bytes"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// executeCommand is a helper function to execute a cobra command and return the output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	return executeCommandWithInput(root, "", args...)
}

// executeCommandWithInput executes a cobra command with input as its standard input.
func executeCommandWithInput(root *cobra.Command, input string, args ...string) (string, error) {
	_, output, err := executeCommandC(root, strings.NewReader(input), args...)
	return output, err
}

// executeCommandC is a helper function to execute a cobra command and return the output.
func executeCommandC(root *cobra.Command, in io.Reader, args ...string) (*cobra.Command, string, error) {
	buf := new(bytes.Buffer)
	root.SetIn(in)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err := root.ExecuteC()

	return c, buf.String(), err
}

// newTestRootCmd returns a fresh command tree so flag state never leaks between tests.
func newTestRootCmd() *cobra.Command {
	rootCmd := NewRootCmd()
	rootCmd.AddCommand(NewRandomCmd())
	rootCmd.AddCommand(NewTagsCmd())
	rootCmd.AddCommand(NewExportCmd())
	return rootCmd
}
