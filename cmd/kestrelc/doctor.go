package main

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the native toolchain is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd.OutOrStdout(), checkTool)
		},
	}
}

// toolChecker runs a tool and returns the first line of its output.
type toolChecker func(name string, args ...string) (string, bool)

func runDoctor(w io.Writer, check toolChecker) error {
	fmt.Fprintln(w, "Kestrel Toolchain Doctor")
	fmt.Fprintln(w, "========================")
	fmt.Fprintln(w)

	allOk := true

	// clang is required to turn the output into an executable.
	clangVersion, clangOk := check("clang", "--version")
	fmt.Fprintf(w, "clang:   %s", clangVersion)
	if clangOk {
		fmt.Fprintln(w, " ✓")
	} else {
		fmt.Fprintln(w, " ✗ (not found)")
		allOk = false
	}

	llcVersion, llcOk := check("llc", "--version")
	fmt.Fprintf(w, "llc:     %s", llcVersion)
	if llcOk {
		fmt.Fprintln(w, " ✓")
	} else {
		fmt.Fprintln(w, " (optional, not found)")
	}

	fmt.Fprintln(w)
	if allOk {
		fmt.Fprintln(w, "All required tools available!")
		return nil
	}
	return errors.New("some required tools are missing")
}

// checkTool runs name with args and returns the first line of its output.
func checkTool(name string, args ...string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "not found", false
	}
	out, err := exec.Command(path, args...).Output()
	if err != nil {
		return "error running " + name, false
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), true
}
