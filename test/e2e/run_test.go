package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/kestrel/internal/irgen"
	"github.com/you-not-fish/kestrel/internal/syntax"
)

// TestE2E compiles every .ks file in testdata/ to LLVM IR, builds it with
// clang, runs the binary and compares its stdout with the .golden file.
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.ks")
	require.NoError(t, err)
	require.NotEmpty(t, testFiles, "no .ks test files found in testdata/")

	if _, err := exec.LookPath("clang"); err != nil {
		t.Skip("clang not found, skipping E2E tests")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".ks")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

func runE2ETest(t *testing.T, ksFile string) {
	t.Helper()

	expected, err := os.ReadFile(strings.TrimSuffix(ksFile, ".ks") + ".golden")
	require.NoError(t, err, "reading golden file")

	tmpDir := t.TempDir()
	llFile := filepath.Join(tmpDir, "output.ll")
	binFile := filepath.Join(tmpDir, "output")

	compileTo(t, ksFile, llFile)

	cmd := exec.Command("clang", "-Wno-override-module", llFile, "-o", binFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("clang failed:\n%s\n%v", out, err)
	}

	out, err := exec.Command(binFile).Output()
	if err != nil {
		t.Fatalf("binary execution failed: %v", err)
	}
	if got, want := string(out), string(expected); got != want {
		t.Errorf("output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

// compileTo runs the compiler in-process and writes LLVM IR to llFile.
// The target triple is left to clang's host default.
func compileTo(t *testing.T, ksFile, llFile string) {
	t.Helper()

	f, err := os.Open(ksFile)
	require.NoError(t, err)
	defer f.Close()

	list, err := syntax.Parse(ksFile, f)
	require.NoError(t, err, "parse")

	conf := irgen.DefaultConfig()
	conf.Triple = ""
	text, err := irgen.Compile(list, conf)
	require.NoError(t, err, "compile")

	require.NoError(t, os.WriteFile(llFile, []byte(text), 0o600))
}
