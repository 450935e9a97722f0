package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the command tree with fresh flag state and captured output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, verbose, noColor = "", false, false
	tokensJSON, astJSON = false, false
	stdinPiped = func() bool { return false }

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)

	_, err := rootCmd.ExecuteC()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.c")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestRootHelp(t *testing.T) {
	out, _, err := execute(t)
	if err != nil {
		t.Fatalf("bare invocation failed: %v", err)
	}
	for _, want := range []string{"tokens", "ast", "check", "repl", "version"} {
		if !strings.Contains(out, want) {
			t.Errorf("help does not mention %q:\n%s", want, out)
		}
	}
}

func TestTokensSample(t *testing.T) {
	out, errOut, err := execute(t, "tokens")
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	if errOut != "" {
		t.Errorf("unexpected stderr output:\n%s", errOut)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 35 {
		t.Fatalf("printed %d token lines, want 35", len(lines))
	}
	if !strings.Contains(lines[0], "KEYWORD") || !strings.Contains(lines[0], `"int"`) {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[34], "line 7, col 1") {
		t.Errorf("last line = %q", lines[34])
	}
}

func TestTokensJSONOutput(t *testing.T) {
	out, _, err := execute(t, "tokens", "--json")
	if err != nil {
		t.Fatalf("tokens --json: %v", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 35 {
		t.Fatalf("decoded %d rows, want 35", len(rows))
	}
	first := rows[0]
	if first["kind"] != "KEYWORD" || first["lexeme"] != "int" {
		t.Errorf("first row = %v", first)
	}
	if first["line"] != float64(1) || first["column"] != float64(1) {
		t.Errorf("first row position = %v:%v", first["line"], first["column"])
	}
}

func TestTokensFromFile(t *testing.T) {
	path := writeSource(t, "int f() { }")

	out, _, err := execute(t, "tokens", path)
	if err != nil {
		t.Fatalf("tokens %s: %v", path, err)
	}
	if !strings.Contains(out, "IDENTIFIER") || !strings.Contains(out, `"f"`) {
		t.Errorf("output does not list the identifier:\n%s", out)
	}
}

func TestTokensMissingFile(t *testing.T) {
	_, _, err := execute(t, "tokens", filepath.Join(t.TempDir(), "absent.c"))
	if err == nil {
		t.Fatal("tokens on a missing file did not fail")
	}
}

func TestAstSample(t *testing.T) {
	out, errOut, err := execute(t, "ast")
	if err != nil {
		t.Fatalf("ast: %v", err)
	}
	if errOut != "" {
		t.Errorf("clean source produced stderr output:\n%s", errOut)
	}

	for _, want := range []string{"Program", "FuncDecl int main", "IfStmt", "ReturnStmt 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree is missing %q:\n%s", want, out)
		}
	}
}

func TestAstJSONOutput(t *testing.T) {
	out, _, err := execute(t, "ast", "--json")
	if err != nil {
		t.Fatalf("ast --json: %v", err)
	}

	var tree map[string]interface{}
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if tree["type"] != "Program" {
		t.Errorf("root type = %v, want Program", tree["type"])
	}
	decls, ok := tree["decls"].([]interface{})
	if !ok || len(decls) != 1 {
		t.Fatalf("decls = %v, want one declaration", tree["decls"])
	}
}

func TestAstPrintsPartialTree(t *testing.T) {
	path := writeSource(t, "int x = 1; int main() { return 0; }")

	out, errOut, err := execute(t, "ast", path)
	if err != nil {
		t.Fatalf("ast should not gate on diagnostics: %v", err)
	}
	if !strings.Contains(errOut, "unsupported construct") {
		t.Errorf("diagnostic missing from stderr:\n%s", errOut)
	}
	if !strings.Contains(out, "FuncDecl int main") {
		t.Errorf("partial tree missing from stdout:\n%s", out)
	}
}

func TestCheckSample(t *testing.T) {
	out, _, err := execute(t, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "sample: ok (1 declarations)") {
		t.Errorf("summary = %q", out)
	}
}

func TestCheckFailsOnDiagnostics(t *testing.T) {
	path := writeSource(t, "int x = 1;")

	_, errOut, err := execute(t, "check", path)
	if err == nil {
		t.Fatal("check accepted source with diagnostics")
	}
	if !strings.Contains(err.Error(), "1 diagnostics") {
		t.Errorf("err = %v", err)
	}
	if !strings.Contains(errOut, "unsupported construct: variable declaration") {
		t.Errorf("diagnostic missing from stderr:\n%s", errOut)
	}
}

func TestVersionOutput(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "minic v"+Version) {
		t.Errorf("version banner missing:\n%s", out)
	}
	if !strings.Contains(out, "OS/Arch") {
		t.Errorf("platform info missing:\n%s", out)
	}
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, _, err := execute(t, "check", "--config", filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("missing --config file did not fail")
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minic.toml")
	content := "[output]\nformat = \"xml\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := execute(t, "check", "--config", path)
	if err == nil {
		t.Fatal("invalid config value did not fail")
	}
	if !strings.Contains(err.Error(), "output.format") {
		t.Errorf("err = %v", err)
	}
}

func TestConfigSelectsJSONOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minic.toml")
	content := "[output]\nformat = \"json\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := execute(t, "tokens", "--config", path)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 35 {
		t.Errorf("decoded %d rows, want 35", len(rows))
	}
}

func TestVerboseEnablesDebugLogs(t *testing.T) {
	_, errOut, err := execute(t, "check", "-v")
	if err != nil {
		t.Fatalf("check -v: %v", err)
	}
	if !strings.Contains(errOut, "msg=checked") {
		t.Errorf("debug record missing from stderr:\n%s", errOut)
	}
}

func TestReadSourcePrecedence(t *testing.T) {
	stdinPiped = func() bool { return false }

	src, origin, err := readSource(nil)
	if err != nil {
		t.Fatalf("readSource: %v", err)
	}
	if origin != "sample" || src != sampleSource {
		t.Errorf("no args should fall back to the sample, got origin %q", origin)
	}

	path := writeSource(t, "int g() { }")
	src, origin, err = readSource([]string{path})
	if err != nil {
		t.Fatalf("readSource(%s): %v", path, err)
	}
	if origin != path || src != "int g() { }" {
		t.Errorf("file arg not honored: origin %q, src %q", origin, src)
	}
}
