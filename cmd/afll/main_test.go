package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hrithik-sp/afll/internal/config"
)

func writeTempFile(t *testing.T, name, src string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(src), 0o600))
	return filename
}

// execute runs the CLI with args and returns what it wrote.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTokens(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "x = 5;\nprint(\"hi\");")
	out, _, err := execute(t, "", "tokens", filename)
	require.NoError(t, err)

	for _, want := range []string{
		"POSITION", "TOKEN", "LITERAL",
		`1:1          IDENTIFIER   "x"`,
		`1:3          EQUALS       "="`,
		`1:5          NUMBER       "5"`,
		`1:6          SEMICOLON    ";"`,
		`2:7          STRING       "\"hi\""`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Errors:")
}

func TestTokensIllegalCharacter(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "x = 5 % 2;")
	out, _, err := execute(t, "", "tokens", filename)
	require.ErrorIs(t, err, errFailed)

	assert.Contains(t, out, "Errors:")
	assert.Contains(t, out, "illegal character '%' (line 1)")
	assert.Contains(t, out, `NUMBER       "2"`)
}

func TestTokensMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "tokens", filepath.Join(t.TempDir(), "nope.afl"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errFailed)
}

func TestParseText(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "x = 5 + 3 * (10 - 4);")
	out, stderr, err := execute(t, "", "parse", filename)
	require.NoError(t, err)

	assert.Empty(t, stderr)
	assert.Contains(t, out, "AssignStmt")
	assert.Contains(t, out, "(5 + (3 * (10 - 4)))")
}

func TestParseJSON(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "def f(): return 0;")
	out, _, err := execute(t, "", "parse", "--format", "json", filename)
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "Program", tree["type"])
	stmts := tree["stmts"].([]interface{})
	require.Len(t, stmts, 1)
	assert.Equal(t, "FuncDef", stmts[0].(map[string]interface{})["type"])
}

func TestParseYAML(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "for i in range(3) { break; }")
	out, _, err := execute(t, "", "parse", "-f", "yaml", filename)
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &tree))
	stmts := tree["stmts"].([]interface{})
	loop := stmts[0].(map[string]interface{})
	assert.Equal(t, "ForStmt", loop["type"])
	assert.Equal(t, 3, loop["range"])
}

func TestParseStdin(t *testing.T) {
	out, _, err := execute(t, "f(a, 1);", "parse", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "CallStmt")
	assert.Contains(t, out, "Fun: f")
}

func TestParseSyntaxError(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "x = 1;\ny = ;")
	out, stderr, err := execute(t, "", "parse", filename)
	require.ErrorIs(t, err, errFailed)

	assert.Empty(t, out)
	assert.Contains(t, stderr, "syntax error at ';' (line 2)")
}

func TestParseSyntaxErrorAtEOF(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "if (x > 1) {")
	_, stderr, err := execute(t, "", "parse", filename)
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, stderr, "syntax error at EOF")
}

func TestParseLexicalErrorIsWarning(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "x = 1 $;")
	out, stderr, err := execute(t, "", "parse", filename)
	require.NoError(t, err)

	assert.Contains(t, stderr, "illegal character '$' (line 1)")
	assert.Contains(t, out, "AssignStmt")
}

func TestParseUnknownFormat(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "f();")
	_, _, err := execute(t, "", "parse", "--format", "xml", filename)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestParseFormatFromConfig(t *testing.T) {
	cfgFile := writeTempFile(t, "afll.yaml", "output:\n  format: json\n")
	filename := writeTempFile(t, "a.afl", "f();")

	out, _, err := execute(t, "", "--config", cfgFile, "parse", filename)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)

	// An explicit flag wins over the file.
	out, _, err = execute(t, "", "--config", cfgFile, "parse", "--format", "text", filename)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Program "), out)
}

func TestBadConfig(t *testing.T) {
	cfgFile := writeTempFile(t, "afll.toml", "[log]\nlevel = \"loud\"\n")
	_, _, err := execute(t, "", "--config", cfgFile, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestDebugLogging(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "f();")
	_, stderr, err := execute(t, "", "--log-level", "debug", "parse", filename)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Parsing complete")
	assert.Contains(t, stderr, "nodes=3")
}

func TestJSONLogging(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "f();")
	_, stderr, err := execute(t, "", "--log-level", "debug", "--log-format", "json", "tokens", filename)
	require.NoError(t, err)

	var sawLexing bool
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var rec map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if rec["msg"] == "Lexing complete" {
			sawLexing = true
			assert.Equal(t, float64(4), rec["tokens"])
		}
	}
	assert.True(t, sawLexing, stderr)
}

func TestCheck(t *testing.T) {
	good := writeTempFile(t, "good.afl", "x = 1;\ny = 2;")
	bad := writeTempFile(t, "bad.afl", "x = ;")
	dirty := writeTempFile(t, "dirty.afl", "x = 1 @;")

	out, _, err := execute(t, "", "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, good+" (2 statements)")

	out, _, err = execute(t, "", "check", good, bad, dirty)
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "FAIL "+bad)
	assert.Contains(t, out, "FAIL "+dirty)
	assert.Contains(t, out, "illegal character '@'")
	assert.Contains(t, out, "2 of 3 files failed")
	assert.Equal(t, 1, strings.Count(out, bad), "file named once: %s", out)
	assert.Equal(t, 1, strings.Count(out, dirty), "file named once: %s", out)
}

func TestCheckLargeInteger(t *testing.T) {
	filename := writeTempFile(t, "big.afl", "x = 99999999999999999999;")
	out, stderr, err := execute(t, "", "check", filename)
	require.NoError(t, err)
	assert.Contains(t, out, filename+" (1 statements)")
	assert.Empty(t, stderr)
}

func TestDiagnosticsPrintedOnce(t *testing.T) {
	filename := writeTempFile(t, "a.afl", "x = 1 $;\ny = ;")
	_, stderr, err := execute(t, "", "parse", filename)
	require.ErrorIs(t, err, errFailed)

	assert.Equal(t, 1, strings.Count(stderr, "illegal character '$'"), stderr)
	assert.Equal(t, 1, strings.Count(stderr, "syntax error at ';'"), stderr)
	assert.NotContains(t, stderr, "level=")
}

func TestCheckRequiresFile(t *testing.T) {
	_, _, err := execute(t, "", "check")
	require.Error(t, err)
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "", "demo")
	require.NoError(t, err)

	assert.Equal(t, len(samples), strings.Count(out, "Parse successful!"))
	assert.NotContains(t, out, "Parse failed")
	assert.Contains(t, out, "x = 5 + 3 * (10 - 4);")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "afll version "+Version)
	assert.Contains(t, out, "go version")
}

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", `""`},
		{"x", `"x"`},
		{`"a b"`, `"\"a b\""`},
		{"\"a\nb\"", `"\"a\nb\""`},
		{"\t", `"\t"`},
		{`\`, `"\\"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatLiteral(tt.in), "formatLiteral(%q)", tt.in)
	}
}
