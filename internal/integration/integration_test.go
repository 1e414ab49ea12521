// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chromsplit/internal/app"
)

const genome = `>chr1 AC:CM000663.2 gi|568336023 LN:248956422
ACGT
ACGT
>chr1_KI270706v1_random
NNNN
>chrM
TTTT
>chr10 AC:CM000672.2
GGCC
>chrX
AT
`

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "GRCh38.fa", genome)
	outDir := filepath.Join(dir, "chroms")

	code, _, stderr := run(t, "-o", outDir, fa)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr)
	}

	want := map[string]string{
		"chr1.fa":  ">1 AC:CM000663.2 gi|568336023 LN:248956422\nACGT\nACGT\n",
		"chr10.fa": ">10 AC:CM000672.2\nGGCC\n",
		"chrX.fa":  ">X\nAT\n",
	}
	ents, _ := os.ReadDir(outDir)
	if len(ents) != len(want) {
		var names []string
		for _, e := range ents {
			names = append(names, e.Name())
		}
		t.Fatalf("files = %v", names)
	}
	for name, body := range want {
		got, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != body {
			t.Fatalf("%s = %q want %q", name, got, body)
		}
	}
	if !strings.Contains(stderr, "chr10.fa") {
		t.Fatalf("expected progress log on stderr, got %q", stderr)
	}
}

func TestSplitSubcommandMatchesDefault(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "in.fa", genome)
	a, b := filepath.Join(dir, "a"), filepath.Join(dir, "b")

	if code, _, e := run(t, "-q", "-o", a, fa); code != 0 {
		t.Fatalf("default: %d %s", code, e)
	}
	if code, _, e := run(t, "split", "-q", "-o", b, fa); code != 0 {
		t.Fatalf("split: %d %s", code, e)
	}
	for _, name := range []string{"chr1.fa", "chr10.fa", "chrX.fa"} {
		x, _ := os.ReadFile(filepath.Join(a, name))
		y, _ := os.ReadFile(filepath.Join(b, name))
		if !bytes.Equal(x, y) {
			t.Fatalf("%s differs between default and split", name)
		}
	}
}

func TestQuietKeepsStderrClean(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "in.fa", genome)
	code, stdout, stderr := run(t, "--quiet", "-o", dir, fa)
	if code != 0 || stdout != "" || stderr != "" {
		t.Fatalf("code=%d stdout=%q stderr=%q", code, stdout, stderr)
	}
}

func TestLegacyPlaceholder(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "in.fa", ">chrM\nAC\n")
	out := filepath.Join(dir, "out")
	if code, _, e := run(t, "-q", "--legacy-placeholder", "-o", out, fa); code != 0 {
		t.Fatalf("exit %d: %s", code, e)
	}
	info, err := os.Stat(filepath.Join(out, "tmp"))
	if err != nil || info.Size() != 0 {
		t.Fatalf("tmp placeholder: %v %v", info, err)
	}
}

func TestDryRun(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "in.fa", genome)
	out := filepath.Join(dir, "out")
	if code, _, e := run(t, "--dry-run", "-o", out, fa); code != 0 {
		t.Fatalf("exit %d: %s", code, e)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("dry run created %s", out)
	}
}

func TestEnvOutDir(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "in.fa", ">chr2\nGG\n")
	out := filepath.Join(dir, "env-out")
	t.Setenv("CHROMSPLIT_OUT_DIR", out)
	if code, _, e := run(t, "-q", fa); code != 0 {
		t.Fatalf("exit %d: %s", code, e)
	}
	if got, _ := os.ReadFile(filepath.Join(out, "chr2.fa")); string(got) != ">2\nGG\n" {
		t.Fatalf("chr2.fa = %q", got)
	}
}

func TestMissingInput(t *testing.T) {
	code, _, stderr := run(t, "-o", t.TempDir(), filepath.Join(t.TempDir(), "absent.fa"))
	if code != 1 {
		t.Fatalf("exit %d want 1", code)
	}
	if !strings.Contains(stderr, "absent.fa") {
		t.Fatalf("stderr should name the file: %q", stderr)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{"split"},
		{"a.fa", "b.fa"},
		{"--no-such-flag", "a.fa"},
		{"--log-level", "loud", "a.fa"},
		{"summary", "--format", "xml"},
	}
	for _, argv := range cases {
		if code, _, _ := run(t, argv...); code != 2 {
			t.Errorf("%v: exit %d want 2", argv, code)
		}
	}
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := run(t)
	if code != 0 || !strings.Contains(out, "canonical chromosome") {
		t.Fatalf("help: code=%d out=%q", code, out)
	}
	code, out, _ = run(t, "version")
	if code != 0 || !strings.HasPrefix(out, "chromsplit version ") {
		t.Fatalf("version: code=%d out=%q", code, out)
	}
	code, out, _ = run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "chromsplit version ") {
		t.Fatalf("--version: code=%d out=%q", code, out)
	}
}

func TestChromosomes(t *testing.T) {
	code, out, _ := run(t, "chromosomes")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if code != 0 || len(lines) != 24 || lines[0] != "chr1" || lines[23] != "chrY" {
		t.Fatalf("code=%d lines=%v", code, lines)
	}
}

func TestSummaryAfterSplit(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "in.fa", genome)
	out := filepath.Join(dir, "out")
	if code, _, e := run(t, "-q", "-o", out, fa); code != 0 {
		t.Fatalf("split exit %d: %s", code, e)
	}

	code, stdout, e := run(t, "summary", "--format", "json", out)
	if code != 0 {
		t.Fatalf("summary exit %d: %s", code, e)
	}
	var entries []struct {
		Chrom  string `json:"chrom"`
		ID     string `json:"id"`
		Length int    `json:"length"`
	}
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("summary json: %v\n%s", err, stdout)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %+v", entries)
	}
	// karyotype order: chr1, chr10, chrX
	if entries[0].Chrom != "chr1" || entries[0].ID != "1" || entries[0].Length != 8 {
		t.Fatalf("chr1 entry = %+v", entries[0])
	}
	if entries[1].Chrom != "chr10" || entries[2].Chrom != "chrX" {
		t.Fatalf("order = %+v", entries)
	}
}

func TestReportToStdout(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "in.fa", genome)
	code, stdout, e := run(t, "-q", "--dry-run", "--report", "-", fa)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, e)
	}
	var r struct {
		Input    string   `json:"input"`
		DryRun   bool     `json:"dry_run"`
		Headers  int      `json:"headers"`
		Selected int      `json:"selected"`
		Skipped  int      `json:"skipped"`
		Files    []string `json:"files"`
	}
	if err := json.Unmarshal([]byte(stdout), &r); err != nil {
		t.Fatalf("report json: %v\n%s", err, stdout)
	}
	if r.Input != fa || !r.DryRun || r.Headers != 5 || r.Selected != 3 || r.Skipped != 2 {
		t.Fatalf("report = %+v", r)
	}
	if strings.Join(r.Files, ",") != "chr1.fa,chr10.fa,chrX.fa" {
		t.Fatalf("files = %v", r.Files)
	}
}
