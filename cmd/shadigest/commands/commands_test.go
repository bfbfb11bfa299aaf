package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadigest/internal/app"
	"shadigest/internal/report"
)

const abcHex = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestSumStdin(t *testing.T) {
	out, _, err := run(t, "abc", "sum")
	require.NoError(t, err)
	assert.Equal(t, abcHex+"  -\n", out)
}

func TestSumFilesJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	out, _, err := run(t, "", "sum", "--format", "json", path)
	require.NoError(t, err)

	var entries []report.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, abcHex, entries[0].Digest)
	assert.Equal(t, report.AlgSHA256, entries[0].Algorithm)
}

func TestSumDoubleGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	out, _, err := run(t, buf.String(), "sum", "--decompress", "gzip", "--double")
	require.NoError(t, err)
	assert.Equal(t, "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358  -\n", out)
}

func TestSumMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	_, errOut, err := run(t, "", "sum", filepath.Join(dir, "nope"))
	assert.Error(t, err)
	assert.Contains(t, errOut, "hash failed")
}

func TestSumOutputFileThenCheck(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(data, []byte("abc"), 0o600))
	manifest := filepath.Join(dir, "SHA256SUMS")

	out, _, err := run(t, "", "sum", "-o", manifest, data)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Equal(t, abcHex+"  "+data+"\n", string(written))

	out, _, err = run(t, "", "check", manifest)
	require.NoError(t, err)
	assert.Equal(t, data+": OK\n", out)

	require.NoError(t, os.WriteFile(data, []byte("abd"), 0o600))
	out, _, err = run(t, "", "check", manifest)
	assert.ErrorIs(t, err, app.ErrChecksumMismatch)
	assert.Equal(t, data+": FAILED\n", out)
}

func TestCheckQuietFromStdin(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(data, []byte("abc"), 0o600))

	out, _, err := run(t, abcHex+"  "+data+"\n", "check", "-q", "-")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckStdinManifestListingStdin(t *testing.T) {
	out, _, err := run(t, abcHex+"  -\n", "check", "-")
	assert.ErrorIs(t, err, errStdinTwice)
	assert.Empty(t, out)
}

func TestCheckFileManifestListingStdin(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "SHA256SUMS")
	require.NoError(t, os.WriteFile(manifest, []byte(abcHex+"  -\n"), 0o600))

	out, _, err := run(t, "abc", "check", manifest)
	require.NoError(t, err)
	assert.Equal(t, "-: OK\n", out)
}

func TestSumHexInput(t *testing.T) {
	out, _, err := run(t, "61 62\n63\n", "sum", "--decompress", "hex")
	require.NoError(t, err)
	assert.Equal(t, abcHex+"  -\n", out)
}

func TestSumStdinTwice(t *testing.T) {
	out, _, err := run(t, "abc", "sum", "-", "-")
	require.NoError(t, err)
	assert.Equal(t, abcHex+"  -\n"+
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855  -\n", out)
}

func TestCheckMalformedManifest(t *testing.T) {
	_, _, err := run(t, "garbage\n", "check", "-")
	assert.ErrorIs(t, err, report.ErrMalformedLine)
}

func TestUnknownFormatFlag(t *testing.T) {
	_, _, err := run(t, "abc", "sum", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestSelftest(t *testing.T) {
	out, _, err := run(t, "", "selftest")
	require.NoError(t, err)
	assert.Equal(t, len(knownAnswers()), strings.Count(out, "PASS"))
	assert.NotContains(t, out, "FAIL")
}
