package update

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"testing"

	"github.com/ipkit/ipkit/pkg/ip"
	"github.com/ipkit/ipkit/pkg/oslink"
	"github.com/ipkit/ipkit/pkg/scope"
	"gotest.tools/assert"
)

const v4XML = `<registry><title>v4</title><registry><title>v4-1</title>
<record><address>192.0.2.0/24</address><name>Documentation (TEST-NET-1)</name></record>
<record><address>10.0.0.0/8</address><name>Private-Use</name></record>
</registry></registry>`

const v6XML = `<registry><title>v6</title><registry><title>v6-1</title>
<record><address>2001:db8::/32</address><name>Documentation</name></record>
<record><address>::1/128</address><name>Loopback Address</name></record>
</registry></registry>`

func run(args ...string) (int, string) {
	var stderr bytes.Buffer
	d := oslink.Data{
		Args:   append([]string{"update-iana-scopes"}, args...),
		Stdout: &bytes.Buffer{},
		Stderr: &stderr,
	}
	return Main(d), stderr.String()
}

func TestUpdateWritesTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v4":
				w.Write([]byte(v4XML))
			case "/v6":
				w.Write([]byte(v6XML))
			default:
				http.NotFound(w, r)
			}
		}))
	defer srv.Close()

	out := path.Join(t.TempDir(), "scopes.yaml")
	status, stderr := run(
		"--v4-url", srv.URL+"/v4",
		"--v6-url", srv.URL+"/v6",
		"-o", out, "-q")
	assert.Equal(t, status, 0, stderr)

	// The generated file loads as a scope table and classifies with the
	// catch-alls appended.
	f, err := os.Open(out)
	assert.NilError(t, err)
	defer f.Close()
	tbl, err := scope.LoadTable(f)
	assert.NilError(t, err)
	assert.Equal(t, tbl.AddressScope(ip.MustParseAddress("192.0.2.1")),
		"DOCUMENTATION")
	assert.Equal(t, tbl.AddressScope(ip.MustParseAddress("8.8.8.8")),
		"GLOBAL UNICAST")
	assert.Equal(t, tbl.AddressScope(ip.MustParseAddress("::1")),
		"LOOPBACK ADDRESS")
	assert.Equal(t, tbl.AddressScope(ip.MustParseAddress("2600::1")),
		"GLOBAL UNICAST")
	// /128 sorted before /32.
	assert.Equal(t, tbl.Entries(ip.V6)[0].Label, "LOOPBACK ADDRESS")
}

func TestUpdateFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	out := path.Join(t.TempDir(), "scopes.yaml")
	status, stderr := run(
		"--v4-url", srv.URL+"/missing",
		"--v6-url", srv.URL+"/missing",
		"-o", out, "-q", "--timeout", "2s")
	assert.Equal(t, status, 1)
	assert.Assert(t, stderr != "")
}

func TestUpdateRejectsArguments(t *testing.T) {
	status, stderr := run("unexpected")
	assert.Equal(t, status, 1)
	assert.Assert(t, stderr != "")
}
