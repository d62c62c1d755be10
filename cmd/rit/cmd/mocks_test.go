// Copyright © 2018 One Concern

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/oneconcern/rit/pkg/config"
	"github.com/oneconcern/rit/pkg/toolchain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testConfig = `{
  "deployment": {
    "universes": {"main": 123, "dev": 456},
    "places": {"main": {"Lobby": 1001, "Arena": 1002}}
  },
  "datastore": {"name": "Players", "scope": "v1"}
}`

type ExitMocks struct {
	mock.Mock
	messages []string
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	m.messages = append(m.messages, fmt.Sprintf(format, v...))
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	m.messages = append(m.messages, fmt.Sprint(v...))
}

func (m *ExitMocks) fatalCalls() int {
	return len(m.messages)
}

func MakeFatalfMock(m *ExitMocks) func(string, ...interface{}) {
	return func(format string, v ...interface{}) {
		m.Fatalf(format, v...)
	}
}

func MakeFatallnMock(m *ExitMocks) func(...interface{}) {
	return func(v ...interface{}) {
		m.Fatalln(v...)
	}
}

// recorder records the requests received by the fake Open Cloud server
type recorder struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
}

func (r *recorder) wrap(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)
		r.mu.Lock()
		r.requests = append(r.requests, req)
		r.bodies = append(r.bodies, string(b))
		r.mu.Unlock()
		h(w, req)
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func (r *recorder) last() *http.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[len(r.requests)-1]
}

type fakeRunner struct {
	calls [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if name == "rojo" {
		output := args[len(args)-1]
		return afero.WriteFile(projectFs, output, []byte("<roblox!>"), 0o644)
	}
	return nil
}

type cliEnv struct {
	out    *bytes.Buffer
	exit   *ExitMocks
	cloud  *recorder
	runner *fakeRunner
}

// setupCLI patches the file system, the environment, the exit functions and Open Cloud
func setupCLI(t *testing.T, env map[string]string, handler http.HandlerFunc) *cliEnv {
	e := &cliEnv{
		out:    &bytes.Buffer{},
		exit:   new(ExitMocks),
		cloud:  &recorder{},
		runner: &fakeRunner{},
	}
	if handler == nil {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}
	}
	srv := httptest.NewServer(e.cloud.wrap(handler))

	projectFs = afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(projectFs, config.PrimaryPath, []byte(testConfig), 0o644))
	lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	logFatalf = MakeFatalfMock(e.exit)
	logFatalln = MakeFatallnMock(e.exit)
	newToolRunner = func(*cobra.Command) toolchain.Runner { return e.runner }
	viper.Set(openCloudURLKey, srv.URL)
	viper.Set(logLevelKey, "none")

	resetFlags(rootCmd)
	rootCmd.SetOut(e.out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(""))

	t.Cleanup(func() {
		srv.Close()
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})
	return e
}

func (e *cliEnv) run(t *testing.T, args ...string) {
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
}

// resetFlags restores the default value of every flag, since flags outlive a single execution
func resetFlags(c *cobra.Command) {
	for _, flags := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
		flags.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
