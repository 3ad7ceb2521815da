package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("BLASBRIDGE_CONFIG", "")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level=error"))
	require.NoError(t, root.Execute(), out.String())
	return out.String()
}

func TestGemmStatic(t *testing.T) {
	require.Equal(t, "[5 11]\n[11 25]\n", run(t, "gemm"))
	require.Equal(t, "[5 11]\n[11 25]\n", run(t, "gemm", "--order=col", "--kind=float32"))
	require.Equal(t, "[(5+0i) (11+0i)]\n[(11+0i) (25+0i)]\n", run(t, "gemm", "--kind=complex128"))
	require.Equal(t, "[1]\n", run(t, "gemm", "--size=1"))
}

func TestGemmInjected(t *testing.T) {
	require.Equal(t, "[14 32 50]\n[32 77 122]\n[50 122 194]\n",
		run(t, "gemm", "--size=3", "--inject", "--inject-width=wide"))
	require.Contains(t, run(t, "info"), "Injected backend: ILP64 [dgemm_ zgemm_ sgemm_ cgemm_]")
}

func TestInfo(t *testing.T) {
	out := run(t, "info")
	require.Contains(t, out, "Static library: ")
	require.Contains(t, out, "GOARCH: ")
}

func TestBadConfig(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"gemm", "--kind=int8"})
	require.Error(t, root.Execute())
}
