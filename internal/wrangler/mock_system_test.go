package wrangler

import "context"

// mockSystem records collaborator calls and plays back scripted results.
type mockSystem struct {
	lookPathErr error

	runErr   error
	runPath  string
	runArgs  []string
	runEnv   []string
	runCalls int

	output    []byte
	outputErr error

	environ []string
}

func (m *mockSystem) LookPath(file string) (string, error) {
	if m.lookPathErr != nil {
		return "", m.lookPathErr
	}
	return "/usr/local/bin/" + file, nil
}

func (m *mockSystem) RunInteractive(path string, args []string, env []string) error {
	m.runCalls++
	m.runPath = path
	m.runArgs = args
	m.runEnv = env
	return m.runErr
}

func (m *mockSystem) Output(_ context.Context, _ string, _ ...string) ([]byte, error) {
	return m.output, m.outputErr
}

func (m *mockSystem) Environ() []string {
	return append([]string(nil), m.environ...)
}
