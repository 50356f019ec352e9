package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThomasCrouzet/kompose/internal/model"
)

type fakeStatusEngine struct {
	containers []model.Container
	err        error
	closed     bool
}

func (f *fakeStatusEngine) Containers(context.Context) ([]model.Container, error) {
	return f.containers, f.err
}

func (f *fakeStatusEngine) NetworkIPs(context.Context, string) (map[string]string, error) {
	return map[string]string{"app": "172.20.0.5", "app-db": ""}, nil
}

func (f *fakeStatusEngine) ContainerMemory(context.Context, string) (model.Memory, error) {
	return model.Memory{Usage: 64 << 20, Limit: 8 << 30}, nil
}

func (f *fakeStatusEngine) MemTotal(context.Context) (uint64, error) {
	return 8 << 30, nil
}

func (f *fakeStatusEngine) Close() error {
	f.closed = true
	return nil
}

func useEngine(t *testing.T, e *fakeStatusEngine) {
	t.Helper()
	prev := newStatusEngine
	newStatusEngine = func() (statusEngine, error) { return e, nil }
	t.Cleanup(func() { newStatusEngine = prev })
}

func TestStatus(t *testing.T) {
	twoServices(t)
	engine := &fakeStatusEngine{containers: []model.Container{
		{ID: "1", Name: "app", Project: "app", State: model.StateRunning, Status: "Up 2 hours"},
		{ID: "2", Name: "app-db", Project: "app", State: model.StateExited, Status: "Exited (0)"},
		{ID: "3", Name: "stray", Project: "other", State: model.StateRunning},
	}}
	useEngine(t, engine)

	out, _, err := execute(t, "status")
	assert.NoError(t, err)
	assert.Contains(t, out, "172.20.0.5")
	assert.Contains(t, out, "app-db")
	assert.NotContains(t, out, "stray")
	assert.Contains(t, out, "1/2 container(s) running")
	assert.True(t, engine.closed)
}

func TestStatusListFailure(t *testing.T) {
	twoServices(t)
	useEngine(t, &fakeStatusEngine{err: errors.New("daemon down")})

	_, errOut, err := execute(t, "status")
	requireExitCode(t, err, 1)
	assert.Contains(t, errOut, "daemon down")
}

func TestStatusNoServices(t *testing.T) {
	setupWorkspace(t, map[string]string{"nas/.keep": ""})
	useEngine(t, &fakeStatusEngine{})

	out, _, err := execute(t, "status")
	assert.NoError(t, err)
	assert.Contains(t, out, "No services found")
}

func TestStatusNoContainers(t *testing.T) {
	twoServices(t)
	useEngine(t, &fakeStatusEngine{})

	out, _, err := execute(t, "status")
	assert.NoError(t, err)
	assert.Contains(t, out, "No containers found")
}
