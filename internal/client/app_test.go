package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/mock"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/internal/tui"
)

type fakeUI struct {
	err error
	ran bool
}

func (f *fakeUI) Run(context.Context) error {
	f.ran = true
	return f.err
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockGalleryJob) {
	t.Helper()

	job := mock.NewMockGalleryJob(gomock.NewController(t))
	app, err := NewApp(&service.ClientServices{GalleryJob: job}, ui, config.ClientWorkers{RefreshInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)

	return app, job
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_RunsJobAroundUI(t *testing.T) {
	ui := &fakeUI{}
	app, job := newTestApp(t, ui)

	gomock.InOrder(
		job.EXPECT().Start(gomock.Any(), time.Minute),
		job.EXPECT().Stop(),
	)

	require.NoError(t, app.run(context.Background()))
	assert.True(t, ui.ran)
}

func TestApp_UserQuitIsNotAnError(t *testing.T) {
	app, job := newTestApp(t, &fakeUI{err: tui.ErrUserQuit})
	job.EXPECT().Start(gomock.Any(), gomock.Any())
	job.EXPECT().Stop()

	assert.NoError(t, app.run(context.Background()))
}

func TestApp_UIErrorIsReturned(t *testing.T) {
	boom := errors.New("terminal gone")
	app, job := newTestApp(t, &fakeUI{err: boom})
	job.EXPECT().Start(gomock.Any(), gomock.Any())
	job.EXPECT().Stop()

	assert.ErrorIs(t, app.run(context.Background()), boom)
}
