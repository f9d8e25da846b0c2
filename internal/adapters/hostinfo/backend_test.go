package hostinfo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/appinfo/internal/adapters/hostinfo"
	"go.trai.ch/appinfo/internal/core/ports/mocks"
)

func TestRetrieve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	backend := hostinfo.New(logger)

	// Running inside `go test`, the executable is the test binary: the
	// backend still has to produce a name, a version and an install time.
	data, err := backend.Retrieve(context.Background(), "")
	require.NoError(t, err)

	assert.NotEmpty(t, data.AppName)
	assert.NotEmpty(t, data.Version)
	assert.False(t, data.InstallTime.IsZero())
	assert.Empty(t, data.BuildSignature)
	assert.Empty(t, data.InstallerStore)
}

func TestRetrieve_IgnoresBaseURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	backend := hostinfo.New(logger)

	plain, err := backend.Retrieve(context.Background(), "")
	require.NoError(t, err)

	hinted, err := backend.Retrieve(context.Background(), "https://example.com/app")
	require.NoError(t, err)

	assert.Equal(t, plain.AppName, hinted.AppName)
	assert.Equal(t, plain.PackageName, hinted.PackageName)
	assert.Equal(t, plain.Version, hinted.Version)
}
