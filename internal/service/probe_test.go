package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finsolar/investordash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProbeService_Run(t *testing.T) {
	src := new(MockDataSource)
	src.On("Manifest", mock.Anything).Return(&domain.Manifest{DefaultTenant: "acme"}, nil).Once()
	src.On("Manifest", mock.Anything).Return(nil, errors.New("dns failure")).Once()

	probe := NewProbeService(newTestService(src), zap.NewNop())
	assert.Nil(t, probe.Status())

	st := probe.Run(context.Background())
	assert.True(t, st.OK)
	assert.Equal(t, "acme", st.DefaultTenant)

	st = probe.Run(context.Background())
	assert.False(t, st.OK)
	assert.Contains(t, st.Error, "dns failure")

	last := probe.Status()
	require.NotNil(t, last)
	assert.False(t, last.OK)
}

func TestProbeService_StartStop(t *testing.T) {
	src := new(MockDataSource)
	src.On("Manifest", mock.Anything).Return(&domain.Manifest{DefaultTenant: "acme"}, nil)

	probe := NewProbeService(newTestService(src), zap.NewNop())
	probe.SetInterval(10 * time.Millisecond)
	probe.Start()

	assert.Eventually(t, func() bool {
		st := probe.Status()
		return st != nil && st.OK
	}, time.Second, 5*time.Millisecond)

	probe.Stop()
}
