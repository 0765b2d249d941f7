package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupJob_Process(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, "main")
	job := NewCleanupJob(service, 10)
	ctx := context.Background()

	mockRepo.On("CleanupOldEvents", mock.Anything, 10).Return(int64(100), nil)

	err := job.Process(ctx)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_ProcessError(t *testing.T) {
	mockRepo := new(MockRepository)
	boom := errors.New("timeout")
	mockRepo.On("CleanupOldEvents", mock.Anything, 7).Return(int64(0), boom)

	err := NewCleanupJob(NewService(mockRepo, "main"), 7).Process(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCleanupJob_RunStopsOnCancel(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("CleanupOldEvents", mock.Anything, 1).Return(int64(0), nil).Maybe()
	job := NewCleanupJob(NewService(mockRepo, "main"), 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Run(ctx, 5*time.Millisecond)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup job did not stop")
	}
}
