package scheduler_test

import (
	"context"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports/mocks"
	"go.trai.ch/fractile/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func TestPool_ServesHigherPriorityFirst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		low := mocks.NewMockFillable(ctrl)
		high := mocks.NewMockFillable(ctrl)
		gomock.InOrder(
			high.EXPECT().Fill().Return(domain.Finished()),
			high.EXPECT().Release(),
			low.EXPECT().Fill().Return(domain.Finished()),
			low.EXPECT().Release(),
		)

		pool := scheduler.NewPool(1)
		pool.Submit(3, low)
		pool.Submit(5, high)
		pool.Start(t.Context())
		synctest.Wait()

		assert.Equal(t, 0, pool.Pending())
		pool.Shutdown()
	})
}

func TestPool_RequeuesAtDecayingPriority(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		a := mocks.NewMockFillable(ctrl)
		b := mocks.NewMockFillable(ctrl)
		gomock.InOrder(
			a.EXPECT().Fill().Return(domain.LevelCompleted()),
			// a comes back at 4 and queues behind b, which was submitted first.
			b.EXPECT().Fill().Return(domain.Finished()),
			b.EXPECT().Release(),
			a.EXPECT().Fill().Return(domain.Finished()),
			a.EXPECT().Release(),
		)

		pool := scheduler.NewPool(1)
		pool.Submit(4, b)
		pool.Submit(5, a)
		pool.Start(t.Context())
		synctest.Wait()
		pool.Shutdown()

		stats := pool.Stats()
		assert.Equal(t, int64(1), stats.Levels)
		assert.Equal(t, int64(1), stats.Requeued)
		assert.Equal(t, int64(2), stats.Finished)
	})
}

func TestPool_CancellationOutcomes(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		preempted := mocks.NewMockFillable(ctrl)
		stale := mocks.NewMockFillable(ctrl)
		busy := mocks.NewMockFillable(ctrl)

		gomock.InOrder(
			preempted.EXPECT().Fill().Return(domain.Cancelled(domain.ReasonPreempted)),
			preempted.EXPECT().Fill().Return(domain.Finished()),
			preempted.EXPECT().Release(),
		)
		stale.EXPECT().Fill().Return(domain.Cancelled(domain.ReasonStale))
		stale.EXPECT().Release()
		busy.EXPECT().Fill().Return(domain.Cancelled(domain.ReasonBusy))

		pool := scheduler.NewPool(2)
		pool.Start(t.Context())
		pool.Submit(3, preempted)
		pool.Submit(2, stale)
		pool.Submit(1, busy)
		synctest.Wait()
		pool.Shutdown()

		stats := pool.Stats()
		assert.Equal(t, int64(3), stats.Cancelled)
		assert.Equal(t, int64(1), stats.Requeued)
	})
}

func TestPool_DrainsEveryTaskWithManyWorkers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pool := scheduler.NewPool(4)
		pool.Start(t.Context())

		for i := range 20 {
			work := mocks.NewMockFillable(ctrl)
			work.EXPECT().Fill().Return(domain.Finished())
			work.EXPECT().Release()
			pool.Submit(i%5, work)
		}
		synctest.Wait()
		pool.Shutdown()

		assert.Equal(t, int64(20), pool.Stats().Finished)
		assert.Equal(t, 4, pool.Workers())
	})
}

func TestPool_ShutdownReleasesQueuedWork(t *testing.T) {
	ctrl := gomock.NewController(t)
	work := mocks.NewMockFillable(ctrl)
	work.EXPECT().Release()

	pool := scheduler.NewPool(1)
	pool.Submit(1, work)
	assert.Equal(t, 1, pool.Pending())

	pool.Shutdown()

	assert.Equal(t, 0, pool.Pending())
}

func TestPool_StopsWithContext(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		pool := scheduler.NewPool(3)
		pool.Start(ctx)

		cancel()
		synctest.Wait()

		// Workers are gone; Shutdown must not block.
		pool.Shutdown()
	})
}

func TestNewPool_DefaultsWorkerCount(t *testing.T) {
	assert.Equal(t, domain.DefaultWorkers(), scheduler.NewPool(0).Workers())
}
