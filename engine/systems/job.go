package systems

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spaghettifunk/slim/engine/core"
)

/**
 * @brief Describes a job to be run.
 */
type JobTask struct {
	/** @brief Used in log messages only. */
	Name string
	/** @brief Invoked when the job starts. Required. */
	Run func() error
	/** @brief Invoked when Run succeeds. Optional. */
	OnComplete func()
	/** @brief Invoked with the error returned by Run. Optional. */
	OnFailure func(error)
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup

	mutex  sync.RWMutex
	closed bool
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")
var ErrJobSystemClosed = errors.New("job system is shut down")

// NewJobSystem starts numWorkers goroutines. With a single worker jobs run
// in submission order.
func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				js.execute(job)
			}
		}()
	}
}

func (js *JobSystem) execute(job JobTask) {
	if job.Run == nil {
		core.LogWarn("job %q has nothing to run", job.Name)
		return
	}
	if err := job.Run(); err != nil {
		core.LogError("job %q failed: %s", job.Name, err)
		if job.OnFailure != nil {
			job.OnFailure(err)
		}
		return
	}
	if job.OnComplete != nil {
		job.OnComplete()
	}
}

/**
 * @brief Shuts the job system down. Jobs already submitted still run; the
 * call returns once the workers are done with them.
 */
func (js *JobSystem) Shutdown() error {
	js.mutex.Lock()
	if js.closed {
		js.mutex.Unlock()
		return nil
	}
	js.closed = true
	close(js.jobQueue)
	js.mutex.Unlock()

	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full.
 */
func (js *JobSystem) Submit(jt JobTask) error {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	if js.closed {
		return ErrJobSystemClosed
	}
	js.jobQueue <- jt
	return nil
}
