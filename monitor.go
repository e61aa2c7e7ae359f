package rift

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ConnectionMonitor watches one session's physical connection state and
// reports attach/detach transitions. Polling is adaptive: quiet streaks
// stretch the interval toward maxInterval for power efficiency, any
// transition snaps it back to baseInterval.
//
// The monitor stops itself when the session it watches is disposed.
type ConnectionMonitor struct {
	hmd       *HMD
	mu        sync.RWMutex
	isRunning bool
	stop      chan struct{}

	// Adaptive polling
	baseInterval    time.Duration
	maxInterval     time.Duration
	currentInterval time.Duration
	lastChangeTime  time.Time
	noChangeCount   int

	// Connection state tracking
	lastConnected bool

	// Performance tracking
	averageCheckTime time.Duration
	maxCheckTime     time.Duration
	checkCount       int64

	// Callbacks for connection events
	onConnected    func()
	onDisconnected func()

	hook MetricsHook
}

// NewConnectionMonitor creates a monitor for h with 50ms base polling.
func NewConnectionMonitor(h *HMD) *ConnectionMonitor {
	return &ConnectionMonitor{
		hmd:             h,
		baseInterval:    50 * time.Millisecond,
		maxInterval:     200 * time.Millisecond,
		currentInterval: 50 * time.Millisecond,
		lastChangeTime:  time.Now(),
	}
}

// SetCallbacks configures connection event callbacks. Callbacks run on the
// monitor goroutine; keep them short.
func (cm *ConnectionMonitor) SetCallbacks(onConnected, onDisconnected func()) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.onConnected = onConnected
	cm.onDisconnected = onDisconnected
}

// SetMetricsHook sets an optional metrics hook. Passing nil disables
// metrics callbacks.
func (cm *ConnectionMonitor) SetMetricsHook(h MetricsHook) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.hook = h
}

// Start begins connection monitoring.
func (cm *ConnectionMonitor) Start() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.isRunning {
		return fmt.Errorf("connection monitor is already running")
	}

	connected, err := cm.hmd.IsConnected()
	if err != nil {
		return fmt.Errorf("failed to read initial connection state: %w", err)
	}

	cm.lastConnected = connected
	cm.isRunning = true
	cm.stop = make(chan struct{})

	if cm.hook != nil {
		cm.hook.OnMonitorStart(cm.currentInterval)
	}

	go cm.monitorLoop(cm.stop)

	return nil
}

// Stop halts connection monitoring. Stopping a stopped monitor is a no-op.
func (cm *ConnectionMonitor) Stop() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.stopLocked()
}

func (cm *ConnectionMonitor) stopLocked() {
	if !cm.isRunning {
		return
	}
	cm.isRunning = false
	close(cm.stop)
	if cm.hook != nil {
		cm.hook.OnMonitorStop()
	}
}

// IsRunning returns whether connection monitoring is active.
func (cm *ConnectionMonitor) IsRunning() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.isRunning
}

// PollInterval returns the current adaptive polling interval.
func (cm *ConnectionMonitor) PollInterval() time.Duration {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.currentInterval
}

// SetBaseInterval updates the base polling interval (minimum 10ms). The
// max interval stretches to stay at least the base.
func (cm *ConnectionMonitor) SetBaseInterval(interval time.Duration) error {
	if interval < 10*time.Millisecond {
		return fmt.Errorf("polling interval cannot be less than 10ms")
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.baseInterval = interval
	cm.currentInterval = interval
	if cm.maxInterval < interval {
		cm.maxInterval = interval
	}
	return nil
}

// monitorLoop runs the connection polling loop.
func (cm *ConnectionMonitor) monitorLoop(stop <-chan struct{}) {
	currentInterval := cm.PollInterval()
	ticker := time.NewTicker(currentInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			cm.checkConnection()

			// Reset ticker if the adaptive interval moved
			if newInterval := cm.PollInterval(); newInterval != currentInterval {
				ticker.Reset(newInterval)
				currentInterval = newInterval
			}
		}
	}
}

// checkConnection performs one poll of the session's connection state.
func (cm *ConnectionMonitor) checkConnection() {
	start := time.Now()

	connected, err := cm.hmd.IsConnected()
	if err != nil {
		if errors.Is(err, ErrDisposed) {
			// Session gone; the monitor has nothing left to watch.
			cm.mu.Lock()
			cm.stopLocked()
			cm.mu.Unlock()
			return
		}
		cm.hmd.errorHandler.HandleError(fmt.Errorf("connection check failed: %w", err))
		return
	}

	elapsed := time.Since(start)
	changed := cm.updateState(connected, elapsed)

	cm.mu.RLock()
	hook := cm.hook
	onConnected, onDisconnected := cm.onConnected, cm.onDisconnected
	cm.mu.RUnlock()

	if hook != nil {
		hook.OnPoll(elapsed, connected, changed)
	}
	if !changed {
		return
	}
	if hook != nil {
		hook.OnConnectionChange(connected)
	}
	if connected && onConnected != nil {
		onConnected()
	}
	if !connected && onDisconnected != nil {
		onDisconnected()
	}
}

// updateState records the poll outcome, adapts the interval, and reports
// whether the connection state flipped.
func (cm *ConnectionMonitor) updateState(connected bool, elapsed time.Duration) bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.checkCount++
	if cm.checkCount == 1 {
		cm.averageCheckTime = elapsed
	} else {
		// EMA with alpha = 0.1 (gives more weight to recent samples)
		cm.averageCheckTime = time.Duration(float64(cm.averageCheckTime)*0.9 + float64(elapsed)*0.1)
	}
	if elapsed > cm.maxCheckTime {
		cm.maxCheckTime = elapsed
	}

	changed := connected != cm.lastConnected
	cm.lastConnected = connected

	if !changed {
		cm.noChangeCount++
		// After 10 consecutive quiet polls, back off gradually
		if cm.noChangeCount > 10 {
			newInterval := time.Duration(float64(cm.currentInterval) * 1.1)
			if newInterval > cm.maxInterval {
				newInterval = cm.maxInterval
			}
			cm.currentInterval = newInterval
		}
		return false
	}

	cm.noChangeCount = 0
	cm.lastChangeTime = time.Now()
	cm.currentInterval = cm.baseInterval
	return true
}

// PerformanceStats returns connection polling statistics.
func (cm *ConnectionMonitor) PerformanceStats() (avgTime, maxTime time.Duration, checkCount int64) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.averageCheckTime, cm.maxCheckTime, cm.checkCount
}

// ForceCheck triggers an immediate connection poll (useful for testing).
func (cm *ConnectionMonitor) ForceCheck() {
	if cm.IsRunning() {
		cm.checkConnection()
	}
}
