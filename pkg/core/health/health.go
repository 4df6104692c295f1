// Package health aggregates named checks into a single report for the live
// server's health endpoint.
package health

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
	StatusUnknown   Status = "unknown"
)

// CheckResult is the outcome of one check
type CheckResult struct {
	Name      string                 `json:"name"`
	Status    Status                 `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Duration  time.Duration          `json:"duration"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Checker is a named health check
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type namedCheck struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return &namedCheck{name: name, fn: fn}
}

func (c *namedCheck) Name() string {
	return c.name
}

func (c *namedCheck) Check(ctx context.Context) CheckResult {
	return c.fn(ctx)
}

// Registry holds the checks of one service
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	service  string
	version  string
	startAt  time.Time
}

// NewRegistry creates an empty registry
func NewRegistry(service, version string) *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
		service:  service,
		version:  version,
		startAt:  time.Now(),
	}
}

// Register adds a checker, replacing one with the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// RegisterFunc adds a check function under name
func (r *Registry) RegisterFunc(name string, fn func(ctx context.Context) CheckResult) {
	r.Register(NewChecker(name, fn))
}

// Unregister removes a checker
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.checkers, name)
}

// Check runs all checks concurrently. The overall status is the worst
// individual status; results are sorted by name.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	checkers := make([]Checker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	report := &Report{
		Service:   r.service,
		Version:   r.version,
		Uptime:    time.Since(r.startAt),
		Timestamp: time.Now(),
		Checks:    make([]CheckResult, 0, len(checkers)),
	}

	var wg sync.WaitGroup
	results := make(chan CheckResult, len(checkers))

	for _, checker := range checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			start := time.Now()
			result := c.Check(ctx)
			result.Duration = time.Since(start)
			result.Timestamp = time.Now()
			if result.Name == "" {
				result.Name = c.Name()
			}
			if result.Status == "" {
				result.Status = StatusUnknown
			}
			results <- result
		}(checker)
	}
	wg.Wait()
	close(results)

	overall := StatusHealthy
	for result := range results {
		report.Checks = append(report.Checks, result)
		switch result.Status {
		case StatusUnhealthy:
			overall = StatusUnhealthy
		case StatusDegraded, StatusUnknown:
			if overall != StatusUnhealthy {
				overall = StatusDegraded
			}
		}
	}
	sort.Slice(report.Checks, func(i, j int) bool {
		return report.Checks[i].Name < report.Checks[j].Name
	})

	report.Status = overall
	return report
}

// CheckWithTimeout runs all checks with a timeout
func (r *Registry) CheckWithTimeout(timeout time.Duration) *Report {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Check(ctx)
}

// Report is the aggregated health of a service
type Report struct {
	Service   string        `json:"service"`
	Version   string        `json:"version"`
	Status    Status        `json:"status"`
	Uptime    time.Duration `json:"uptime"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// HTTPStatus is 503 for an unhealthy report and 200 otherwise
func (r *Report) HTTPStatus() int {
	if r.Status == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// String returns a one-line summary
func (r *Report) String() string {
	return fmt.Sprintf("Service: %s, Status: %s, Uptime: %v, Checks: %d",
		r.Service, r.Status, r.Uptime, len(r.Checks))
}

// TickLagCheck reports how far the last published tick trails the current
// one. No value yet is degraded; a lag above maxLag is unhealthy.
func TickLagCheck(name string, last func() (int64, bool), now func() int64, maxLag int64) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		current := now()
		result := CheckResult{
			Name:    name,
			Status:  StatusHealthy,
			Details: map[string]interface{}{"current": current},
		}

		ticks, ok := last()
		if !ok {
			result.Status = StatusDegraded
			result.Message = "no tick published yet"
			return result
		}

		lag := current - ticks
		result.Details["last"] = ticks
		result.Details["lag"] = lag
		if lag > maxLag {
			result.Status = StatusUnhealthy
			result.Message = fmt.Sprintf("last tick is %d behind", lag)
		}
		return result
	})
}

// PingCheck reports unhealthy when ping fails
func PingCheck(name string, ping func(ctx context.Context) error) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		if err := ping(ctx); err != nil {
			return CheckResult{Name: name, Status: StatusUnhealthy, Message: err.Error()}
		}
		return CheckResult{Name: name, Status: StatusHealthy}
	})
}
