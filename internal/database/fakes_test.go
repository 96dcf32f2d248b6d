package database

import (
	"context"
	"sync"
	"time"

	"github.com/surrealdb/surrealdb.go"
)

// fakeConn satisfies DBConnection without a server; clients built on it must
// use WithExecutor.
type fakeConn struct{}

func (fakeConn) WithConnection(ctx context.Context, fn func(*surrealdb.DB) error) error {
	return NewDBError(ErrNotConnected, "fake connection")
}
func (fakeConn) Close(ctx context.Context) error { return nil }
func (fakeConn) IsHealthy() bool { return true }
func (fakeConn) GetDBQueryTimeout() time.Duration { return time.Second }
func (fakeConn) GetDBExecuteTimeout() time.Duration { return time.Second }

type recordedCall struct {
	Query  string
	Params map[string]any
}

// scriptedExecutor returns queued results in order and records every call.
type scriptedExecutor[T any] struct {
	mu      sync.Mutex
	results [][]T
	errs    []error
	calls   []recordedCall
}

func (e *scriptedExecutor[T]) push(rows []T, err error) *scriptedExecutor[T] {
	e.results = append(e.results, rows)
	e.errs = append(e.errs, err)
	return e
}

func (e *scriptedExecutor[T]) Query(ctx context.Context, query string, params map[string]any) ([]T, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, recordedCall{Query: query, Params: params})
	if len(e.results) == 0 {
		return nil, nil
	}
	rows, err := e.results[0], e.errs[0]
	e.results, e.errs = e.results[1:], e.errs[1:]
	return rows, err
}

func (e *scriptedExecutor[T]) Execute(ctx context.Context, query string, params map[string]any) error {
	_, err := e.Query(ctx, query, params)
	return err
}

func (e *scriptedExecutor[T]) Calls() []recordedCall {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]recordedCall(nil), e.calls...)
}

func mustClient[T any](exec QueryExecutor[T]) Client[T] {
	c, err := NewClient[T](fakeConn{}, WithExecutor[T](exec))
	if err != nil {
		panic(err)
	}
	return c
}
