package repository

import (
	"errors"
	"fmt"
)

// ErrQueryFailed matches every *QueryError via errors.Is.
var ErrQueryFailed = errors.New("query failed")

// QueryError 查询执行失败（SQL 错误、I/O 错误等），不重试
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *QueryError) Unwrap() error { return e.Err }

func (e *QueryError) Is(target error) bool { return target == ErrQueryFailed }

func queryErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &QueryError{Op: op, Err: err}
}
