package errorutil

import (
	"errors"
	"fmt"
)

// Kind 错误类型
type Kind string

const (
	// KindIO 写输出文件失败
	KindIO Kind = "io"
	// KindFetch 访问上游数据集失败（网络、状态码、超时）
	KindFetch Kind = "fetch"
	// KindSchema 上游数据格式无法识别
	KindSchema Kind = "schema"
	// KindConfig 静态表或配置有误
	KindConfig Kind = "config"
	// KindPublish 可选下游发布失败
	KindPublish Kind = "publish"
)

// Error 带类型和原因的错误
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error 实现 error 接口
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap 返回原因
func (e *Error) Unwrap() error {
	return e.Err
}

// New 创建指定类型的错误
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf 创建指定类型的错误（格式化消息）
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap 包装错误，err 为 nil 时返回 nil
func Wrap(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// IO 包装写文件错误
func IO(message string, err error) error {
	return Wrap(KindIO, message, err)
}

// Fetch 包装上游访问错误
func Fetch(message string, err error) error {
	return Wrap(KindFetch, message, err)
}

// Publish 包装下游发布错误
func Publish(message string, err error) error {
	return Wrap(KindPublish, message, err)
}

// KindOf 返回错误链中首个 *Error 的类型
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind 错误链中是否有指定类型的 *Error
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
