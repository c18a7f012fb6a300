package util

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCyclicDependency 概念依赖表成环，属配置错误，启动时直接终止
	ErrCyclicDependency = errors.New("cyclic concept dependency")
)

// TopicNotFoundError 未知主题，携带全部可用主题名供调用方提示
type TopicNotFoundError struct {
	Topic     string
	Available []string
}

func (e *TopicNotFoundError) Error() string {
	return fmt.Sprintf("unknown topic: '%s'. Available topics: %s", e.Topic, strings.Join(e.Available, ", "))
}

// ConceptNotFoundError 未知概念ID
type ConceptNotFoundError struct {
	ConceptID string
}

func (e *ConceptNotFoundError) Error() string {
	return fmt.Sprintf("unknown concept: '%s'", e.ConceptID)
}

// IsNotFound 判断错误是否为主题/概念未找到
func IsNotFound(err error) bool {
	var topicErr *TopicNotFoundError
	var conceptErr *ConceptNotFoundError
	return errors.As(err, &topicErr) || errors.As(err, &conceptErr)
}
