package el

import (
	"fmt"

	"github.com/vango-dev/markup/pkg/tag"
)

// Textf formats text content. The result is escaped like any other string.
func Textf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Raw returns markup that is rendered without escaping.
func Raw(html string) tag.Raw {
	return tag.Raw(html)
}

// Comment creates an HTML comment.
func Comment(text ...any) Tag {
	return tag.NewComment(text...)
}

// Fragment groups children without a wrapping element.
func Fragment(children ...any) Tag {
	n := tag.NewNode("", nil)
	n.Content(children...)
	return n
}

// If returns node if condition is true, nil otherwise.
func If(condition bool, node any) any {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue if condition is true, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When calls fn only if condition is true.
func When(condition bool, fn func() any) any {
	if condition {
		return fn()
	}
	return nil
}

// Range maps items to content.
func Range[T any](items []T, fn func(item T, index int) any) []any {
	out := make([]any, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// Repeat calls fn n times.
func Repeat(n int, fn func(i int) any) []any {
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}
