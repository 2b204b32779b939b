package services

import "fmt"

// Batcher выдаёт элементы среза последовательными блоками фиксированного
// размера. Последний блок может быть короче. Блоки смотрят в исходный
// срез, повторный обход после исчерпания не поддерживается.
type Batcher[T any] struct {
	items []T
	size  int
}

func NewBatcher[T any](items []T, size int) (*Batcher[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", size)
	}
	return &Batcher[T]{items: items, size: size}, nil
}

// Next возвращает следующий блок. Второе значение false после исчерпания.
func (b *Batcher[T]) Next() ([]T, bool) {
	if len(b.items) == 0 {
		return nil, false
	}
	n := b.size
	if n > len(b.items) {
		n = len(b.items)
	}
	chunk := b.items[:n:n]
	b.items = b.items[n:]
	return chunk, true
}
