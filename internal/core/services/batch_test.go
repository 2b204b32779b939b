package services

import (
	"reflect"
	"testing"
)

func TestBatcher(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		size  int
		want  [][]string
	}{
		{
			name:  "even split",
			items: []string{"a", "b", "c", "d"},
			size:  2,
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "short tail",
			items: []string{"a", "b", "c", "d", "e"},
			size:  2,
			want:  [][]string{{"a", "b"}, {"c", "d"}, {"e"}},
		},
		{
			name:  "size larger than input",
			items: []string{"a", "b"},
			size:  100,
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "empty input",
			items: nil,
			size:  3,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBatcher(tt.items, tt.size)
			if err != nil {
				t.Fatalf("NewBatcher: unexpected error: %v", err)
			}
			var got [][]string
			for {
				chunk, ok := b.Next()
				if !ok {
					break
				}
				got = append(got, chunk)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("chunks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBatcherConcatenationMatchesInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	b, err := NewBatcher(items, 3)
	if err != nil {
		t.Fatalf("NewBatcher: %v", err)
	}
	var joined []int
	for {
		chunk, ok := b.Next()
		if !ok {
			break
		}
		if len(chunk) > 3 {
			t.Fatalf("chunk of %d items exceeds size 3", len(chunk))
		}
		joined = append(joined, chunk...)
	}
	if !reflect.DeepEqual(joined, items) {
		t.Errorf("concatenated chunks = %v, want %v", joined, items)
	}
}

func TestBatcherNotRestartable(t *testing.T) {
	b, err := NewBatcher([]int{1, 2}, 2)
	if err != nil {
		t.Fatalf("NewBatcher: %v", err)
	}
	if _, ok := b.Next(); !ok {
		t.Fatal("first Next returned no chunk")
	}
	if chunk, ok := b.Next(); ok {
		t.Fatalf("exhausted batcher produced %v", chunk)
	}
	if chunk, ok := b.Next(); ok {
		t.Fatalf("batcher restarted after exhaustion, produced %v", chunk)
	}
}

func TestBatcherRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -100} {
		if _, err := NewBatcher([]int{1}, size); err == nil {
			t.Errorf("NewBatcher(size=%d): expected error", size)
		}
	}
}
