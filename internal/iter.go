package internal

import (
	"iter"
)

// Concat chains sequences end to end.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Concat2 chains sequences of pairs end to end.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// Offset shifts the keys of an indexed sequence by base.
func Offset[V any](base int, seq iter.Seq2[int, V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for key, val := range seq {
			if !yield(base+key, val) {
				return
			}
		}
	}
}
