package ui

import (
	"bufio"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  []int
		ok    bool
	}{
		{"virgules", "1,3,5", 5, []int{0, 2, 4}, true},
		{"espaces", "2 4", 5, []int{1, 3}, true},
		{"doublons conservent l'ordre", "3,1,3", 5, []int{2, 0}, true},
		{"hors bornes", "6", 5, nil, false},
		{"zero", "0", 5, nil, false},
		{"pas un nombre", "1,x", 5, nil, false},
		{"vide", "", 5, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseSelection(tt.input, tt.n)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWaitForExitContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tui := &terminalUI{reader: bufio.NewReader(strings.NewReader(""))}
	if err := tui.WaitForExit(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
