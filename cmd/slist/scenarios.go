package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gobwas/glob"
	"github.com/quintans/slist/internal/lib/fails"
	"github.com/quintans/slist/list"
)

type scenario struct {
	name string
	run  func(cfg config) error
}

type config struct {
	size int
}

var scenarios = []scenario{
	{name: "push-pop", run: pushPop},
	{name: "len", run: length},
	{name: "peek", run: peek},
	{name: "append", run: appendBack},
	{name: "last", run: last},
	{name: "into-iter", run: intoIter},
	{name: "json", run: jsonRoundTrip},
	{name: "teardown", run: teardown},
}

func selectScenarios(pattern string) ([]scenario, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fails.NewWithErr(err, "compiling scenario filter", "pattern", pattern)
	}

	var selected []scenario
	for _, s := range scenarios {
		if g.Match(s.name) {
			selected = append(selected, s)
		}
	}
	return selected, nil
}

// runAll runs every scenario and returns how many failed.
func runAll(selected []scenario, cfg config) int {
	failed := 0
	for _, s := range selected {
		slog.Debug("Running scenario", "scenario", s.name)
		if err := s.run(cfg); err != nil {
			slog.Error("Scenario failed", "scenario", s.name, "error", err)
			failed++
			continue
		}
		slog.Info("Scenario passed", "scenario", s.name)
	}
	return failed
}

func expect[T comparable](what string, got, want T) error {
	if got != want {
		return fails.New("unexpected "+what, "got", got, "want", want)
	}
	return nil
}

func expectSlice[T comparable](what string, got, want []T) error {
	if !slices.Equal(got, want) {
		return fails.New("unexpected "+what, "got", fmt.Sprint(got), "want", fmt.Sprint(want))
	}
	return nil
}

func pushPop(cfg config) error {
	l := list.New[int]()
	n := min(cfg.size, 1000)
	for i := range n {
		l.Push(i)
	}
	for i := n - 1; i >= 0; i-- {
		v, ok := l.Pop()
		if !ok {
			return fails.New("list emptied early", "remaining", i+1)
		}
		if err := expect("pop", v, i); err != nil {
			return err
		}
	}
	_, ok := l.Pop()
	return expect("pop on empty list", ok, false)
}

func length(cfg config) error {
	l := list.New[int]()
	k := min(cfg.size, 1000)
	for i := range k {
		l.Push(i)
	}
	j := k / 3
	for range j {
		l.Pop()
	}
	return expect("len", l.Len(), k-j)
}

func peek(config) error {
	l := list.New[int]()
	if _, ok := l.Peek(); ok {
		return fails.New("peek on empty list returned a value")
	}
	l.Push(42)
	v, ok := l.Peek()
	if err := expect("peek presence", ok, true); err != nil {
		return err
	}
	if err := expect("peek", v, 42); err != nil {
		return err
	}
	return expect("len after peek", l.Len(), 1)
}

func appendBack(config) error {
	l := list.New[string]()
	l.Append("a")
	l.Append("b")
	l.Append("c")

	var got []string
	for range 3 {
		v, _ := l.Pop()
		got = append(got, v)
	}
	return expectSlice("append order", got, []string{"a", "b", "c"})
}

func last(config) error {
	l := list.New[string]()
	if _, ok := l.Last(); ok {
		return fails.New("last on empty list returned a value")
	}
	l.Push("a")
	l.Push("b")
	v, _ := l.Last()
	return expect("last", v, "a")
}

func intoIter(config) error {
	l := list.New[string]()
	l.Push("baz")
	l.Push("bar")
	l.Push("foo")

	got := slices.Collect(l.IntoIter().Seq())
	if err := expectSlice("into-iter order", got, []string{"foo", "bar", "baz"}); err != nil {
		return err
	}
	return expect("len of consumed list", l.Len(), 0)
}

func jsonRoundTrip(config) error {
	data, err := json.Marshal(list.Of(1, 2, 3))
	if err != nil {
		return fails.NewWithErr(err, "marshalling list")
	}

	out := list.New[int]()
	if err := json.Unmarshal(data, out); err != nil {
		return fails.NewWithErr(err, "unmarshalling list", "data", string(data))
	}
	return expect("decoded list", out.String(), "[1 2 3]")
}

func teardown(cfg config) error {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	l := list.New[int]()
	for i := range cfg.size {
		l.Push(i)
	}
	runtime.ReadMemStats(&after)

	var growth uint64
	if after.HeapAlloc > before.HeapAlloc {
		growth = after.HeapAlloc - before.HeapAlloc
	}
	slog.Info("Built list", "items", humanize.Comma(int64(l.Len())), "heap", humanize.Bytes(growth))

	l.Clear()
	return expect("len after clear", l.Len(), 0)
}
