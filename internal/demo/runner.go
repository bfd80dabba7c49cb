package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/AbhishekDinesan/hedgehog/heap/linked_list"
)

// PauseHook is invoked between operations with the rendered chain. It only
// observes; the list is never handed to it.
type PauseHook func(ctx context.Context, step int, chain string) error

type Runner struct {
	Out    io.Writer
	Logger *slog.Logger
	Pause  PauseHook
	Color  bool
}

// Run builds an empty list, appends cfg.Values, then removes cfg.Remove,
// printing the chain after every step.
func (r Runner) Run(ctx context.Context, cfg Config) (*linked_list.LinkedList[int], error) {
	if err := cfg.Validate(); err != nil {
		return nil, &OpError{Op: "demo.run", Kind: KindInvalidConfig, Err: err}
	}

	out := r.Out
	if out == nil {
		out = io.Discard
	}
	log := r.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	header := color.New(color.Bold)
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	missed := color.New(color.FgYellow)
	if !r.Color {
		for _, c := range []*color.Color{header, added, removed, missed} {
			c.DisableColor()
		}
	}

	l := linked_list.New[int]()
	header.Fprintln(out, "Creating a new linked list...")
	header.Fprintf(out, "Adding elements: %s\n", join(cfg.Values))

	for i, v := range cfg.Values {
		if err := ctx.Err(); err != nil {
			return l, err
		}
		l.Add(v)
		log.Debug("list.add", "value", v)
		added.Fprintf(out, "add %d: ", v)
		fmt.Fprintln(out, l.String())

		if step := i + 1; step == cfg.PauseAfter {
			if err := r.pause(ctx, log, step, l.String()); err != nil {
				return l, err
			}
		}
	}

	if len(cfg.Remove) > 0 {
		header.Fprintf(out, "Removing elements: %s\n", join(cfg.Remove))
	}
	for _, v := range cfg.Remove {
		if err := ctx.Err(); err != nil {
			return l, err
		}
		ok := l.Remove(v)
		log.Debug("list.remove", "value", v, "removed", ok)
		if ok {
			removed.Fprintf(out, "remove %d: ", v)
		} else {
			missed.Fprintf(out, "remove %d (not found): ", v)
		}
		fmt.Fprintln(out, l.String())
	}

	log.Info("demo.done", "chain", l.String())
	return l, nil
}

func (r Runner) pause(ctx context.Context, log *slog.Logger, step int, chain string) error {
	log.Debug("demo.pause", "step", step, "chain", chain)
	if r.Pause == nil {
		return nil
	}
	if err := r.Pause(ctx, step, chain); err != nil {
		kind := KindAborted
		if !errors.Is(err, ErrAborted) && !errors.Is(err, context.Canceled) {
			kind = KindHook
		}
		return &OpError{Op: "demo.pause", Kind: kind, Err: err}
	}
	return nil
}

func join(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
