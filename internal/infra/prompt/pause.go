package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/AbhishekDinesan/hedgehog/internal/demo"
)

// Pause returns a hook that shows the chain and waits for Enter. Ctrl-C or
// EOF at the prompt aborts the run.
func Pause() demo.PauseHook {
	return func(ctx context.Context, step int, chain string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := promptui.Prompt{Label: Label(step, chain)}
		if _, err := p.Run(); err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return demo.ErrAborted
			}
			return err
		}
		return nil
	}
}

func Label(step int, chain string) string {
	return fmt.Sprintf("Paused after %d appends [%s], press Enter to continue", step, chain)
}
