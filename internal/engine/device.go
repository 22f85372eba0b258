package engine

import (
	"context"

	"github.com/tatianab/humanity/internal/content"
	"github.com/tatianab/humanity/internal/models"
	"github.com/tatianab/humanity/internal/puzzle"
)

// openDevice starts the erasure dialogue. Once the device has been used it
// only reports that.
func (e *Engine) openDevice() {
	if e.state.DeviceActivated {
		e.out.ShowLines(e.content.Lines(content.DeviceUsed))
		return
	}
	e.out.ClearDisplay()
	e.out.SetItemImage("device")
	e.out.ShowLines(e.content.Lines(content.DeviceIntro))
	e.out.ShowLine("")
	e.out.ShowLine("Type 'activate' to proceed, or 'cancel' to go back.")
	e.setMode(ModeDeviceDestroy)
}

func (e *Engine) deviceDestroy(line string) {
	switch line {
	case "activate":
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.DeviceCode))
		e.out.ShowLine("")
		e.out.ShowLine("Enter the 4-digit code:")
		e.setMode(ModeDeviceCode)
	case "cancel", "back":
		e.leave()
	default:
		e.out.ShowLine("Type 'activate' to proceed, or 'cancel' to go back.")
	}
}

func (e *Engine) deviceCode(line string) {
	switch {
	case line == "back" || line == "cancel":
		e.leave()
	case puzzle.DeviceCode(line):
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.DeviceFinal))
		e.out.ShowLine("")
		e.out.ShowLine("Type your answer:")
		e.setMode(ModeDeviceFinal)
	default:
		e.out.ShowLines(e.content.Lines(content.DeviceCodeWrong))
	}
}

func (e *Engine) deviceFinal(ctx context.Context, line string) error {
	switch {
	case line == "back" || line == "cancel":
		e.leave()
	case puzzle.DeviceFinal(line):
		e.state.DeviceActivated = true
		return e.grantFragment(ctx, models.FragmentMorality, e.content.Lines(content.DeviceSuccess))
	default:
		e.out.ShowLines(e.content.Lines(content.Wrong))
	}
	return nil
}
