package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ember/ember/pkg/ember"
	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/registry"
	"github.com/go-ember/ember/pkg/render"
	"github.com/go-ember/ember/pkg/theme"
	"github.com/go-ember/ember/pkg/widgets"
)

var demoFrames int

func init() {
	demoCmd.Flags().IntVarP(&demoFrames, "frames", "n", 120, "number of frames to run")
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a headless scripted demo",
	Long: `Runs the interaction engine headless for a fixed number of frames
with scripted pointer input, recording draw operations instead of
rasterizing. Prints a per-widget summary at the end.

Useful as a smoke test that the engine and the widget layer agree
without a window system.`,
	RunE: runDemo,
}

// demoScene holds the caller-owned widget state the frames mutate.
type demoScene struct {
	clicks   int
	volume   float64
	notify   bool
	tab      int
	name     widgets.TextState
	degraded bool
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoFrames < 1 {
		return errors.Newf("demo", errors.KindArgument, "frames must be positive, got %d", demoFrames)
	}

	handler := &errors.LogHandler{Verbose: true}
	ctx := ember.New(ember.Config{Handler: handler})
	rec := &render.Recorder{}
	ui := widgets.New(ctx, rec, nil, nil)

	scene := &demoScene{volume: 0.3}
	scene.name.SetText("ember")

	var ops int
	for frame := 0; frame < demoFrames; frame++ {
		rec.Reset()
		ctx.SetInput(scriptedInput(frame))
		ctx.BeginFrame(1.0 / 60.0)
		declareDemo(ui, scene)
		ctx.EndFrame()
		ops += len(rec.Ops)
		if ctx.Degraded(registry.CategoryTextField) ||
			ctx.Degraded(registry.CategorySlider) ||
			ctx.Degraded(registry.CategoryFocusable) {
			scene.degraded = true
		}
	}

	fmt.Fprintf(os.Stdout, "ran %d frames, recorded %d draw ops\n", demoFrames, ops)
	fmt.Fprintf(os.Stdout, "  button clicks: %d\n", scene.clicks)
	fmt.Fprintf(os.Stdout, "  slider value:  %.2f\n", scene.volume)
	fmt.Fprintf(os.Stdout, "  checkbox:      %v\n", scene.notify)
	fmt.Fprintf(os.Stdout, "  segment:       %d\n", scene.tab)
	fmt.Fprintf(os.Stdout, "  text field:    %q\n", scene.name.String())
	if scene.degraded {
		fmt.Fprintln(os.Stdout, "  registry hit capacity at least once")
	}
	return nil
}

// declareDemo declares one frame of the demo layout.
func declareDemo(ui *widgets.UI, s *demoScene) {
	th := ui.Theme
	y := 20.0
	row := func(h float64) geometry.Rect {
		r := geometry.RectFromLTWH(20, y, 260, h)
		y += h + th.Padding
		return r
	}

	if ui.Button(row(th.ButtonHeight), "Click me") {
		s.clicks++
	}
	s.volume = ui.SliderEx(row(th.ButtonHeight), s.volume, 0, 1, 0, &widgets.SliderOptions{ShowValue: true})
	ui.Checkbox(row(th.ButtonHeight), "Notifications", &s.notify)
	ui.Segmented(row(th.ButtonHeight), []string{"Day", "Week", "Month"}, &s.tab)
	ui.TextField(row(th.ButtonHeight), &s.name)
}

// scriptedInput produces the pointer and key script for a given frame. The
// script clicks the button, drags the slider, toggles the checkbox, picks a
// segment, then tabs into the text field and types.
func scriptedInput(frame int) input.Snapshot {
	th := theme.Default()
	rowY := func(i int) float64 { return 20 + float64(i)*(th.ButtonHeight+th.Padding) + th.ButtonHeight*0.5 }

	snap := input.Snapshot{Pointer: geometry.Offset{X: 150, Y: rowY(0)}}
	switch {
	case frame == 5:
		snap.Pressed = input.ButtonLeft
		snap.Held = input.ButtonLeft
	case frame == 6:
		snap.Released = input.ButtonLeft
	case frame >= 20 && frame < 40:
		// Drag the slider thumb rightwards.
		snap.Pointer = geometry.Offset{X: 90 + float64(frame-20)*6, Y: rowY(1)}
		snap.Held = input.ButtonLeft
		if frame == 20 {
			snap.Pointer = geometry.Offset{X: 98, Y: rowY(1)}
			snap.Pressed = input.ButtonLeft
		}
	case frame == 40:
		snap.Pointer = geometry.Offset{X: 210, Y: rowY(1)}
		snap.Released = input.ButtonLeft
	case frame == 50:
		snap.Pointer = geometry.Offset{X: 30, Y: rowY(2)}
		snap.Pressed = input.ButtonLeft
		snap.Held = input.ButtonLeft
	case frame == 51:
		snap.Pointer = geometry.Offset{X: 30, Y: rowY(2)}
		snap.Released = input.ButtonLeft
	case frame == 60:
		snap.Pointer = geometry.Offset{X: 230, Y: rowY(3)}
		snap.Pressed = input.ButtonLeft
		snap.Held = input.ButtonLeft
	case frame == 61:
		snap.Pointer = geometry.Offset{X: 230, Y: rowY(3)}
		snap.Released = input.ButtonLeft
	case frame == 70:
		snap.Pointer = geometry.Offset{X: 150, Y: rowY(4)}
		snap.Pressed = input.ButtonLeft
		snap.Held = input.ButtonLeft
	case frame == 71:
		snap.Pointer = geometry.Offset{X: 150, Y: rowY(4)}
		snap.Released = input.ButtonLeft
	case frame > 75 && frame < 80:
		snap.Rune = rune('a' + frame - 76)
	}
	return snap
}
