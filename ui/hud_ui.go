package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/slingshot/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// HudUI is the clickable overlay of the game scene: restart, mute and back
// buttons plus a status line.
type HudUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Callbacks
	OnBack func()

	muteButton  *widget.Button
	statusLabel *widget.Label

	face text.Face
}

// NewHudUI creates the overlay for the session running in e.
func NewHudUI(e *ecs.ECS, onBack func()) *HudUI {
	h := &HudUI{
		ecs:    e,
		OnBack: onBack,
	}

	h.loadFonts()
	h.buildUI()

	return h
}

func (h *HudUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	h.face = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (h *HudUI) buildUI() {
	// Transparent root so the playfield shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.face, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	bar.AddChild(h.statusLabel)

	bar.AddChild(h.button("Restart", func() {
		systems.RestartGame(h.ecs)
	}))

	h.muteButton = h.button(muteText(), func() {
		systems.ToggleMute(h.ecs)
		h.muteButton.Text().Label = muteText()
	})
	bar.AddChild(h.muteButton)

	bar.AddChild(h.button("Levels", func() {
		if h.OnBack != nil {
			h.OnBack()
		}
	}))

	rootContainer.AddChild(bar)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (h *HudUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(70, 24),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &h.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 200})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 220})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 220})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 200})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func muteText() string {
	if systems.IsMuted() {
		return "Unmute"
	}
	return "Mute"
}

// Update refreshes the status line and handles clicks
func (h *HudUI) Update() {
	h.UI.Update()

	status := ""
	if s, ok := systems.GetSession(h.ecs); ok {
		status = fmt.Sprintf("%d left - %s", systems.RemainingProjectiles(h.ecs), s.Game.State())
	}
	h.statusLabel.Label = status
	// The M key toggles mute outside the button too
	h.muteButton.Text().Label = muteText()
}

func (h *HudUI) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
