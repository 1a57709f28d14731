package calcwindow

import (
	"image/color"
	"strconv"

	"calcfetti/internal/core/calculator"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

const (
	labelClear    = "C"
	labelDelete   = "⌫"
	labelEvaluate = "="
)

var keypadRows = [][]string{
	{labelClear, labelDelete, "÷", "×"},
	{"7", "8", "9", "-"},
	{"4", "5", "6", "+"},
	{"1", "2", "3", labelEvaluate},
	{"0", "."},
}

// Window is the calculator window: a display, a keypad and an optional
// countdown, with a confetti overlay stacked on top.
type Window struct {
	window    fyne.Window
	calc      *calculator.Calculator
	activity  calculator.ActivityNotifier
	display   *display
	countdown *canvas.Text
	buttons   map[string]*widget.Button
	logger    zerolog.Logger
}

// New builds the calculator window. overlay is drawn above the keypad and
// may be nil. activity is told about focus and key presses on the display.
func New(app fyne.App, calc *calculator.Calculator, activity calculator.ActivityNotifier, overlay fyne.CanvasObject, logger zerolog.Logger) *Window {
	calcWindow := &Window{
		window:   app.NewWindow("Calcfetti"),
		calc:     calc,
		activity: activity,
		display:  newDisplay(),
		buttons:  make(map[string]*widget.Button),
		logger:   logger.With().Str("component", "calcwindow").Logger(),
	}
	if app.Icon() != nil {
		calcWindow.window.SetIcon(app.Icon())
	}

	calcWindow.countdown = canvas.NewText("", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	calcWindow.countdown.Alignment = fyne.TextAlignTrailing
	calcWindow.countdown.TextStyle = fyne.TextStyle{Bold: true}
	calcWindow.countdown.TextSize = 14
	calcWindow.countdown.Hide()

	calcWindow.display.onFocus = calcWindow.touch
	calcWindow.display.onRune = calcWindow.typedRune
	calcWindow.display.onKey = calcWindow.typedKey

	keypad := container.NewVBox()
	for _, row := range keypadRows {
		cells := make([]fyne.CanvasObject, 0, len(row))
		for _, label := range row {
			cells = append(cells, calcWindow.newButton(label))
		}
		keypad.Add(container.NewGridWithColumns(len(row), cells...))
	}

	header := container.NewVBox(calcWindow.countdown, calcWindow.display)
	content := container.NewBorder(header, nil, nil, nil, keypad)
	if overlay != nil {
		calcWindow.window.SetContent(container.NewStack(content, overlay))
	} else {
		calcWindow.window.SetContent(content)
	}
	calcWindow.window.Resize(fyne.NewSize(300, 380))

	calcWindow.refresh()
	return calcWindow
}

// Show displays and focuses the window.
func (calcWindow *Window) Show() {
	calcWindow.window.Show()
	calcWindow.window.RequestFocus()
}

// Window returns the underlying fyne window.
func (calcWindow *Window) Window() fyne.Window {
	return calcWindow.window
}

// Display returns the text shown in the display.
func (calcWindow *Window) Display() string {
	return calcWindow.display.Text
}

// Press applies the signal of the button labelled label.
func (calcWindow *Window) Press(label string) {
	switch {
	case label == labelClear:
		calcWindow.calc.Clear()
	case label == labelDelete:
		calcWindow.calc.DeleteLast()
	case label == labelEvaluate:
		calcWindow.calc.Evaluate()
	case isDigit(label):
		calcWindow.calc.Append(label)
	default:
		op, ok := calculator.ParseOperator(label)
		if !ok {
			calcWindow.logger.Debug().Str("label", label).Msg("ignoring unknown signal")
			return
		}
		calcWindow.calc.SelectOperator(op)
	}
	calcWindow.refresh()
}

// SetCountdown shows the whole seconds left before the next burst.
func (calcWindow *Window) SetCountdown(remaining int) {
	if remaining < 0 {
		remaining = 0
	}
	calcWindow.countdown.Text = strconv.Itoa(remaining)
	calcWindow.countdown.Refresh()
}

// SetCountdownVisible toggles the countdown numeral.
func (calcWindow *Window) SetCountdownVisible(visible bool) {
	if visible {
		calcWindow.countdown.Show()
		return
	}
	calcWindow.countdown.Text = ""
	calcWindow.countdown.Hide()
}

func (calcWindow *Window) newButton(label string) *widget.Button {
	button := widget.NewButton(label, func() {
		calcWindow.Press(label)
	})
	switch {
	case label == labelEvaluate:
		button.Importance = widget.HighImportance
	case label == labelClear || label == labelDelete:
		button.Importance = widget.WarningImportance
	case !isDigit(label):
		button.Importance = widget.MediumImportance
	}
	calcWindow.buttons[label] = button
	return button
}

func (calcWindow *Window) touch() {
	if calcWindow.activity != nil {
		calcWindow.activity.Touch()
	}
}

func (calcWindow *Window) typedRune(r rune) {
	calcWindow.touch()
	switch {
	case r >= '0' && r <= '9', r == '.':
		calcWindow.Press(string(r))
	case r == ',':
		calcWindow.Press(".")
	case r == '=':
		calcWindow.Press(labelEvaluate)
	case r == 'c' || r == 'C':
		calcWindow.Press(labelClear)
	default:
		if _, ok := calculator.ParseOperator(string(r)); ok {
			calcWindow.Press(string(r))
		}
	}
}

func (calcWindow *Window) typedKey(name fyne.KeyName) {
	calcWindow.touch()
	switch name {
	case fyne.KeyReturn, fyne.KeyEnter:
		calcWindow.Press(labelEvaluate)
	case fyne.KeyBackspace, fyne.KeyDelete:
		calcWindow.Press(labelDelete)
	case fyne.KeyEscape:
		calcWindow.Press(labelClear)
	}
}

func (calcWindow *Window) refresh() {
	calcWindow.display.SetText(calcWindow.calc.Display())
}

func isDigit(label string) bool {
	if label == "." {
		return true
	}
	return len(label) == 1 && label[0] >= '0' && label[0] <= '9'
}
