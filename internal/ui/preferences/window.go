package preferences

import (
	"fmt"
	"strconv"
	"time"

	"calcfetti/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	randomDelay  *widget.Check
	fixedDelay   *widget.Entry
	minDelay     *widget.Entry
	maxDelay     *widget.Entry
	randomCount  *widget.Check
	count        *widget.Entry
	minCount     *widget.Entry
	maxCount     *widget.Entry
	spread       *widget.Slider
	spreadLabel  *widget.Label
	countdown    *widget.Check
	saveButton   *widget.Button
	cancelButton *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Calcfetti Settings")

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		randomDelay:  widget.NewCheck("Random wait", nil),
		fixedDelay:   widget.NewEntry(),
		minDelay:     widget.NewEntry(),
		maxDelay:     widget.NewEntry(),
		randomCount:  widget.NewCheck("Random particle count", nil),
		count:        widget.NewEntry(),
		minCount:     widget.NewEntry(),
		maxCount:     widget.NewEntry(),
		spread:       widget.NewSlider(model.MinSpread, model.MaxSpread),
		spreadLabel:  widget.NewLabel(""),
		countdown:    widget.NewCheck("Show countdown", nil),
		saveButton:   widget.NewButton("Save", nil),
		cancelButton: widget.NewButton("Cancel", nil),
	}
	prefs.spread.Step = 5
	prefs.spread.OnChanged = func(value float64) {
		prefs.spreadLabel.SetText(fmt.Sprintf("%.0f°", value))
	}
	prefs.randomDelay.OnChanged = func(bool) { prefs.syncEnabled() }
	prefs.randomCount.OnChanged = func(bool) { prefs.syncEnabled() }

	form := container.NewVBox(
		widget.NewLabelWithStyle("Inactivity", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.randomDelay,
		container.NewHBox(widget.NewLabel("Wait"), prefs.fixedDelay, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Between"), prefs.minDelay, widget.NewLabel("and"), prefs.maxDelay, widget.NewLabel("sec")),
		prefs.countdown,
		widget.NewLabelWithStyle("Confetti", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.randomCount,
		container.NewHBox(widget.NewLabel("Particles"), prefs.count),
		container.NewHBox(widget.NewLabel("Between"), prefs.minCount, widget.NewLabel("and"), prefs.maxCount),
		container.NewBorder(nil, nil, widget.NewLabel("Spread"), prefs.spreadLabel, prefs.spread),
	)

	buttons := container.NewHBox(prefs.saveButton, layout.NewSpacer(), prefs.cancelButton)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 420))

	prefs.saveButton.OnTapped = prefs.handleSave
	prefs.cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.randomDelay.SetChecked(settings.RandomDelay)
	prefs.fixedDelay.SetText(formatSeconds(settings.FixedDelay))
	prefs.minDelay.SetText(formatSeconds(settings.MinDelay))
	prefs.maxDelay.SetText(formatSeconds(settings.MaxDelay))
	prefs.randomCount.SetChecked(settings.RandomParticles)
	prefs.count.SetText(strconv.Itoa(settings.ParticleCount))
	prefs.minCount.SetText(strconv.Itoa(settings.MinParticles))
	prefs.maxCount.SetText(strconv.Itoa(settings.MaxParticles))
	prefs.spread.SetValue(settings.Spread)
	prefs.countdown.SetChecked(settings.Countdown)
	prefs.syncEnabled()
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.RandomDelay = prefs.randomDelay.Checked
	settings.RandomParticles = prefs.randomCount.Checked
	settings.Countdown = prefs.countdown.Checked
	settings.Spread = model.ClampSpread(prefs.spread.Value)

	if delay, ok := parseDelay(prefs.fixedDelay.Text); ok {
		settings.FixedDelay = delay
	}
	minDelay, minOK := parseDelay(prefs.minDelay.Text)
	maxDelay, maxOK := parseDelay(prefs.maxDelay.Text)
	if minOK && maxOK && minDelay <= maxDelay {
		settings.MinDelay = minDelay
		settings.MaxDelay = maxDelay
	}

	if count, ok := parseCount(prefs.count.Text); ok {
		settings.ParticleCount = count
	}
	minCount, minOK := parseCount(prefs.minCount.Text)
	maxCount, maxOK := parseCount(prefs.maxCount.Text)
	if minOK && maxOK && minCount <= maxCount {
		settings.MinParticles = minCount
		settings.MaxParticles = maxCount
	}

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) syncEnabled() {
	setEnabled(prefs.fixedDelay, !prefs.randomDelay.Checked)
	setEnabled(prefs.minDelay, prefs.randomDelay.Checked)
	setEnabled(prefs.maxDelay, prefs.randomDelay.Checked)
	setEnabled(prefs.count, !prefs.randomCount.Checked)
	setEnabled(prefs.minCount, prefs.randomCount.Checked)
	setEnabled(prefs.maxCount, prefs.randomCount.Checked)
}

func setEnabled(entry *widget.Entry, enabled bool) {
	if enabled {
		entry.Enable()
		return
	}
	entry.Disable()
}

func formatSeconds(value time.Duration) string {
	return strconv.Itoa(int(value / time.Second))
}

// parseDelay reads whole seconds, capped to the allowed delay range.
func parseDelay(value string) (time.Duration, bool) {
	seconds, ok := parsePositiveInt(value)
	if !ok {
		return 0, false
	}
	seconds = min(seconds, int(model.MaxDelay/time.Second))
	return model.ClampDelay(time.Duration(seconds) * time.Second), true
}

func parseCount(value string) (int, bool) {
	count, ok := parsePositiveInt(value)
	if !ok {
		return 0, false
	}
	return model.ClampCount(count), true
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
