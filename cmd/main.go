package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calcfetti/internal/core/calculator"
	"calcfetti/internal/core/watchdog"
	"calcfetti/internal/logger"
	"calcfetti/internal/platform"
	"calcfetti/internal/storage"
	"calcfetti/internal/ui/calcwindow"
	"calcfetti/internal/ui/confetti"
	"calcfetti/internal/ui/preferences"
	"calcfetti/internal/ui/tray"
	"calcfetti/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
)

const appName = "Calcfetti"

func main() {
	log := logger.NewConsole(logger.LevelFromEnv(zerolog.InfoLevel))

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			if activateErr := platform.ActivateRunning(appName); activateErr != nil {
				log.Warn().Err(activateErr).Msg("single instance")
			}
			return
		}
		log.Error().Err(err).Msg("single instance")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.calcfetti.app")
	appIcon := resources.MustIcon(resources.IconFile)
	fyneApp.SetIcon(appIcon)

	store := openStore(log)
	settings := preferences.DefaultSettings()
	if store != nil {
		loaded, err := store.Load()
		if err != nil {
			log.Warn().Err(err).Str("path", store.Path()).Msg("using default settings")
		}
		settings = loaded
	}

	layer := confetti.New(confetti.DefaultConfig(), log)
	keeper := watchdog.New(settings.WatchdogConfig(), watchdog.Options{
		Burster: layer,
		Logger:  log,
	})
	calc := calculator.New(keeper)
	calcWindow := calcwindow.New(fyneApp, calc, keeper, layer.Container(), log)
	calcWindow.SetCountdownVisible(settings.Countdown)

	applySettings := func(updated preferences.Settings) {
		keeper.UpdateConfig(updated.WatchdogConfig())
		calcWindow.SetCountdownVisible(updated.Countdown)
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		applySettings(updated)
		if store == nil {
			return
		}
		if err := store.Save(updated); err != nil {
			log.Warn().Err(err).Msg("save settings")
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: calcWindow.Show,
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnTogglePause: func() {
				if keeper.Paused() {
					keeper.Resume()
				} else {
					keeper.Pause()
				}
			},
			OnConfetti: keeper.FireNow,
			OnQuit: func() {
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(appIcon)
		calcWindow.Window().SetCloseIntercept(func() {
			calcWindow.Window().Hide()
		})
	} else {
		log.Info().Msg("system tray unsupported on this platform")
		calcWindow.Window().SetMaster()
	}

	guard.SetOnActivate(func() {
		fyne.Do(calcWindow.Show)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if store != nil {
		err := store.Watch(ctx, logger.Component(log, "settings"), func(updated preferences.Settings) {
			fyne.Do(func() {
				prefsWindow.UpdateSettings(updated)
				applySettings(updated)
			})
		})
		if err != nil {
			log.Debug().Err(err).Msg("settings hot reload disabled")
		}
	}

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			handleEvent(event, calcWindow, trayManager, log)
		}
	}()

	keeper.Start()
	calcWindow.Show()
	fyneApp.Run()

	keeper.Stop()
	layer.Stop()
}

func openStore(log zerolog.Logger) *storage.Store {
	path, err := storage.DefaultPath(platform.NewService(), appName)
	if err != nil {
		log.Warn().Err(err).Msg("settings will not be saved")
		return nil
	}
	return storage.NewStore(path)
}

func handleEvent(event watchdog.Event, calcWindow *calcwindow.Window, trayManager *tray.Manager, log zerolog.Logger) {
	switch event.Type {
	case watchdog.EventCountdown:
		fyne.Do(func() {
			calcWindow.SetCountdown(event.Remaining)
		})
	case watchdog.EventReset:
		if trayManager != nil {
			fyne.Do(func() {
				trayManager.SetStatus("next burst in " + formatRemaining(event.Delay))
			})
		}
	case watchdog.EventFire:
		log.Info().Int("particles", event.Burst.ParticleCount).Msg("inactivity confetti")
	case watchdog.EventPaused, watchdog.EventResumed:
		if trayManager != nil {
			paused := event.Type == watchdog.EventPaused
			fyne.Do(func() {
				trayManager.SetPaused(paused)
			})
		}
	}
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
