package systray

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/getlantern/systray"
)

// Manager manages the system tray icon and menu
type Manager struct {
	webEnabled bool
	webPort    int
	iconData   []byte
	quit       chan struct{}
	onPause    func(paused bool)
}

// NewManager creates a new tray manager. onPause is invoked when the user
// toggles dispatching from the menu.
func NewManager(webEnabled bool, webPort int, iconData []byte, onPause func(bool)) *Manager {
	return &Manager{
		webEnabled: webEnabled,
		webPort:    webPort,
		iconData:   iconData,
		quit:       make(chan struct{}),
		onPause:    onPause,
	}
}

// Run starts the system tray (blocking call; must run on the main goroutine)
func (m *Manager) Run() {
	systray.Run(m.onReady, m.onExit)
}

// Stop stops the system tray
func (m *Manager) Stop() {
	systray.Quit()
}

// WaitForQuit returns a channel that will be closed when user clicks Quit
func (m *Manager) WaitForQuit() <-chan struct{} {
	return m.quit
}

// onReady is called when the systray is ready
func (m *Manager) onReady() {
	if len(m.iconData) > 0 {
		systray.SetIcon(m.iconData)
	}

	systray.SetTitle("hotedge")
	systray.SetTooltip("hotedge - hot corner daemon")

	mPause := systray.AddMenuItem("Pause", "Stop dispatching zone commands")

	var openClicked chan struct{}
	if m.webEnabled {
		mOpen := systray.AddMenuItem("Open Dashboard", "Open the hotedge status page")
		openClicked = mOpen.ClickedCh
	}

	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit hotedge")

	// Handle menu clicks
	go func() {
		paused := false
		for {
			select {
			case <-mPause.ClickedCh:
				paused = !paused
				if paused {
					mPause.SetTitle("Resume")
				} else {
					mPause.SetTitle("Pause")
				}
				if m.onPause != nil {
					m.onPause(paused)
				}
			case <-openClicked:
				m.openDashboard()
			case <-mQuit.ClickedCh:
				slog.Info("user requested quit from system tray")
				close(m.quit)
				systray.Quit()
				return
			}
		}
	}()
}

// onExit is called when the systray is exiting
func (m *Manager) onExit() {
	slog.Info("system tray exited")
}

// openDashboard opens the web dashboard in the default browser
func (m *Manager) openDashboard() {
	url := fmt.Sprintf("http://localhost:%d", m.webPort)
	slog.Info("opening dashboard", "url", url)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		slog.Error("unsupported platform for opening browser", "platform", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		slog.Error("failed to open dashboard", "error", err)
	}
}
