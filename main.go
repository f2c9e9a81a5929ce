package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	config := loadConfig()

	showVersion := flag.Bool("version", false, "print version and exit")
	flag.IntVar(&config.Width, "width", config.Width, "grid width, 0 follows the terminal")
	flag.IntVar(&config.Height, "height", config.Height, "grid height, 0 follows the terminal")
	flag.BoolVar(&config.ShowGrid, "grid", config.ShowGrid, "start with the background grid shown")
	debugPath := flag.String("debug", os.Getenv("CRAW_DEBUG"), "write debug log to `file`")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	if *debugPath != "" {
		f, err := tea.LogToFile(*debugPath, "craw")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		// The terminal belongs to the program; stray log lines would corrupt it.
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(initialModel(config), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func initialModel(config *Config) model {
	if config == nil {
		config = defaultConfig()
	}
	width, height := config.Width, config.Height
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}

	keys := DefaultKeyMap()
	scene := NewScene(width, height)
	scene.SetColor(config.Color)
	scene.SetKind(config.Shape)
	scene.SetCursorGlyph(config.CursorGlyph)
	scene.SetLegend(legendText(keys))
	if config.ShowGrid {
		scene.ToggleGrid()
	}

	return model{
		scene:    scene,
		config:   config,
		keys:     keys,
		terminal: newTerminalSink(),
		snapshot: newPNGSink(config.SnapshotDir),
		clip:     newClipboardSink(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// Update applies one input event. A panic while handling it is reported
// on the status line and the program keeps running.
func (m model) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("update: recovered from panic: %v", r)
			m.setError(fmt.Sprintf("internal error: %v", r))
			next, cmd = m, nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scene.Resize(m.config.gridSize(msg.Width, msg.Height))
		return m, nil

	case tea.KeyMsg:
		action := m.keys.Action(msg)
		if m.help && action != ActionQuit {
			// Any key closes the help screen.
			m.help = false
			return m, nil
		}
		if action != ActionNone {
			m.clearMessages()
		}
		return m, m.handleAction(action)
	}

	return m, nil
}

// renderFrame composes the scene into a fresh frame.
func (m model) renderFrame() (*Frame, error) {
	frame, err := NewFrame(m.scene.Width(), m.scene.Height())
	if err != nil {
		return nil, err
	}
	if dropped := m.scene.Render(frame); dropped > 0 {
		log.Printf("render: clipped %d pixels", dropped)
	}
	return frame, nil
}

func (m model) View() (view string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("view: recovered from panic: %v", r)
			view = m.terminal.Frame() + "\n" + fmt.Sprintf("ERROR: internal error: %v", r)
		}
	}()

	if m.help {
		return m.helpView()
	}

	frame, err := m.renderFrame()
	if err == nil {
		err = m.terminal.Write(frame.Grid(), frame.Bounds())
	}

	var result strings.Builder
	result.WriteString(m.terminal.Frame())
	result.WriteString("\n")
	if err != nil {
		// Keep showing the last good frame and try again next tick.
		log.Printf("view: %v", err)
		result.WriteString("ERROR: " + err.Error())
		return result.String()
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	scene := m.scene
	cursor := scene.Cursor()
	status := fmt.Sprintf("Mode: %s | Cursor: (%d,%d) | Shape: %s | Color: %s",
		scene.Mode(), cursor.X, cursor.Y, scene.Kind(), scene.Color())
	if active := scene.Active(); active != nil {
		status += fmt.Sprintf(" | Drawing %s (%s)", active.Kind, active.State)
	}
	status += fmt.Sprintf(" | Shapes: %d", len(scene.Committed()))
	if depth := scene.RedoDepth(); depth > 0 {
		status += fmt.Sprintf(" (redo %d)", depth)
	}
	if scene.ShowGrid() {
		status += " | Grid"
	}
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		status += " | ERROR: " + m.errorMessage
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) helpView() string {
	lines := []string{
		"ᴄᴚᴀᴡ Help",
		"=========",
		"",
		"Pick a shape and a color, move the cursor to the first corner and",
		"press space. Move again and press space to finish. Triangles take",
		"one more press for the third corner.",
		"",
	}

	h := help.New()
	h.Width = m.width
	lines = append(lines, h.FullHelpView(m.keys.FullHelp()))
	lines = append(lines, "", "Press any key to close")
	return strings.Join(lines, "\n")
}
