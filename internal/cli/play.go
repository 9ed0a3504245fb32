package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocuboid"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the faces of a cuboid interactively",
	Long: `Open an interactive view of a solved cuboid and turn its faces from the
keyboard. Only permitted moves are accepted.

Keys:
  u d l r f b    turn a face clockwise
  U D L R F B    turn a face counter-clockwise
  2              toggle half-turn mode
  z              undo the last move
  s              scramble
  x              reset
  q              quit`,
	RunE: runPlay,
}

var (
	playPuzzle   puzzleFlags
	playScramble int
)

func init() {
	rootCmd.AddCommand(playCmd)
	playPuzzle.register(playCmd)
	playCmd.Flags().IntVar(&playScramble, "scramble-length", 20, "Number of random moves used by scramble")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, &playPuzzle)
	if err != nil {
		return err
	}
	cube, err := cfg.NewCube()
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("Starting player", "dims", cube.Dims(), "moves", cube.Permitted())

	p := tea.NewProgram(newPlayModel(cube, playScramble), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

type playTickMsg time.Time

type playModel struct {
	tracker   *gocuboid.Tracker
	half      bool
	scrambleN int
	message   string
	err       string
	solvedAt  int // history length when last solved, -1 if never
	startTime time.Time
	elapsed   time.Duration
	quitting  bool
}

func newPlayModel(c *gocuboid.Cube, scrambleN int) *playModel {
	m := &playModel{
		tracker:   gocuboid.NewTracker(c),
		scrambleN: scrambleN,
		solvedAt:  -1,
		startTime: time.Now(),
	}
	m.tracker.SetSolvedCallback(func(moves int) { m.solvedAt = moves })
	return m
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

// keyMove maps a key to a move: lowercase turns clockwise, uppercase
// counter-clockwise, and half-turn mode turns either way by 180 degrees.
func keyMove(key string, half bool) (gocuboid.Move, bool) {
	if len(key) != 1 {
		return gocuboid.Move{}, false
	}
	upper := strings.ToUpper(key)
	face, ok := gocuboid.ParseFaceID(upper)
	if !ok {
		return gocuboid.Move{}, false
	}
	switch {
	case half:
		return gocuboid.Move{Face: face, Turn: gocuboid.Double}, true
	case key == upper:
		return gocuboid.Move{Face: face, Turn: gocuboid.CCW}, true
	default:
		return gocuboid.Move{Face: face, Turn: gocuboid.CW}, true
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "2":
			m.half = !m.half

		case "z":
			if mv, ok := m.tracker.Undo(); ok {
				m.message = "Undid " + mv.Notation()
			} else {
				m.message = "Nothing to undo"
			}

		case "x":
			m.tracker.Reset()
			m.solvedAt = -1
			m.startTime = time.Now()
			m.message = "Reset"

		case "s":
			m.scramble()

		default:
			if mv, ok := keyMove(key, m.half); ok {
				m.message = ""
				m.err = ""
				if err := m.tracker.Apply(mv); err != nil {
					m.err = err.Error()
				}
			}
		}

	case playTickMsg:
		m.elapsed = time.Since(m.startTime)
		return m, m.tickCmd()
	}

	return m, nil
}

// scramble applies random permitted moves, never turning the same face
// twice in a row.
func (m *playModel) scramble() {
	moves := m.tracker.Cube().Permitted().Moves()
	if len(moves) == 0 {
		m.message = "No permitted moves"
		return
	}
	faces := make(map[gocuboid.FaceID]bool)
	for _, mv := range moves {
		faces[mv.Face] = true
	}

	var last *gocuboid.Move
	for applied := 0; applied < m.scrambleN; {
		mv := moves[rand.IntN(len(moves))]
		if last != nil && last.Face == mv.Face && len(faces) > 1 {
			continue
		}
		m.tracker.Apply(mv)
		last = &mv
		applied++
	}
	m.solvedAt = -1
	m.startTime = time.Now()
	m.message = fmt.Sprintf("Scrambled with %d moves", m.scrambleN)
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	c := m.tracker.Cube()

	b.WriteString(titleStyle.Render(fmt.Sprintf("Cuboid %s", c.Dims())))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("Permitted: " + c.Permitted().String()))
	b.WriteString("\n\n")
	b.WriteString(renderNet(c, false))
	b.WriteString("\n")

	history := m.tracker.History()
	if m.tracker.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		if m.solvedAt > 0 {
			b.WriteString(fmt.Sprintf(" in %d moves", m.solvedAt))
		}
	} else {
		p := m.tracker.Progress()
		b.WriteString(fmt.Sprintf("Faces solved: %d/6  Facelets in place: %.0f%%", p.SolvedFaces, p.Fraction()*100))
	}
	b.WriteString(fmt.Sprintf("  Time: %.1fs\n", m.elapsed.Seconds()))

	b.WriteString(fmt.Sprintf("Moves: %d", len(history)))
	if len(history) > 0 {
		start := max(0, len(history)-20)
		b.WriteString("  ")
		if start > 0 {
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(gocuboid.FormatMoves(history[start:])))
	}
	b.WriteString("\n")

	if m.half {
		b.WriteString(statusStyle.Render("[HALF TURNS]"))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(statusStyle.Render(m.message))
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("udlrfb=turn  UDLRFB=reverse  2=half turns  z=undo  s=scramble  x=reset  q=quit"))
	b.WriteString("\n")
	return b.String()
}
