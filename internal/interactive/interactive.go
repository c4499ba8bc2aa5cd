// Package interactive provides a single-keystroke menu on top of the console
// package. Choices take effect on the key press; Enter is never needed.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kannan/termcompat/internal/app"
	"github.com/kannan/termcompat/internal/config"
	"github.com/kannan/termcompat/internal/console"
	"github.com/kannan/termcompat/internal/logger"
	"github.com/kannan/termcompat/internal/styles"
)

// ErrInputClosed is returned when standard input reaches its end while the
// menu is waiting for a key.
var ErrInputClosed = errors.New("input closed")

const keyEscape = 0x1b

// Menu is the interactive key menu. It owns the terminal mode while it runs,
// so only one Menu may run at a time.
type Menu struct {
	cfg *config.Config
	con console.Console
	out io.Writer
}

// New returns a menu reading keys from con and printing to out.
func New(cfg *config.Config, con console.Console, out io.Writer) *Menu {
	return &Menu{cfg: cfg, con: con, out: out}
}

// Loop shows the menu and dispatches key presses until the quit key, ESC,
// or end of input.
func (m *Menu) Loop() error {
	quit := m.cfg.QuitByte()

	for {
		if m.cfg.Menu.ClearBetween {
			m.con.ClearScreen()
		}
		m.printBanner()
		m.printMenu()

		key, err := m.readKey()
		if err != nil {
			return err
		}

		switch {
		case key == '1':
			if err := m.describeNextKey(); err != nil {
				return err
			}
		case key == '2':
			m.con.ClearScreen()
			fmt.Fprintln(m.out, styles.SuccessStyle.Render("Screen cleared."))
		case key == '3':
			m.showConfig()
		case key == keyEscape || (quit != 0 && key == quit):
			fmt.Fprintln(m.out, styles.SubtitleStyle.Render("Bye."))
			return nil
		default:
			fmt.Fprintln(m.out, styles.WarningStyle.Render(fmt.Sprintf("Unknown key %s", Describe(key))))
		}

		if err := m.pause(); err != nil {
			return err
		}
	}
}

// readKey returns the next byte, or ErrInputClosed when nothing could be
// read. Platform diagnostics have already been logged by the console.
func (m *Menu) readKey() (byte, error) {
	key := m.con.ReadKey()
	if key.N == 0 {
		if key.Err != nil {
			logger.Debug("key read returned nothing", "error", key.Err)
		}
		return 0, ErrInputClosed
	}
	return key.Char, nil
}

func (m *Menu) describeNextKey() error {
	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, styles.TitleStyle.Render("Press any key..."))
	fmt.Fprintln(m.out)

	key, err := m.readKey()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, styles.KeyCodeStyle.Render(Describe(key)))
	return nil
}

func (m *Menu) pause() error {
	fmt.Fprintln(m.out)
	if prompt := m.cfg.Menu.ContinuePrompt; prompt != "" {
		fmt.Fprint(m.out, styles.MutedStyle().Render(prompt))
	}
	_, err := m.readKey()
	fmt.Fprintln(m.out)
	return err
}

func (m *Menu) printBanner() {
	fmt.Fprintln(m.out, styles.BannerStyle.Render(app.GetBanner()))
	if m.cfg.Menu.Title != "" {
		fmt.Fprintln(m.out, styles.TitleStyle.Render(m.cfg.Menu.Title))
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, styles.MenuItem("1", "Read one key and show its code"))
	fmt.Fprintln(m.out, styles.MenuItem("2", "Clear the screen"))
	fmt.Fprintln(m.out, styles.MenuItem("3", "Show configuration"))
	fmt.Fprintln(m.out, styles.MenuItem(m.quitLabel(), "Quit"))
	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, styles.HelpDescStyle.Render("Choose: "))
}

func (m *Menu) quitLabel() string {
	if q := m.cfg.QuitByte(); q != 0 {
		return string(q) + "/ESC"
	}
	return "ESC"
}

func (m *Menu) showConfig() {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:           %s\n", m.cfg.Name)
	fmt.Fprintf(&sb, "Log level:      %s\n", m.cfg.Logging.Level)
	logPath := m.cfg.Logging.Path
	if logPath == "" {
		logPath = "(stderr)"
	}
	fmt.Fprintf(&sb, "Log path:       %s\n", logPath)
	fmt.Fprintf(&sb, "Quit key:       %s\n", m.quitLabel())
	fmt.Fprintf(&sb, "Clear between:  %v\n", m.cfg.Menu.ClearBetween)
	fmt.Fprintf(&sb, "Key reader:     %s", app.KeyVariant())

	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, styles.BoxStyle.Render(sb.String()))
}

// Describe names a single byte: printable characters are quoted, control
// bytes get their usual name, followed by hex and decimal codes.
func Describe(b byte) string {
	return fmt.Sprintf("%-6s 0x%02x  %3d", Name(b), b, b)
}

// Name returns the display name of a single byte.
func Name(b byte) string {
	switch b {
	case 0x00:
		return "NUL"
	case 0x08:
		return "BS"
	case 0x09:
		return "TAB"
	case 0x0a:
		return "LF"
	case 0x0d:
		return "CR"
	case keyEscape:
		return "ESC"
	case 0x20:
		return "SPACE"
	case 0x7f:
		return "DEL"
	}
	switch {
	case b < 0x20:
		return "^" + string(rune('@'+b))
	case b > 0x7f:
		return fmt.Sprintf("\\x%02x", b)
	default:
		return fmt.Sprintf("'%c'", b)
	}
}
