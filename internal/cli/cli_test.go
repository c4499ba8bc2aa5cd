package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kannan/termcompat/internal/app"
	"github.com/kannan/termcompat/internal/config"
	"github.com/kannan/termcompat/internal/console"
	"github.com/kannan/termcompat/internal/logger"
)

type fakeConsole struct {
	keys   []byte
	clears int
}

func (f *fakeConsole) ClearScreen() {
	f.clears++
}

func (f *fakeConsole) ReadKey() console.Key {
	if len(f.keys) == 0 {
		return console.Key{}
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return console.Key{Char: k, N: 1}
}

// setup isolates a test in its own working directory with a scripted console.
func setup(t *testing.T, keys string) *fakeConsole {
	t.Helper()
	t.Chdir(t.TempDir())

	fc := &fakeConsole{keys: []byte(keys)}
	prevConsole, prevLogger := newConsole, logger.Default
	newConsole = func() console.Console { return fc }

	t.Cleanup(func() {
		newConsole = prevConsole
		logger.Default = prevLogger
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		cfgFile, cfg, verbose = "", nil, false
		getchCount, getchFormat = 1, "char"
		configInitName, configInitQuitKey, configInitOutput = "termcompat", "q", config.DefaultConfigFile
	})
	return fc
}

func execute(args ...string) (string, error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGetch_DefaultFormat(t *testing.T) {
	setup(t, "x")

	out, err := execute("getch")
	require.NoError(t, err)
	require.Equal(t, "'x'    0x78  120\n", out)
}

func TestGetch_StopsAtEndOfInput(t *testing.T) {
	fc := setup(t, "ab")

	out, err := execute("getch", "--count", "3", "--format", "hex")
	require.NoError(t, err)
	require.Equal(t, "0x61\n0x62\n", out)
	require.Empty(t, fc.keys)
}

func TestGetch_Decimal(t *testing.T) {
	setup(t, "\x1b")

	out, err := execute("getch", "-f", "dec")
	require.NoError(t, err)
	require.Equal(t, "27\n", out)
}

func TestGetch_BadFlags(t *testing.T) {
	setup(t, "x")

	_, err := execute("getch", "--format", "octal")
	require.ErrorContains(t, err, "unknown format")

	getchFormat = "char"
	_, err = execute("getch", "--count", "0")
	require.ErrorContains(t, err, "--count")
}

func TestClear(t *testing.T) {
	fc := setup(t, "")

	_, err := execute("clear")
	require.NoError(t, err)
	require.Equal(t, 1, fc.clears)
}

func TestMenu(t *testing.T) {
	fc := setup(t, "2.q")

	out, err := execute("menu")
	require.NoError(t, err)
	require.Contains(t, out, "Screen cleared.")
	require.Contains(t, out, "Bye.")
	require.Equal(t, 3, fc.clears)
}

func TestMenu_EndOfInputIsNotAnError(t *testing.T) {
	setup(t, "")

	_, err := execute("menu")
	require.NoError(t, err)
}

func TestMenu_RejectsInvalidConfig(t *testing.T) {
	setup(t, "q")
	require.NoError(t, os.WriteFile(config.DefaultConfigFile, []byte("menu:\n  quit_key: \"1\"\n"), 0644))

	_, err := execute("menu")
	require.ErrorContains(t, err, "menu.quit_key")
}

func TestConfigInitValidateShow(t *testing.T) {
	require := require.New(t)
	setup(t, "")

	out, err := execute("config", "init", "--name", "kiosk", "--quit-key", "x")
	require.NoError(err)
	require.Contains(out, "Configuration file created")

	cfgOnDisk, err := config.Load(config.DefaultConfigFile)
	require.NoError(err)
	require.Equal("kiosk", cfgOnDisk.Name)
	require.Equal("x", cfgOnDisk.Menu.QuitKey)

	raw, err := os.ReadFile(config.DefaultConfigFile)
	require.NoError(err)
	require.Contains(string(raw), "# termcompat configuration")

	out, err = execute("config", "validate")
	require.NoError(err)
	require.Contains(out, "VALID")

	out, err = execute("config", "show")
	require.NoError(err)
	require.Contains(out, "kiosk")
	require.Contains(out, "(stderr)")

	_, err = execute("config", "init")
	require.ErrorContains(err, "already exists")
}

func TestConfigInit_RejectsBoundQuitKey(t *testing.T) {
	setup(t, "")

	_, err := execute("config", "init", "--quit-key", "1", "-o", "bad.yaml")
	require.ErrorContains(t, err, "menu.quit_key")
	require.NoFileExists(t, "bad.yaml")
}

func TestConfigValidate_Invalid(t *testing.T) {
	setup(t, "")
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))

	out, err := execute("config", "validate", "-c", path)
	require.Error(t, err)
	require.Contains(t, out, "INVALID")
	require.Contains(t, out, "logging.level")
}

func TestVersion(t *testing.T) {
	setup(t, "")

	out, err := execute("version")
	require.NoError(t, err)
	require.Equal(t, "termcompat v"+app.GetVersion()+"\n", out)
}

func TestLoggerConfig_StderrAlwaysOn(t *testing.T) {
	require := require.New(t)

	c := config.DefaultConfig()
	got := loggerConfig(c, false)
	require.True(got.Console)
	require.Empty(got.Path)
	require.Equal("warn", got.Level)

	c.Logging.Path = filepath.Join(t.TempDir(), "termcompat.log")
	got = loggerConfig(c, false)
	require.True(got.Console, "a log file must not take diagnostics off stderr")
	require.Equal(c.Logging.Path, got.Path)

	require.Equal("debug", loggerConfig(c, true).Level)
}
